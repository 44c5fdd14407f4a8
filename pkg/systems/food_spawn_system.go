package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/types"
)

// FoodSpawnSystem 为食物选择随机格子
//
// 在 [0,W) 和 [0,H) 上各做一次独立的均匀抽样（先 X 后 Y）。
// 不检查蛇身占用，食物可能出现在蛇身下面。
type FoodSpawnSystem struct {
	rng *rand.Rand
}

// NewFoodSpawnSystem 使用外部传入的随机数生成器创建食物生成系统
// 生成器在进程启动时播种一次，测试中可传入固定种子
func NewFoodSpawnSystem(rng *rand.Rand) *FoodSpawnSystem {
	return &FoodSpawnSystem{rng: rng}
}

// NewSeededFoodSpawnSystem 以给定种子创建食物生成系统
func NewSeededFoodSpawnSystem(seed int64) *FoodSpawnSystem {
	log.Printf("[FoodSpawnSystem] Seed: %d", seed)
	return NewFoodSpawnSystem(rand.New(rand.NewSource(seed)))
}

// Spawn 返回下一份食物的位置
// 副作用：推进随机数生成器状态
func (s *FoodSpawnSystem) Spawn(grid components.GridComponent) types.Cell {
	x := s.rng.Intn(grid.Width)
	y := s.rng.Intn(grid.Height)
	return types.Cell{X: x, Y: y}
}
