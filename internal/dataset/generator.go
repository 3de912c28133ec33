package dataset

import "math/rand"

// Generator 基于种子的可复现整数序列生成器
type Generator struct {
	seed int64
	rng  *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Reseed 用新种子重置生成器状态；同一种子必然复现同一序列
func (g *Generator) Reseed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate 生成 size 个取值于 [0, maxValue] 的整数
func (g *Generator) Generate(size, maxValue int) []int {
	if size < 0 || maxValue < 0 {
		return []int{}
	}
	out := make([]int, size)
	for i := range out {
		out[i] = g.rng.Intn(maxValue + 1)
	}
	return out
}

// Generate 一次性生成：等价于 NewGenerator(seed).Generate(size, maxValue)
func Generate(seed int64, size, maxValue int) []int {
	return NewGenerator(seed).Generate(size, maxValue)
}

// SeedFor 第 trial 次运行使用的种子
func SeedFor(seedBase int64, trial int) int64 {
	return seedBase + int64(trial)
}
