package game

import (
	"math/rand"
	"time"
)

// RandomSource 可注入的随机数源
// 开火、护盾、生成概率等所有伯努利试验都通过它完成，测试可固定种子或脚本化结果。
// *rand.Rand 直接满足此接口。
type RandomSource interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRandomSource 创建随机数源
// seed 为 0 时使用当前时间作为种子
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Chance 以概率 p 返回 true
func Chance(rng RandomSource, p float64) bool {
	if p <= 0 {
		return false
	}
	return rng.Float64() < p
}
