// Package utils 表现层共用的小工具
package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]
// 超出范围的输入先被截断

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// EaseOutCubic 开始快，结束慢
// f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInQuad 开始慢，结束快
func EaseInQuad(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// Lerp 在 a 和 b 之间按 t 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
