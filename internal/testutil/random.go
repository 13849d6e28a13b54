// Package testutil 测试用的随机数源与钩子记录器
package testutil

// ScriptedRandom 按脚本返回结果的随机数源
//
// Floats/Ints 依次消费，用完后返回 Fallback / 0；Shuffle 默认不改变顺序。
type ScriptedRandom struct {
	Floats   []float64
	Ints     []int
	Fallback float64 // Floats 用完后 Float64 的返回值

	ShuffleFn func(n int, swap func(i, j int))

	FloatCalls   int
	IntnCalls    int
	ShuffleCalls int
}

// Never 所有概率判定都失败的随机数源
func Never() *ScriptedRandom {
	return &ScriptedRandom{Fallback: 0.999999}
}

// Always 所有概率判定都成功的随机数源
func Always() *ScriptedRandom {
	return &ScriptedRandom{Fallback: 0}
}

// Float64 实现 game.RandomSource
func (r *ScriptedRandom) Float64() float64 {
	r.FloatCalls++
	if len(r.Floats) == 0 {
		return r.Fallback
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}

// Intn 实现 game.RandomSource；脚本值会被限制在 [0, n)
func (r *ScriptedRandom) Intn(n int) int {
	r.IntnCalls++
	if len(r.Ints) == 0 || n <= 0 {
		return 0
	}
	v := r.Ints[0]
	r.Ints = r.Ints[1:]
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v
}

// Shuffle 实现 game.RandomSource
func (r *ScriptedRandom) Shuffle(n int, swap func(i, j int)) {
	r.ShuffleCalls++
	if r.ShuffleFn != nil {
		r.ShuffleFn(n, swap)
	}
}
