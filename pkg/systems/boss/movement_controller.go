package boss

import (
	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/game"
)

// MovementController Boss 的纵向移动序列
//
// 序列为 {+V, -V, 0} 重复 N 次后打乱；同一个步长最多连续使用 MaxSameMove 帧，
// 之后重新打乱并前进到下一个位置（到末尾回到 0）。
type MovementController struct {
	rng game.RandomSource
}

// NewMovementController 创建移动控制器
func NewMovementController(rng game.RandomSource) *MovementController {
	return &MovementController{rng: rng}
}

// NewMovePattern 生成打乱后的移动序列
//
// 参数:
//   - velocity: 步长 V
//   - repeats: {+V, -V, 0} 的重复次数
//   - maxSameMove: 同一步长最多连续帧数
//   - yUpper, yLower: 允许的纵向范围（实体中心）
func (c *MovementController) NewMovePattern(velocity, repeats, maxSameMove int, yUpper, yLower float64) *components.MovePatternComponent {
	if repeats < 1 {
		repeats = 1
	}
	pattern := make([]int, 0, repeats*3)
	for i := 0; i < repeats; i++ {
		pattern = append(pattern, velocity, -velocity, 0)
	}

	p := &components.MovePatternComponent{
		Pattern:     pattern,
		MaxSameMove: maxSameMove,
		YUpperBound: yUpper,
		YLowerBound: yLower,
	}
	c.shuffle(p)
	return p
}

// NextMove 返回本帧的纵向步长并推进状态
func (c *MovementController) NextMove(p *components.MovePatternComponent) int {
	if len(p.Pattern) == 0 {
		return 0
	}
	if p.Index >= len(p.Pattern) {
		p.Index = 0
	}

	move := p.Pattern[p.Index]
	p.SameMoveCount++
	if p.SameMoveCount >= p.MaxSameMove {
		c.shuffle(p)
		p.SameMoveCount = 0
		p.Index++
		if p.Index >= len(p.Pattern) {
			p.Index = 0
		}
	}
	return move
}

// Apply 移动 Boss；越界的移动被回滚，位置保持不变（不是截断到边界）
// 返回移动后的 Y
func (c *MovementController) Apply(p *components.MovePatternComponent, y float64) float64 {
	next := y + float64(c.NextMove(p))
	if next < p.YUpperBound || next > p.YLowerBound {
		return y
	}
	return next
}

func (c *MovementController) shuffle(p *components.MovePatternComponent) {
	c.rng.Shuffle(len(p.Pattern), func(i, j int) {
		p.Pattern[i], p.Pattern[j] = p.Pattern[j], p.Pattern[i]
	})
}
