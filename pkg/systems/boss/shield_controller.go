package boss

import (
	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/game"
)

// ShieldController 护盾状态机
//
// 未开启时每帧以 ActivationProbability 的概率开启；
// 开启后累计帧数，达到 MaxFrames 自动关闭并清零。
type ShieldController struct {
	rng game.RandomSource
}

// NewShieldController 创建护盾控制器
func NewShieldController(rng game.RandomSource) *ShieldController {
	return &ShieldController{rng: rng}
}

// Update 推进一帧护盾状态
// 返回护盾是否在本帧切换了开关状态
func (c *ShieldController) Update(s *components.ShieldComponent) bool {
	if s.Active {
		s.FramesElapsed++
		if s.FramesElapsed >= s.MaxFrames {
			c.Deactivate(s)
			return true
		}
		return false
	}

	if game.Chance(c.rng, s.ActivationProbability) {
		s.Active = true
		s.FramesElapsed = 0
		return true
	}
	return false
}

// Deactivate 强制关闭护盾
func (c *ShieldController) Deactivate(s *components.ShieldComponent) {
	s.Active = false
	s.FramesElapsed = 0
}

// Absorbs 护盾是否吸收伤害（开启期间完全免疫）
func Absorbs(s *components.ShieldComponent) bool {
	return s != nil && s.Active
}
