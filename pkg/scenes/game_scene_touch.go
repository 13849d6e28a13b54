package scenes

import (
	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// touchDeadZone 触点与飞机中心的距离小于该值时该轴不移动
const touchDeadZone = 12.0

// handleTouch 移动端：飞机朝第一个触点移动，按住即开火
// 返回是否有触点（有触点时覆盖键盘输入）
func (s *GameScene) handleTouch() bool {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) == 0 {
		return false
	}
	level := s.campaign.Level()
	if level == nil {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](level.EntityManager(), level.State().UserID)
	if !ok {
		return false
	}

	tx, ty := ebiten.TouchPosition(s.touchIDs[0])
	dx, dy := touchAxes(pos.X, pos.Y, float64(tx), float64(ty))
	s.input.SetMove(dx, dy)
	s.input.SetFire(true)
	return true
}

// touchAxes 从飞机位置 (px, py) 指向触点 (tx, ty) 的方向
func touchAxes(px, py, tx, ty float64) (dx, dy int) {
	return axis(tx - px), axis(ty - py)
}

func axis(d float64) int {
	switch {
	case d > touchDeadZone:
		return 1
	case d < -touchDeadZone:
		return -1
	default:
		return 0
	}
}
