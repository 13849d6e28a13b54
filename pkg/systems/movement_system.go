package systems

import (
	"math"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/game"
	"github.com/gonewx/skybattle/pkg/systems/boss"
)

// MovementSystem 按集合顺序更新所有实体的位置与碰撞盒
//
// 集合顺序：友方、敌方、玩家子弹、敌方子弹、弹药箱、生命补给。
// 玩家输入只在这里读取一次。
type MovementSystem struct {
	entityManager *ecs.EntityManager
	input         *game.InputState
	movement      *boss.MovementController
}

// NewMovementSystem 创建移动系统
//
// 参数:
//   - em: 实体管理器
//   - input: 玩家输入（可为 nil，表示无人操作）
//   - mc: Boss 移动控制器
func NewMovementSystem(em *ecs.EntityManager, input *game.InputState, mc *boss.MovementController) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		input:         input,
		movement:      mc,
	}
}

// Update 更新所有实体
func (s *MovementSystem) Update() {
	var snapshot game.InputSnapshot
	if s.input != nil {
		snapshot = s.input.Snapshot()
	}

	for _, group := range ecs.Groups() {
		for _, id := range s.entityManager.Entities(group) {
			s.updateEntity(id, snapshot)
		}
	}
}

func (s *MovementSystem) updateEntity(id ecs.EntityID, input game.InputSnapshot) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	behavior, _ := ecs.GetComponent[*components.BehaviorComponent](s.entityManager, id)
	kind := components.BehaviorUserProjectile
	if behavior != nil {
		kind = behavior.Type
	}

	switch kind {
	case components.BehaviorUserPlane:
		s.moveUserPlane(id, pos, input)
	case components.BehaviorSineEnemy:
		s.moveSine(id, pos)
	case components.BehaviorBoss:
		s.moveBoss(id, pos)
	default:
		s.moveLinear(id, pos)
	}

	s.updateHitbox(id, pos)
}

// moveUserPlane 玩家飞机：方向乘数 × 速度；越界的分量回滚
func (s *MovementSystem) moveUserPlane(id ecs.EntityID, pos *components.PositionComponent, input game.InputSnapshot) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok {
		return
	}
	player.MoveX = input.MoveX
	player.MoveY = input.MoveY
	player.FireRequested = input.Fire

	nextX := pos.X + float64(player.MoveX)*player.Speed
	if nextX >= player.MinX && nextX <= player.MaxX {
		pos.X = nextX
	}
	nextY := pos.Y + float64(player.MoveY)*player.Speed
	if nextY >= player.MinY && nextY <= player.MaxY {
		pos.Y = nextY
	}
}

// moveSine 正弦敌机：水平匀速，纵向围绕出生线摆动
func (s *MovementSystem) moveSine(id ecs.EntityID, pos *components.PositionComponent) {
	s.moveLinear(id, pos)

	wave, ok := ecs.GetComponent[*components.SineMotionComponent](s.entityManager, id)
	if !ok || wave.Period <= 0 {
		return
	}
	wave.Ticks++
	phase := 2 * math.Pi * float64(wave.Ticks) / float64(wave.Period)
	pos.Y = wave.BaseY + wave.Amplitude*math.Sin(phase)
}

// moveBoss Boss：纵向按移动序列，越界回滚
func (s *MovementSystem) moveBoss(id ecs.EntityID, pos *components.PositionComponent) {
	pattern, ok := ecs.GetComponent[*components.MovePatternComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos.Y = s.movement.Apply(pattern, pos.Y)
}

func (s *MovementSystem) moveLinear(id ecs.EntityID, pos *components.PositionComponent) {
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos.X += vel.VX
	pos.Y += vel.VY
}

// updateHitbox 位置更新后立即刷新碰撞盒
func (s *MovementSystem) updateHitbox(id ecs.EntityID, pos *components.PositionComponent) {
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		col.Bounds = col.BoundsAt(pos.X, pos.Y)
	}
}
