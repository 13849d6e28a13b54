package systems

import (
	"log"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/game"
)

// SweepSystem 清理阶段：越界处理与已销毁实体的移除
// 必须在所有碰撞检测之后运行
type SweepSystem struct {
	entityManager *ecs.EntityManager
	world         config.WorldConfig
	hooks         Hooks
}

// NewSweepSystem 创建清理系统
func NewSweepSystem(em *ecs.EntityManager, world config.WorldConfig, hooks Hooks) *SweepSystem {
	return &SweepSystem{
		entityManager: em,
		world:         world,
		hooks:         hooks.withDefaults(),
	}
}

// Update 先处理越界，再移除所有已销毁实体
// 返回本帧移除的实体ID
func (s *SweepSystem) Update() []ecs.EntityID {
	s.CleanOutOfBounds()
	return s.Sweep()
}

// CleanOutOfBounds 将越界实体标记为销毁
//
//   - 玩家子弹越过右边界
//   - 敌方子弹、补给越过左边界
//   - 敌机越过左边界：突破防线，玩家扣 1 点生命
func (s *SweepSystem) CleanOutOfBounds() {
	for _, id := range s.entityManager.Entities(ecs.GroupUserProjectile) {
		if x, ok := s.x(id); ok && x > s.world.RightBoundary {
			Destroy(s.entityManager, id)
		}
	}
	for _, group := range []ecs.Group{ecs.GroupEnemyProjectile, ecs.GroupAmmo, ecs.GroupHeart} {
		for _, id := range s.entityManager.Entities(group) {
			if x, ok := s.x(id); ok && x < s.world.LeftBoundary {
				Destroy(s.entityManager, id)
			}
		}
	}
	for _, id := range s.entityManager.Entities(ecs.GroupEnemy) {
		if IsDestroyed(s.entityManager, id) {
			continue
		}
		if x, ok := s.x(id); ok && x < s.world.LeftBoundary {
			Destroy(s.entityManager, id)
			s.penetrate()
		}
	}
}

// penetrate 敌机突破防线，对所有友方单位造成一次伤害
func (s *SweepSystem) penetrate() {
	for _, id := range s.entityManager.Entities(ecs.GroupFriendly) {
		if TakeDamage(s.entityManager, id) {
			s.hooks.Audio.OnUserDamaged()
		}
	}
	log.Printf("[SweepSystem] Enemy broke through the left boundary")
}

// Sweep 移除所有已销毁的实体；战机在移除前触发爆炸
func (s *SweepSystem) Sweep() []ecs.EntityID {
	explosions, _ := s.hooks.Presenter.(game.ExplosionListener)

	for _, group := range ecs.Groups() {
		for _, id := range s.entityManager.Entities(group) {
			if !IsDestroyed(s.entityManager, id) {
				continue
			}
			if behavior, ok := ecs.GetComponent[*components.BehaviorComponent](s.entityManager, id); ok && behavior.Type.IsFighter() {
				s.hooks.Audio.OnExplosion()
				if explosions != nil {
					if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
						explosions.OnExplosionAt(pos.X, pos.Y)
					}
				}
			}
			s.entityManager.DestroyEntity(id)
		}
	}

	removed := s.entityManager.RemoveMarkedEntities()
	for _, id := range removed {
		s.hooks.Presenter.OnEntityRemoved(id)
	}
	return removed
}

func (s *SweepSystem) x(id ecs.EntityID) (float64, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return 0, false
	}
	return pos.X, true
}
