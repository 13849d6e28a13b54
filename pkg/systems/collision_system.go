package systems

import (
	"log"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/ecs"
)

// CollisionSystem 集合之间的两两碰撞检测
//
// 检测顺序：
//  1. 友方 vs 敌方（撞机）
//  2. 玩家子弹 vs 敌方
//  3. 敌方子弹 vs 友方
//  4. 玩家 vs 弹药箱
//  5. 玩家 vs 生命补给
//
// 销毁推迟到清理阶段：本帧已被摧毁的实体仍参与后续检测，
// 因此一发子弹可能在同一帧命中多个重叠的目标。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	hooks         Hooks
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, hooks Hooks) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		hooks:         hooks.withDefaults(),
	}
}

// Update 执行本帧所有配对检测
func (s *CollisionSystem) Update() {
	s.Resolve(ecs.GroupFriendly, ecs.GroupEnemy)
	s.Resolve(ecs.GroupUserProjectile, ecs.GroupEnemy)
	s.Resolve(ecs.GroupEnemyProjectile, ecs.GroupFriendly)
	s.resolvePickups(ecs.GroupAmmo)
	s.resolvePickups(ecs.GroupHeart)
}

// Resolve 对每一对相交的 (a, b) 双方各施加一次伤害
// 返回相交的配对数
func (s *CollisionSystem) Resolve(groupA, groupB ecs.Group) int {
	hits := 0
	as := s.entityManager.Entities(groupA)
	bs := s.entityManager.Entities(groupB)

	for _, a := range as {
		boundsA, ok := s.bounds(a)
		if !ok {
			continue
		}
		for _, b := range bs {
			boundsB, ok := s.bounds(b)
			if !ok || !boundsA.Intersects(boundsB) {
				continue
			}
			hits++
			s.damage(a)
			s.damage(b)
		}
	}
	return hits
}

// damage 施加伤害；玩家飞机掉血时触发受击音效
func (s *CollisionSystem) damage(id ecs.EntityID) {
	if !TakeDamage(s.entityManager, id) {
		return
	}
	if ecs.HasComponent[*components.PlayerComponent](s.entityManager, id) {
		s.hooks.Audio.OnUserDamaged()
	}
}

// resolvePickups 玩家接触补给：补给销毁并生效
// 已被销毁的补给不会再次生效；本帧已被击落的玩家不再拾取
func (s *CollisionSystem) resolvePickups(group ecs.Group) {
	for _, user := range ecs.GetGroupEntitiesWith1[*components.PlayerComponent](s.entityManager, ecs.GroupFriendly) {
		if IsDestroyed(s.entityManager, user) {
			continue
		}
		userBounds, ok := s.bounds(user)
		if !ok {
			continue
		}
		for _, item := range s.entityManager.Entities(group) {
			if IsDestroyed(s.entityManager, item) {
				continue
			}
			itemBounds, ok := s.bounds(item)
			if !ok || !userBounds.Intersects(itemBounds) {
				continue
			}
			Destroy(s.entityManager, item)
			s.applyPickup(user, item)
		}
	}
}

func (s *CollisionSystem) applyPickup(user, item ecs.EntityID) {
	pickup, ok := ecs.GetComponent[*components.PickupComponent](s.entityManager, item)
	if !ok {
		return
	}

	switch pickup.Kind {
	case components.PickupAmmo:
		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, user); ok {
			if IncreasePowerLevel(player) {
				log.Printf("[CollisionSystem] Power level up: %d", player.PowerLevel)
			}
		}
	case components.PickupHeart:
		if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, user); ok {
			health.CurrentHealth++
		}
	}
	s.hooks.Audio.OnPickup()
}

func (s *CollisionSystem) bounds(id ecs.EntityID) (components.Rect, bool) {
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return components.Rect{}, false
	}
	return col.Bounds, true
}
