package systems

import (
	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/systems/boss"
)

// TakeDamage 对实体施加一次伤害
//
// 规则由 DamageableComponent 决定：
//   - DamageDestroy（子弹）：直接销毁
//   - DamageImmune（补给）：无效
//   - DamageDecrement（战机）：护盾开启时无效；否则生命 -1，归零时销毁
//
// 生命值不会小于 0；已销毁的实体不会被“复活”。
// 返回伤害是否生效。
func TakeDamage(em *ecs.EntityManager, id ecs.EntityID) bool {
	destructible, ok := ecs.GetComponent[*components.DestructibleComponent](em, id)
	if !ok {
		return false
	}

	rule := components.DamageDecrement
	if d, ok := ecs.GetComponent[*components.DamageableComponent](em, id); ok {
		rule = d.Rule
	}

	switch rule {
	case components.DamageImmune:
		return false
	case components.DamageDestroy:
		destructible.Destroyed = true
		return true
	}

	shield, _ := ecs.GetComponent[*components.ShieldComponent](em, id)
	if boss.Absorbs(shield) {
		return false
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		destructible.Destroyed = true
		return true
	}
	if health.CurrentHealth <= 0 {
		health.CurrentHealth = 0
		destructible.Destroyed = true
		return false
	}

	health.CurrentHealth--
	if health.CurrentHealth == 0 {
		destructible.Destroyed = true
	}
	return true
}

// IsDestroyed 实体是否已被标记销毁（不存在的实体视为已销毁）
func IsDestroyed(em *ecs.EntityManager, id ecs.EntityID) bool {
	d, ok := ecs.GetComponent[*components.DestructibleComponent](em, id)
	if !ok {
		return !em.Exists(id)
	}
	return d.Destroyed
}

// Destroy 标记实体销毁，实际移除发生在清理阶段
func Destroy(em *ecs.EntityManager, id ecs.EntityID) {
	if d, ok := ecs.GetComponent[*components.DestructibleComponent](em, id); ok {
		d.Destroyed = true
	}
}
