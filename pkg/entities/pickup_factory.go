package entities

import (
	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
)

// NewPickup 创建补给（弹药箱或生命补给）
// 补给不受伤害，只有被玩家接触或飘出左边界时才会销毁
func NewPickup(em *ecs.EntityManager, kind components.PickupKind, cfg config.PickupConfig, x, y float64) ecs.EntityID {
	group := ecs.GroupAmmo
	behavior := components.BehaviorAmmoBox
	look := cfg.Ammo
	if kind == components.PickupHeart {
		group = ecs.GroupHeart
		behavior = components.BehaviorHeart
		look = cfg.Heart
	}

	id := em.CreateEntity(group)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: cfg.Speed})
	em.AddComponent(id, &components.BehaviorComponent{Type: behavior, SpriteID: look.Sprite})
	em.AddComponent(id, &components.DestructibleComponent{})
	em.AddComponent(id, &components.DamageableComponent{Rule: components.DamageImmune})
	em.AddComponent(id, &components.PickupComponent{Kind: kind})
	addCollision(em, id, look.Hitbox, x, y)

	return id
}
