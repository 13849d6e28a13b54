package entities

import (
	"fmt"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
)

// ProjectileSpec 一发子弹的出生参数
// 弹幕构造函数只生成 ProjectileSpec，由开火系统统一创建实体
type ProjectileSpec struct {
	X, Y   float64 // 出生位置（子弹中心）
	VX, VY float64 // 速度（像素/帧）
}

// ProjectileKind 子弹的外观与碰撞参数
type ProjectileKind struct {
	Behavior components.BehaviorType // BehaviorUserProjectile / EnemyProjectile / BossProjectile
	Sprite   string
	Hitbox   config.HitboxConfig
}

// GroupForProjectile 返回子弹行为对应的集合
func GroupForProjectile(behavior components.BehaviorType) (ecs.Group, error) {
	switch behavior {
	case components.BehaviorUserProjectile:
		return ecs.GroupUserProjectile, nil
	case components.BehaviorEnemyProjectile, components.BehaviorBossProjectile:
		return ecs.GroupEnemyProjectile, nil
	default:
		return 0, fmt.Errorf("behavior %s is not a projectile", behavior)
	}
}

// NewProjectile 创建子弹实体
// 子弹任何命中都会销毁自身（DamageDestroy）
//
// 参数:
//   - em: 实体管理器
//   - kind: 子弹类型
//   - spec: 出生位置与速度
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID
//   - error: kind 不是子弹类型时返回错误
func NewProjectile(em *ecs.EntityManager, kind ProjectileKind, spec ProjectileSpec) (ecs.EntityID, error) {
	group, err := GroupForProjectile(kind.Behavior)
	if err != nil {
		return 0, err
	}

	id := em.CreateEntity(group)
	em.AddComponent(id, &components.PositionComponent{X: spec.X, Y: spec.Y})
	em.AddComponent(id, &components.VelocityComponent{VX: spec.VX, VY: spec.VY})
	em.AddComponent(id, &components.BehaviorComponent{Type: kind.Behavior, SpriteID: kind.Sprite})
	em.AddComponent(id, &components.DestructibleComponent{})
	em.AddComponent(id, &components.DamageableComponent{Rule: components.DamageDestroy})
	addCollision(em, id, kind.Hitbox, spec.X, spec.Y)

	return id, nil
}
