package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
)

// NewUserPlane 创建玩家飞机
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩家参数
//   - health: 初始生命（来自关卡配置）
//   - world: 世界配置（决定可移动范围）
//
// 返回:
//   - ecs.EntityID: 玩家飞机实体ID
func NewUserPlane(em *ecs.EntityManager, cfg config.PlayerConfig, health int, world config.WorldConfig) ecs.EntityID {
	id := em.CreateEntity(ecs.GroupFriendly)

	x := clamp(cfg.StartX, world.PlayLeft, world.PlayRight)
	y := clamp(cfg.StartY, world.PlayTop, world.PlayBottom)

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorUserPlane, SpriteID: cfg.Sprite})
	em.AddComponent(id, &components.DestructibleComponent{})
	em.AddComponent(id, &components.DamageableComponent{Rule: components.DamageDecrement})
	em.AddComponent(id, &components.HealthComponent{CurrentHealth: health, MaxHealth: health})
	em.AddComponent(id, &components.PlayerComponent{
		Speed:             cfg.Speed,
		FireCooldownTicks: cfg.FireCooldownTicks,
		PowerLevel:        1,
		MaxPowerLevel:     cfg.MaxPowerLevel,
		ProjectileSpeed:   cfg.ProjectileSpeed,
		SpreadSpeed:       cfg.SpreadSpeed,
		OffsetX:           cfg.ProjectileOffsetX,
		OffsetY:           cfg.ProjectileOffsetY,
		MinX:              world.PlayLeft,
		MaxX:              world.PlayRight,
		MinY:              world.PlayTop,
		MaxY:              world.PlayBottom,
	})
	addCollision(em, id, cfg.Hitbox, x, y)

	log.Printf("[PlaneFactory] User plane %d created at (%.0f, %.0f) with %d health", id, x, y, health)
	return id
}

// NewEnemyPlane 创建普通敌机（直线或正弦）
func NewEnemyPlane(em *ecs.EntityManager, cfg config.EnemyConfig, x, y float64) (ecs.EntityID, error) {
	var behavior components.BehaviorType
	switch cfg.Behavior {
	case config.EnemyBehaviorStraight:
		behavior = components.BehaviorEnemyPlane
	case config.EnemyBehaviorSine:
		behavior = components.BehaviorSineEnemy
	default:
		return 0, fmt.Errorf("unknown enemy behavior %q", cfg.Behavior)
	}

	id := em.CreateEntity(ecs.GroupEnemy)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: cfg.Speed})
	em.AddComponent(id, &components.BehaviorComponent{Type: behavior, SpriteID: cfg.Sprite})
	em.AddComponent(id, &components.DestructibleComponent{})
	em.AddComponent(id, &components.DamageableComponent{Rule: components.DamageDecrement})
	em.AddComponent(id, &components.HealthComponent{CurrentHealth: cfg.Health, MaxHealth: cfg.Health})
	em.AddComponent(id, &components.WeaponComponent{
		FireRate:        cfg.FireRate,
		ProjectileSpeed: cfg.ProjectileSpeed,
		OffsetX:         cfg.ProjectileOffsetX,
		OffsetY:         cfg.ProjectileOffsetY,
	})
	if behavior == components.BehaviorSineEnemy {
		em.AddComponent(id, &components.SineMotionComponent{
			BaseY:     y,
			Amplitude: cfg.Amplitude,
			Period:    cfg.Period,
		})
	}
	addCollision(em, id, cfg.Hitbox, x, y)

	return id, nil
}

// NewBoss 创建 Boss
//
// 参数:
//   - em: 实体管理器
//   - variantID: 变体ID
//   - v: 变体参数
//   - pattern: 已打乱的纵向移动序列（由移动控制器生成）
//
// 返回:
//   - ecs.EntityID: Boss 实体ID
//
// 出生位置会被限制在移动序列允许的纵向范围内。
func NewBoss(em *ecs.EntityManager, variantID string, v config.BossVariantConfig, pattern *components.MovePatternComponent) ecs.EntityID {
	y := clamp(v.StartY, pattern.YUpperBound, pattern.YLowerBound)

	id := em.CreateEntity(ecs.GroupEnemy)
	em.AddComponent(id, &components.PositionComponent{X: v.StartX, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorBoss, SpriteID: v.Sprite})
	em.AddComponent(id, &components.DestructibleComponent{})
	em.AddComponent(id, &components.DamageableComponent{Rule: components.DamageDecrement})
	em.AddComponent(id, &components.HealthComponent{CurrentHealth: v.Health, MaxHealth: v.Health})
	em.AddComponent(id, &components.WeaponComponent{
		FireRate:        v.FireRate,
		ProjectileSpeed: v.ProjectileSpeed,
		OffsetX:         v.ProjectileOffsetX,
		OffsetY:         v.ProjectileOffsetY,
	})
	em.AddComponent(id, &components.BossComponent{
		VariantID:     variantID,
		AttackTypes:   v.ResolvedAttackTypes(),
		SpreadSpeed:   v.SpreadSpeed,
		PatternOffset: v.PatternOffset,
	})
	em.AddComponent(id, &components.ShieldComponent{
		ActivationProbability: v.ShieldProbability,
		MaxFrames:             v.ShieldMaxFrames,
	})
	em.AddComponent(id, pattern)
	addCollision(em, id, v.Hitbox, v.StartX, y)

	log.Printf("[PlaneFactory] Boss %d (%s) created with %d health, attacks=%v", id, variantID, v.Health, v.AttackTypes)
	return id
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
