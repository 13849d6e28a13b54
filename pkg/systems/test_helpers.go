package systems

import (
	"testing"

	"github.com/gonewx/skybattle/internal/testutil"
	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/entities"
)

// testWorld 测试用世界配置（与默认配置一致）
func testWorld() config.WorldConfig {
	return config.DefaultWorldConfig()
}

// testUnits 测试用单位配置
func testUnits() *config.UnitsConfig {
	units := &config.UnitsConfig{
		Player: config.PlayerConfig{
			Sprite:            "userplane",
			Speed:             8,
			FireCooldownTicks: 5,
			MaxPowerLevel:     4,
			ProjectileSpeed:   15,
			SpreadSpeed:       3,
			StartX:            100,
			StartY:            350,
			Hitbox:            config.HitboxConfig{Width: 100, Height: 40},
		},
		Enemies: map[string]config.EnemyConfig{
			"basic": {
				Sprite:          "enemyplane",
				Behavior:        config.EnemyBehaviorStraight,
				Health:          1,
				FireRate:        0.01,
				Speed:           -6,
				ProjectileSpeed: -10,
				Hitbox:          config.HitboxConfig{Width: 100, Height: 40},
			},
		},
		Pickups: config.PickupConfig{
			Speed: -3,
			Ammo:  config.ProjectileConfig{Hitbox: config.HitboxConfig{Width: 40, Height: 40}},
			Heart: config.ProjectileConfig{Hitbox: config.HitboxConfig{Width: 40, Height: 40}},
		},
	}
	units.Projectiles.User.Hitbox = config.HitboxConfig{Width: 40, Height: 12}
	units.Projectiles.Enemy.Hitbox = config.HitboxConfig{Width: 40, Height: 12}
	units.Projectiles.Boss.Hitbox = config.HitboxConfig{Width: 50, Height: 30}
	return units
}

// testBossVariants 测试用 Boss 变体表
func testBossVariants() *config.BossVariantsConfig {
	return &config.BossVariantsConfig{Variants: map[string]config.BossVariantConfig{
		"boss": {
			Sprite:            "bossplane",
			Health:            3,
			FireRate:          0.04,
			AttackTypes:       []string{"straight"},
			ShieldProbability: 0.002,
			ShieldMaxFrames:   50,
			VerticalVelocity:  8,
			MoveRepeats:       5,
			MaxSameMove:       10,
			ProjectileSpeed:   -15,
			PatternOffset:     50,
			StartX:            1000,
			StartY:            400,
			Hitbox:            config.HitboxConfig{Width: 200, Height: 80},
		},
		"mutation-1": {
			Sprite:           "bossplane-mutation1",
			Health:           2,
			FireRate:         0.05,
			AttackTypes:      []string{"straight", "paired"},
			VerticalVelocity: 8,
			MoveRepeats:      5,
			MaxSameMove:      10,
			ProjectileSpeed:  -15,
			PatternOffset:    50,
			StartX:           1000,
			StartY:           400,
			Hitbox:           config.HitboxConfig{Width: 200, Height: 80},
		},
	}}
}

// spawnUser 创建玩家飞机（5 点生命，位于 (100, 350)）
func spawnUser(em *ecs.EntityManager) ecs.EntityID {
	return entities.NewUserPlane(em, testUnits().Player, 5, testWorld())
}

// spawnEnemyAt 在指定位置创建普通敌机
func spawnEnemyAt(t *testing.T, em *ecs.EntityManager, x, y float64, health int) ecs.EntityID {
	t.Helper()
	cfg := testUnits().Enemies["basic"]
	cfg.Health = health
	id, err := entities.NewEnemyPlane(em, cfg, x, y)
	if err != nil {
		t.Fatalf("NewEnemyPlane() failed: %v", err)
	}
	return id
}

// spawnShotAt 在指定位置创建子弹
func spawnShotAt(t *testing.T, em *ecs.EntityManager, behavior components.BehaviorType, x, y, vx float64) ecs.EntityID {
	t.Helper()
	kinds := NewProjectileKinds(testUnits())
	kind := kinds.User
	switch behavior {
	case components.BehaviorEnemyProjectile:
		kind = kinds.Enemy
	case components.BehaviorBossProjectile:
		kind = kinds.Boss
	}
	id, err := entities.NewProjectile(em, kind, entities.ProjectileSpec{X: x, Y: y, VX: vx})
	if err != nil {
		t.Fatalf("NewProjectile() failed: %v", err)
	}
	return id
}

// moveTo 直接设置实体位置并刷新碰撞盒
func moveTo(em *ecs.EntityManager, id ecs.EntityID, x, y float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X, pos.Y = x, y
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		col.Bounds = col.BoundsAt(x, y)
	}
}

// healthOf 返回实体当前生命（无生命组件时为 -1）
func healthOf(em *ecs.EntityManager, id ecs.EntityID) int {
	h, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		return -1
	}
	return h.CurrentHealth
}

// newTestHooks 创建记录型回调
func newTestHooks() (Hooks, *testutil.RecordingPresenter, *testutil.RecordingAudio) {
	p := testutil.NewRecordingPresenter()
	a := &testutil.RecordingAudio{}
	return Hooks{Presenter: p, Audio: a}, p, a
}
