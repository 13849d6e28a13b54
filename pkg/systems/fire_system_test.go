package systems

import (
	"testing"

	"github.com/gonewx/skybattle/internal/testutil"
	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/entities"
	"github.com/gonewx/skybattle/pkg/game"
	"github.com/gonewx/skybattle/pkg/systems/boss"
)

func newTestFireSystem(em *ecs.EntityManager, rng game.RandomSource, hooks Hooks) *FireSystem {
	return NewFireSystem(em, rng, boss.NewAttackController(rng), NewProjectileKinds(testUnits()), hooks)
}

// TestFireSystem_UserPowerLevels 火力等级决定每次开火的子弹数
func TestFireSystem_UserPowerLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		wantShots int
	}{
		{"等级1直线", 1, 1},
		{"等级2成对", 2, 2},
		{"等级3散射", 3, 3},
		{"等级4扇形", 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hooks, presenter, audio := newTestHooks()
			em := ecs.NewEntityManager()
			user := spawnUser(em)
			player, _ := ecs.GetComponent[*components.PlayerComponent](em, user)
			if !SetPowerLevel(player, tt.level) {
				t.Fatalf("SetPowerLevel(%d) rejected", tt.level)
			}
			player.FireRequested = true

			newTestFireSystem(em, testutil.Never(), hooks).Update()

			if got := em.Count(ecs.GroupUserProjectile); got != tt.wantShots {
				t.Errorf("Expected %d projectiles, got %d", tt.wantShots, got)
			}
			if len(presenter.Spawned) != tt.wantShots {
				t.Errorf("Expected %d spawn notifications, got %d", tt.wantShots, len(presenter.Spawned))
			}
			if audio.Shots != 1 {
				t.Errorf("Expected 1 shot cue, got %d", audio.Shots)
			}
			for _, id := range em.Entities(ecs.GroupUserProjectile) {
				vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
				if vel.VX != 15 {
					t.Errorf("projectile VX = %.0f, want 15", vel.VX)
				}
			}
		})
	}
}

// TestFireSystem_UserCooldown 按住开火键时按冷却间隔连发
func TestFireSystem_UserCooldown(t *testing.T) {
	em := ecs.NewEntityManager()
	user := spawnUser(em)
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, user)
	player.FireRequested = true

	fs := newTestFireSystem(em, testutil.Never(), Hooks{})
	for i := 0; i < 12; i++ {
		fs.Update()
	}

	// 冷却 5 帧：第 0、6 帧开火
	if got := em.Count(ecs.GroupUserProjectile); got != 2 {
		t.Errorf("Expected 2 projectiles in 12 ticks, got %d", got)
	}
}

// TestFireSystem_UserNoRequest 没有开火请求时不发射
func TestFireSystem_UserNoRequest(t *testing.T) {
	em := ecs.NewEntityManager()
	spawnUser(em)

	newTestFireSystem(em, testutil.Always(), Hooks{}).Update()
	if got := em.Count(ecs.GroupUserProjectile); got != 0 {
		t.Errorf("Expected no projectiles, got %d", got)
	}
}

// TestFireSystem_EnemyFireRate 敌机按开火率发射，不触发射击音效
func TestFireSystem_EnemyFireRate(t *testing.T) {
	tests := []struct {
		name  string
		rng   *testutil.ScriptedRandom
		shots int
	}{
		{"判定成功", testutil.Always(), 1},
		{"判定失败", testutil.Never(), 0},
		{"恰好等于开火率不算成功", &testutil.ScriptedRandom{Floats: []float64{0.01}, Fallback: 0.999999}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hooks, _, audio := newTestHooks()
			em := ecs.NewEntityManager()
			spawnEnemyAt(t, em, 1000, 300, 1)

			newTestFireSystem(em, tt.rng, hooks).Update()

			if got := em.Count(ecs.GroupEnemyProjectile); got != tt.shots {
				t.Errorf("Expected %d enemy projectiles, got %d", tt.shots, got)
			}
			if audio.Shots != 0 {
				t.Errorf("enemy fire should not trigger shot cue, got %d", audio.Shots)
			}
		})
	}
}

// TestFireSystem_DestroyedDoesNotFire 已摧毁的战机不开火
func TestFireSystem_DestroyedDoesNotFire(t *testing.T) {
	em := ecs.NewEntityManager()
	enemy := spawnEnemyAt(t, em, 1000, 300, 1)
	Destroy(em, enemy)

	newTestFireSystem(em, testutil.Always(), Hooks{}).Update()
	if got := em.Count(ecs.GroupEnemyProjectile); got != 0 {
		t.Errorf("Expected no projectiles, got %d", got)
	}
}

// TestFireSystem_BossAttack Boss 在可用攻击方式中选择
func TestFireSystem_BossAttack(t *testing.T) {
	em := ecs.NewEntityManager()
	mc := boss.NewMovementController(testutil.Never())
	variant := testBossVariants().Variants["mutation-1"]
	variant.AttackTypes = []string{"straight", "paired"}
	pattern := mc.NewMovePattern(8, 5, 10, 40, 700)
	entities.NewBoss(em, "mutation-1", variant, pattern)

	// Float64=0 通过开火判定；Intn 选中第 2 种（成对）
	rng := &testutil.ScriptedRandom{Ints: []int{1}}
	newTestFireSystem(em, rng, Hooks{}).Update()

	shots := em.Entities(ecs.GroupEnemyProjectile)
	if len(shots) != 2 {
		t.Fatalf("Expected paired attack (2 projectiles), got %d", len(shots))
	}
	for _, id := range shots {
		b, _ := ecs.GetComponent[*components.BehaviorComponent](em, id)
		if b.Type != components.BehaviorBossProjectile {
			t.Errorf("projectile behavior = %s, want boss projectile", b.Type)
		}
	}
}
