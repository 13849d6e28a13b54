package systems

import (
	"testing"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/entities"
)

// TestCollision_Symmetry 相交的双方各受一次伤害
func TestCollision_Symmetry(t *testing.T) {
	hooks, _, audio := newTestHooks()
	em := ecs.NewEntityManager()
	user := spawnUser(em)
	enemy := spawnEnemyAt(t, em, 500, 300, 3)
	moveTo(em, enemy, 100, 350) // 与玩家重叠

	cs := NewCollisionSystem(em, hooks)
	cs.Update()

	if h := healthOf(em, user); h != 4 {
		t.Errorf("user health: got %d, want 4", h)
	}
	if h := healthOf(em, enemy); h != 2 {
		t.Errorf("enemy health: got %d, want 2", h)
	}
	if audio.UserDamaged != 1 {
		t.Errorf("Expected 1 user-damaged cue, got %d", audio.UserDamaged)
	}
}

// TestCollision_OneHitPerPairPerTick 每个重叠配对每帧只结算一次
func TestCollision_OneHitPerPairPerTick(t *testing.T) {
	em := ecs.NewEntityManager()
	spawnUser(em)
	enemy := spawnEnemyAt(t, em, 600, 300, 10)
	shot := spawnShotAt(t, em, components.BehaviorUserProjectile, 600, 300, 15)

	cs := NewCollisionSystem(em, Hooks{})
	if hits := cs.Resolve(ecs.GroupUserProjectile, ecs.GroupEnemy); hits != 1 {
		t.Errorf("Expected 1 intersecting pair, got %d", hits)
	}
	if h := healthOf(em, enemy); h != 9 {
		t.Errorf("enemy health: got %d, want 9", h)
	}
	if !IsDestroyed(em, shot) {
		t.Error("projectile should be destroyed")
	}
}

// TestCollision_DoubleHit 已摧毁的子弹在同一帧仍可命中另一个重叠目标
func TestCollision_DoubleHit(t *testing.T) {
	em := ecs.NewEntityManager()
	spawnUser(em)
	a := spawnEnemyAt(t, em, 600, 300, 5)
	b := spawnEnemyAt(t, em, 610, 305, 5)
	spawnShotAt(t, em, components.BehaviorUserProjectile, 605, 302, 15)

	NewCollisionSystem(em, Hooks{}).Resolve(ecs.GroupUserProjectile, ecs.GroupEnemy)

	if healthOf(em, a) != 4 || healthOf(em, b) != 4 {
		t.Errorf("Expected both overlapping enemies hit once, got %d and %d", healthOf(em, a), healthOf(em, b))
	}
}

// TestCollision_ZeroSizeHitbox 零尺寸碰撞盒永远不碰撞
func TestCollision_ZeroSizeHitbox(t *testing.T) {
	em := ecs.NewEntityManager()
	spawnUser(em)
	enemy := spawnEnemyAt(t, em, 600, 300, 5)
	shot, _ := entities.NewProjectile(em, entities.ProjectileKind{Behavior: components.BehaviorUserProjectile}, entities.ProjectileSpec{X: 600, Y: 300})

	if hits := NewCollisionSystem(em, Hooks{}).Resolve(ecs.GroupUserProjectile, ecs.GroupEnemy); hits != 0 {
		t.Errorf("Expected no collision, got %d", hits)
	}
	if healthOf(em, enemy) != 5 || IsDestroyed(em, shot) {
		t.Error("zero-size projectile should not affect anything")
	}
}

// TestCollision_TouchingEdges 边界接触算碰撞
func TestCollision_TouchingEdges(t *testing.T) {
	em := ecs.NewEntityManager()
	spawnUser(em)
	enemy := spawnEnemyAt(t, em, 600, 300, 5)                           // 宽 100：X ∈ [550, 650]
	spawnShotAt(t, em, components.BehaviorUserProjectile, 670, 300, 15) // 宽 40：X ∈ [650, 690]

	NewCollisionSystem(em, Hooks{}).Update()
	if healthOf(em, enemy) != 4 {
		t.Error("touching hitboxes should collide")
	}
}

// TestCollision_PickupIdempotence 已摧毁的补给不会再次生效
func TestCollision_PickupIdempotence(t *testing.T) {
	hooks, _, audio := newTestHooks()
	em := ecs.NewEntityManager()
	user := spawnUser(em)
	units := testUnits()

	// 两个重叠的生命补给，其中一个已被摧毁
	h1 := entities.NewPickup(em, components.PickupHeart, units.Pickups, 100, 350)
	h2 := entities.NewPickup(em, components.PickupHeart, units.Pickups, 100, 350)
	Destroy(em, h1)

	cs := NewCollisionSystem(em, hooks)
	cs.Update()
	if h := healthOf(em, user); h != 6 {
		t.Errorf("user health: got %d, want 6", h)
	}
	if !IsDestroyed(em, h2) {
		t.Error("collected heart should be destroyed")
	}

	// 同一帧内再次检测（实体尚未被清理）不会重复生效
	cs.Update()
	if h := healthOf(em, user); h != 6 {
		t.Errorf("heart applied twice: health %d", h)
	}
	if audio.Pickups != 1 {
		t.Errorf("Expected 1 pickup cue, got %d", audio.Pickups)
	}
}

// TestCollision_DestroyedUserIgnoresPickups 同一帧被击落的玩家不会被补给“复活”
func TestCollision_DestroyedUserIgnoresPickups(t *testing.T) {
	tests := []struct {
		name string
		kind components.PickupKind
	}{
		{"生命补给", components.PickupHeart},
		{"弹药箱", components.PickupAmmo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hooks, _, audio := newTestHooks()
			em := ecs.NewEntityManager()
			user := entities.NewUserPlane(em, testUnits().Player, 1, testWorld())
			spawnShotAt(t, em, components.BehaviorEnemyProjectile, 100, 350, -10)
			item := entities.NewPickup(em, tt.kind, testUnits().Pickups, 100, 350)
			player, _ := ecs.GetComponent[*components.PlayerComponent](em, user)
			power := player.PowerLevel

			NewCollisionSystem(em, hooks).Update()

			if !IsDestroyed(em, user) {
				t.Fatal("user should be shot down")
			}
			if h := healthOf(em, user); h != 0 {
				t.Errorf("destroyed user health: got %d, want 0", h)
			}
			if player.PowerLevel != power {
				t.Errorf("power level changed to %d", player.PowerLevel)
			}
			if IsDestroyed(em, item) {
				t.Error("pickup should stay in play")
			}
			if audio.Pickups != 0 {
				t.Errorf("Expected no pickup cue, got %d", audio.Pickups)
			}
		})
	}
}

// TestCollision_AmmoPowerCap 弹药箱提升火力等级，不超过上限
func TestCollision_AmmoPowerCap(t *testing.T) {
	em := ecs.NewEntityManager()
	user := spawnUser(em)
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, user)
	cs := NewCollisionSystem(em, Hooks{})

	for i := 0; i < 6; i++ {
		entities.NewPickup(em, components.PickupAmmo, testUnits().Pickups, 100, 350)
		cs.Update()
	}
	if player.PowerLevel != player.MaxPowerLevel {
		t.Errorf("power level: got %d, want capped at %d", player.PowerLevel, player.MaxPowerLevel)
	}
}

// TestCollision_EnemyProjectileVsUser 敌方子弹命中玩家
func TestCollision_EnemyProjectileVsUser(t *testing.T) {
	em := ecs.NewEntityManager()
	user := spawnUser(em)
	shot := spawnShotAt(t, em, components.BehaviorBossProjectile, 100, 350, -15)

	NewCollisionSystem(em, Hooks{}).Update()
	if healthOf(em, user) != 4 || !IsDestroyed(em, shot) {
		t.Errorf("Expected user hit and projectile destroyed, health=%d", healthOf(em, user))
	}
}
