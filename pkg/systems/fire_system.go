package systems

import (
	"log"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/entities"
	"github.com/gonewx/skybattle/pkg/game"
	"github.com/gonewx/skybattle/pkg/systems/boss"
)

// ProjectileKinds 三类子弹的外观与碰撞参数
type ProjectileKinds struct {
	User  entities.ProjectileKind
	Enemy entities.ProjectileKind
	Boss  entities.ProjectileKind
}

// NewProjectileKinds 从单位配置构造子弹类型
func NewProjectileKinds(units *config.UnitsConfig) ProjectileKinds {
	return ProjectileKinds{
		User: entities.ProjectileKind{
			Behavior: components.BehaviorUserProjectile,
			Sprite:   units.Projectiles.User.Sprite,
			Hitbox:   units.Projectiles.User.Hitbox,
		},
		Enemy: entities.ProjectileKind{
			Behavior: components.BehaviorEnemyProjectile,
			Sprite:   units.Projectiles.Enemy.Sprite,
			Hitbox:   units.Projectiles.Enemy.Hitbox,
		},
		Boss: entities.ProjectileKind{
			Behavior: components.BehaviorBossProjectile,
			Sprite:   units.Projectiles.Boss.Sprite,
			Hitbox:   units.Projectiles.Boss.Hitbox,
		},
	}
}

// FireSystem 每帧为每架存活的战机生成子弹
//
// 敌机与 Boss 以开火率做伯努利试验；玩家由输入触发并受冷却限制。
type FireSystem struct {
	entityManager *ecs.EntityManager
	rng           game.RandomSource
	attack        *boss.AttackController
	kinds         ProjectileKinds
	hooks         Hooks
}

// NewFireSystem 创建开火系统
func NewFireSystem(em *ecs.EntityManager, rng game.RandomSource, ac *boss.AttackController, kinds ProjectileKinds, hooks Hooks) *FireSystem {
	return &FireSystem{
		entityManager: em,
		rng:           rng,
		attack:        ac,
		kinds:         kinds,
		hooks:         hooks.withDefaults(),
	}
}

// Update 友方先开火，敌方后开火
func (s *FireSystem) Update() {
	for _, group := range []ecs.Group{ecs.GroupFriendly, ecs.GroupEnemy} {
		for _, id := range s.entityManager.Entities(group) {
			if IsDestroyed(s.entityManager, id) {
				continue
			}
			s.fire(id)
		}
	}
}

func (s *FireSystem) fire(id ecs.EntityID) {
	behavior, ok := ecs.GetComponent[*components.BehaviorComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	switch behavior.Type {
	case components.BehaviorUserPlane:
		s.fireUser(id, pos)
	case components.BehaviorEnemyPlane, components.BehaviorSineEnemy:
		s.fireEnemy(id, pos)
	case components.BehaviorBoss:
		s.fireBoss(id, pos)
	}
}

// fireUser 玩家开火：冷却结束且按下开火键时按火力等级发射
func (s *FireSystem) fireUser(id ecs.EntityID, pos *components.PositionComponent) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok {
		return
	}

	if player.CooldownRemaining > 0 {
		player.CooldownRemaining--
		return
	}
	if !player.FireRequested {
		return
	}

	shots := boss.BuildPattern(UserAttackType(player.PowerLevel), boss.PatternParams{
		X:           pos.X + player.OffsetX,
		Y:           pos.Y + player.OffsetY,
		Speed:       player.ProjectileSpeed,
		SpreadSpeed: player.SpreadSpeed,
		Offset:      userPatternOffset,
	})
	s.spawn(s.kinds.User, shots)
	player.CooldownRemaining = player.FireCooldownTicks
	s.hooks.Audio.OnShoot()
}

// fireEnemy 普通敌机：单发直线
func (s *FireSystem) fireEnemy(id ecs.EntityID, pos *components.PositionComponent) {
	weapon, ok := ecs.GetComponent[*components.WeaponComponent](s.entityManager, id)
	if !ok || !game.Chance(s.rng, weapon.FireRate) {
		return
	}
	s.spawn(s.kinds.Enemy, boss.CreateStraightProjectiles(boss.PatternParams{
		X:     pos.X + weapon.OffsetX,
		Y:     pos.Y + weapon.OffsetY,
		Speed: weapon.ProjectileSpeed,
	}))
}

// fireBoss Boss：随机选择一种可用的攻击方式
func (s *FireSystem) fireBoss(id ecs.EntityID, pos *components.PositionComponent) {
	weapon, ok := ecs.GetComponent[*components.WeaponComponent](s.entityManager, id)
	if !ok || !game.Chance(s.rng, weapon.FireRate) {
		return
	}
	bc, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, id)
	if !ok {
		return
	}

	attack := s.attack.SelectAttackType(bc.AttackTypes)
	shots := s.attack.CreateProjectiles(attack, boss.PatternParams{
		X:           pos.X + weapon.OffsetX,
		Y:           pos.Y + weapon.OffsetY,
		Speed:       weapon.ProjectileSpeed,
		SpreadSpeed: bc.SpreadSpeed,
		Offset:      bc.PatternOffset,
	})
	s.spawn(s.kinds.Boss, shots)
}

func (s *FireSystem) spawn(kind entities.ProjectileKind, shots []entities.ProjectileSpec) {
	for _, shot := range shots {
		pid, err := entities.NewProjectile(s.entityManager, kind, shot)
		if err != nil {
			log.Printf("[FireSystem] ERROR: %v", err)
			continue
		}
		s.hooks.spawned(s.entityManager, pid)
	}
}
