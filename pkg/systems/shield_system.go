package systems

import (
	"log"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/systems/boss"
)

// ShieldSystem 推进所有护盾的状态机
type ShieldSystem struct {
	entityManager *ecs.EntityManager
	controller    *boss.ShieldController
	hooks         Hooks
}

// NewShieldSystem 创建护盾系统
func NewShieldSystem(em *ecs.EntityManager, sc *boss.ShieldController, hooks Hooks) *ShieldSystem {
	return &ShieldSystem{
		entityManager: em,
		controller:    sc,
		hooks:         hooks.withDefaults(),
	}
}

// Update 每帧推进一次
func (s *ShieldSystem) Update() {
	for _, id := range ecs.GetGroupEntitiesWith1[*components.ShieldComponent](s.entityManager, ecs.GroupEnemy) {
		shield, _ := ecs.GetComponent[*components.ShieldComponent](s.entityManager, id)
		if IsDestroyed(s.entityManager, id) {
			continue
		}
		if s.controller.Update(shield) {
			log.Printf("[ShieldSystem] Entity %d shield active=%v", id, shield.Active)
			s.hooks.Audio.OnShieldToggle(shield.Active)
		}
	}
}
