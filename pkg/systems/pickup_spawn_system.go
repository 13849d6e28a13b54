package systems

import (
	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/entities"
	"github.com/gonewx/skybattle/pkg/game"
)

// PickupSpawnSystem 每帧以一定概率在右侧生成补给
type PickupSpawnSystem struct {
	entityManager *ecs.EntityManager
	rng           game.RandomSource
	world         config.WorldConfig
	pickups       config.PickupConfig
	ammoProb      float64
	heartProb     float64
	hooks         Hooks
}

// NewPickupSpawnSystem 创建补给生成系统
func NewPickupSpawnSystem(em *ecs.EntityManager, rng game.RandomSource, world config.WorldConfig, level *config.LevelConfig, units *config.UnitsConfig, hooks Hooks) *PickupSpawnSystem {
	return &PickupSpawnSystem{
		entityManager: em,
		rng:           rng,
		world:         world,
		pickups:       units.Pickups,
		ammoProb:      level.AmmoProbability,
		heartProb:     level.HeartProbability,
		hooks:         hooks.withDefaults(),
	}
}

// Update 先判定弹药箱，再判定生命补给
func (s *PickupSpawnSystem) Update() {
	if game.Chance(s.rng, s.ammoProb) {
		s.spawn(components.PickupAmmo)
	}
	if game.Chance(s.rng, s.heartProb) {
		s.spawn(components.PickupHeart)
	}
}

func (s *PickupSpawnSystem) spawn(kind components.PickupKind) {
	y := s.world.PlayTop + s.rng.Float64()*(s.world.PlayBottom-s.world.PlayTop)
	id := entities.NewPickup(s.entityManager, kind, s.pickups, s.world.Width, y)
	s.hooks.spawned(s.entityManager, id)
}
