package systems

import (
	"fmt"

	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/entities"
	"github.com/gonewx/skybattle/pkg/game"
	"github.com/gonewx/skybattle/pkg/systems/boss"
)

// LevelSetup 构造一个关卡实例所需的全部依赖
type LevelSetup struct {
	Level  *config.LevelConfig
	World  config.WorldConfig
	Units  *config.UnitsConfig
	Bosses *config.BossVariantsConfig

	RNG   game.RandomSource
	Input *game.InputState
	Hooks Hooks
}

// NewLevel 按配置组装关卡：实体管理器、玩家飞机、生成策略与所有子系统
//
// 返回：
//
//	*LevelSystem - 可以开始 Tick 的关卡控制器
//	error - 配置缺失或生成模式未知
func NewLevel(setup LevelSetup) (*LevelSystem, error) {
	if setup.Level == nil || setup.Units == nil {
		return nil, fmt.Errorf("level setup requires level and units config")
	}
	if setup.RNG == nil {
		setup.RNG = game.NewRandomSource(0)
	}
	hooks := setup.Hooks.withDefaults()
	lc := setup.Level

	em := ecs.NewEntityManager()
	attack := boss.NewAttackController(setup.RNG)
	movement := boss.NewMovementController(setup.RNG)
	shields := boss.NewShieldController(setup.RNG)

	var spawn SpawnPolicy
	switch lc.SpawnMode {
	case config.SpawnModeRegular:
		spawn = NewRegularSpawnPolicy(em, setup.RNG, setup.World, lc, setup.Units, hooks)
	case config.SpawnModeBoss:
		if setup.Bosses == nil {
			return nil, fmt.Errorf("level %s: boss mode requires boss variants", lc.ID)
		}
		spawn = NewBossSpawnPolicy(em, movement, setup.World, lc, setup.Bosses, hooks)
	default:
		return nil, fmt.Errorf("level %s: unknown spawn mode %q", lc.ID, lc.SpawnMode)
	}

	killsToAdvance := 0
	if lc.SpawnMode == config.SpawnModeRegular {
		killsToAdvance = lc.KillsToAdvance
	}
	state := game.NewLevelState(lc.ID, lc.NextLevel, killsToAdvance)
	state.UserID = entities.NewUserPlane(em, setup.Units.Player, lc.PlayerHealth, setup.World)
	hooks.spawned(em, state.UserID)

	return NewLevelSystem(em, state, LevelSystems{
		Movement:  NewMovementSystem(em, setup.Input, movement),
		Shields:   NewShieldSystem(em, shields, hooks),
		Fire:      NewFireSystem(em, setup.RNG, attack, NewProjectileKinds(setup.Units), hooks),
		Spawn:     spawn,
		Pickups:   NewPickupSpawnSystem(em, setup.RNG, setup.World, lc, setup.Units, hooks),
		Collision: NewCollisionSystem(em, hooks),
		Sweep:     NewSweepSystem(em, setup.World, hooks),
	}, hooks), nil
}
