package systems

import (
	"log"

	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/entities"
	"github.com/gonewx/skybattle/pkg/game"
	"github.com/gonewx/skybattle/pkg/systems/boss"
)

// SpawnPolicy 关卡的敌人生成策略
type SpawnPolicy interface {
	// SpawnEnemies 每帧调用一次
	SpawnEnemies()
	// Cleared 关卡的敌人目标是否已全部完成（击杀数目标不在此判断）
	Cleared() bool
}

// BossTracker 可选接口：提供当前 Boss 与序列进度供 HUD 显示
type BossTracker interface {
	CurrentBoss() (ecs.EntityID, bool)
	Progress() (current, total int)
}

// RegularSpawnPolicy 普通敌机：每个空位每帧以一定概率生成，场上数量不超过容量
type RegularSpawnPolicy struct {
	entityManager *ecs.EntityManager
	rng           game.RandomSource
	world         config.WorldConfig
	capacity      int
	probability   float64
	enemyTypes    []string
	enemies       map[string]config.EnemyConfig
	hooks         Hooks
}

// NewRegularSpawnPolicy 创建普通敌机生成策略
func NewRegularSpawnPolicy(em *ecs.EntityManager, rng game.RandomSource, world config.WorldConfig, level *config.LevelConfig, units *config.UnitsConfig, hooks Hooks) *RegularSpawnPolicy {
	return &RegularSpawnPolicy{
		entityManager: em,
		rng:           rng,
		world:         world,
		capacity:      level.EnemyCapacity,
		probability:   level.EnemySpawnProbability,
		enemyTypes:    level.EnemyTypes,
		enemies:       units.Enemies,
		hooks:         hooks.withDefaults(),
	}
}

// SpawnEnemies 生成数量 = 容量 - 当前敌机数量，每个空位独立判定
func (p *RegularSpawnPolicy) SpawnEnemies() {
	free := p.capacity - p.entityManager.Count(ecs.GroupEnemy)
	for i := 0; i < free; i++ {
		if !game.Chance(p.rng, p.probability) {
			continue
		}
		p.spawnOne()
	}
}

func (p *RegularSpawnPolicy) spawnOne() {
	if len(p.enemyTypes) == 0 {
		return
	}
	typeID := p.enemyTypes[p.rng.Intn(len(p.enemyTypes))]
	cfg, ok := p.enemies[typeID]
	if !ok {
		log.Printf("[SpawnPolicy] Warning: unknown enemy type %q, skipped", typeID)
		return
	}

	y := p.world.PlayTop + p.rng.Float64()*(p.world.PlayBottom-p.world.PlayTop)
	id, err := entities.NewEnemyPlane(p.entityManager, cfg, p.world.Width, y)
	if err != nil {
		log.Printf("[SpawnPolicy] ERROR: %v", err)
		return
	}
	p.hooks.spawned(p.entityManager, id)
}

// Cleared 普通关卡由击杀数判定，永远不会“清空”
func (p *RegularSpawnPolicy) Cleared() bool {
	return false
}

// BossSpawnPolicy Boss 序列：敌方集合为空时按顺序登场
//
// added 标记防止同一个 Boss 重复生成；当前 Boss 被移除后才推进到下一个。
type BossSpawnPolicy struct {
	entityManager *ecs.EntityManager
	movement      *boss.MovementController
	world         config.WorldConfig
	sequence      []string
	variants      map[string]config.BossVariantConfig
	hooks         Hooks

	index   int
	added   bool
	current ecs.EntityID
}

// NewBossSpawnPolicy 创建 Boss 序列生成策略
func NewBossSpawnPolicy(em *ecs.EntityManager, mc *boss.MovementController, world config.WorldConfig, level *config.LevelConfig, bosses *config.BossVariantsConfig, hooks Hooks) *BossSpawnPolicy {
	return &BossSpawnPolicy{
		entityManager: em,
		movement:      mc,
		world:         world,
		sequence:      level.Bosses,
		variants:      bosses.Variants,
		hooks:         hooks.withDefaults(),
	}
}

// SpawnEnemies 敌方集合为空时生成下一个 Boss
func (p *BossSpawnPolicy) SpawnEnemies() {
	if p.entityManager.Count(ecs.GroupEnemy) != 0 {
		return
	}
	if p.added {
		// 当前 Boss 已被移除
		if p.index == len(p.sequence)-1 {
			return
		}
		p.index++
		p.added = false
	}
	if p.index >= len(p.sequence) {
		return
	}

	variantID := p.sequence[p.index]
	v, ok := p.variants[variantID]
	if !ok {
		log.Printf("[SpawnPolicy] Warning: unknown boss variant %q, skipped", variantID)
		p.added = true
		return
	}

	pattern := p.movement.NewMovePattern(v.VerticalVelocity, v.MoveRepeats, v.MaxSameMove, p.world.PlayTop, p.world.PlayBottom)
	p.current = entities.NewBoss(p.entityManager, variantID, v, pattern)
	p.added = true
	p.hooks.spawned(p.entityManager, p.current)
	log.Printf("[SpawnPolicy] Boss %d/%d (%s) entered", p.index+1, len(p.sequence), variantID)
}

// Cleared 序列中最后一个 Boss 已登场且已被摧毁
func (p *BossSpawnPolicy) Cleared() bool {
	if len(p.sequence) == 0 {
		return true
	}
	if !p.added || p.index != len(p.sequence)-1 {
		return false
	}
	return IsDestroyed(p.entityManager, p.current)
}

// CurrentBoss 返回场上的 Boss
func (p *BossSpawnPolicy) CurrentBoss() (ecs.EntityID, bool) {
	if !p.added || !p.entityManager.Exists(p.current) {
		return 0, false
	}
	return p.current, true
}

// Progress 返回 (已登场的 Boss 序号, 总数)
func (p *BossSpawnPolicy) Progress() (int, int) {
	if !p.added {
		return p.index, len(p.sequence)
	}
	return p.index + 1, len(p.sequence)
}
