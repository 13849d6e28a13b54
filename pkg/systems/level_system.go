package systems

import (
	"log"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/game"
)

// TickResult 一帧的结果：Continue | AdvanceTo(id) | Win | Lose
type TickResult = game.Outcome

// LevelSystem 关卡控制器
//
// 职责：
//   - 按固定顺序驱动一帧：更新 → 开火 → 生成敌人 → 生成补给 → 碰撞 → 清理
//   - 用敌方集合的数量差累计击杀数
//   - 每帧同步一次 HUD（Boss 血量在清理前同步）
//   - 检测失败/晋级/胜利，终止结果只通知一次
//
// 架构说明：
//   - 关卡状态保存在 game.LevelState 中，每个关卡实例独享
//   - 所有回调通过 Hooks 注入，不访问全局单例
type LevelSystem struct {
	entityManager *ecs.EntityManager
	state         *game.LevelState
	hooks         Hooks

	movement  *MovementSystem
	shields   *ShieldSystem
	fire      *FireSystem
	spawn     SpawnPolicy
	pickups   *PickupSpawnSystem
	collision *CollisionSystem
	sweep     *SweepSystem
}

// LevelSystems 关卡控制器驱动的子系统
type LevelSystems struct {
	Movement  *MovementSystem
	Shields   *ShieldSystem
	Fire      *FireSystem
	Spawn     SpawnPolicy
	Pickups   *PickupSpawnSystem
	Collision *CollisionSystem
	Sweep     *SweepSystem
}

// NewLevelSystem 创建关卡控制器
//
// 参数：
//
//	em - 实体管理器
//	state - 关卡状态（必须已设置 UserID）
//	subsystems - 子系统（Pickups 可为 nil）
//	hooks - 渲染与音效回调
func NewLevelSystem(em *ecs.EntityManager, state *game.LevelState, subsystems LevelSystems, hooks Hooks) *LevelSystem {
	return &LevelSystem{
		entityManager: em,
		state:         state,
		hooks:         hooks.withDefaults(),
		movement:      subsystems.Movement,
		shields:       subsystems.Shields,
		fire:          subsystems.Fire,
		spawn:         subsystems.Spawn,
		pickups:       subsystems.Pickups,
		collision:     subsystems.Collision,
		sweep:         subsystems.Sweep,
	}
}

// Tick 执行一帧
// 关卡结束后继续调用只返回已有结果，不再推进也不再通知
func (s *LevelSystem) Tick() TickResult {
	if s.state.Finished() {
		return s.state.Result()
	}
	s.state.Ticks++

	// 1. 更新所有实体
	s.movement.Update()
	if s.shields != nil {
		s.shields.Update()
	}

	// 2. 开火
	s.fire.Update()

	// 3. 生成敌人与补给
	s.spawn.SpawnEnemies()
	if s.pickups != nil {
		s.pickups.Update()
	}

	// 击杀数按清理前后敌方集合的数量差计算
	enemiesBefore := s.entityManager.Count(ecs.GroupEnemy)

	// 4. 碰撞
	s.collision.Update()
	// Boss 血量在清理前同步，被击毁的 Boss 先报 0 再移除
	s.syncBossHealth()

	// 5. 清理
	s.sweep.Update()

	// 6. 击杀数与 HUD
	if kills := enemiesBefore - s.entityManager.Count(ecs.GroupEnemy); kills > 0 {
		s.state.KillCount += kills
	}
	s.syncHUD()

	// 7. 胜负判定
	return s.CheckGameOver()
}

// CheckGameOver 检查失败与晋级条件（失败优先）
// 首次得到终止结果时通知 Presenter，之后重复调用不会再次通知
func (s *LevelSystem) CheckGameOver() TickResult {
	if s.state.Finished() {
		return s.state.Result()
	}

	var outcome TickResult
	switch {
	case s.UserDestroyed():
		outcome = game.Lose()
	case s.state.KillsToAdvance > 0 && s.KillCount() >= s.state.KillsToAdvance:
		outcome = s.state.CompletionOutcome()
	case s.spawn.Cleared():
		outcome = s.state.CompletionOutcome()
	default:
		return game.Continue()
	}

	if s.state.Finish(outcome) {
		s.hooks.Presenter.OnLevelComplete(outcome)
	}
	return outcome
}

// UserDestroyed 玩家飞机是否已被摧毁
func (s *LevelSystem) UserDestroyed() bool {
	return IsDestroyed(s.entityManager, s.state.UserID)
}

// KillCount 当前击杀数
func (s *LevelSystem) KillCount() int {
	return s.state.KillCount
}

// UserHealth 玩家当前生命，玩家已被移除时为 0
func (s *LevelSystem) UserHealth() int {
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.state.UserID); ok {
		return health.CurrentHealth
	}
	return 0
}

// State 关卡状态
func (s *LevelSystem) State() *game.LevelState {
	return s.state
}

// EntityManager 关卡的实体管理器（渲染层只读）
func (s *LevelSystem) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// UserPlayer 玩家控制组件（不存在时为 nil）
func (s *LevelSystem) UserPlayer() *components.PlayerComponent {
	return s.player()
}

// Destroy 丢弃关卡的所有实体
func (s *LevelSystem) Destroy() {
	s.entityManager.Clear()
	log.Printf("[LevelSystem] Level %s destroyed", s.state.LevelID)
}

func (s *LevelSystem) player() *components.PlayerComponent {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.state.UserID)
	if !ok {
		return nil
	}
	return player
}

// syncHUD 每帧所有状态变化结束后同步一次
func (s *LevelSystem) syncHUD() {
	s.hooks.Presenter.OnHealthChanged(s.UserHealth())
	s.hooks.Presenter.OnKillCountChanged(s.KillCount(), s.state.KillsToAdvance)
}

func (s *LevelSystem) syncBossHealth() {
	tracker, ok := s.spawn.(BossTracker)
	if !ok {
		return
	}
	id, ok := tracker.CurrentBoss()
	if !ok {
		return
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok {
		return
	}
	current := health.CurrentHealth
	if IsDestroyed(s.entityManager, id) {
		current = 0
	}
	s.hooks.Presenter.OnBossHealthChanged(id, current)
}

// BossProgress 返回 (已登场的 Boss 序号, Boss 总数)；非 Boss 关卡 ok 为 false
func (s *LevelSystem) BossProgress() (current, total int, ok bool) {
	tracker, ok := s.spawn.(BossTracker)
	if !ok {
		return 0, 0, false
	}
	current, total = tracker.Progress()
	return current, total, total > 0
}
