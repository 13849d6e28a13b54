package game

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// maxRunRecords 保留的最近对局记录数
const maxRunRecords = 20

// 存储路径常量
const (
	progressObject   = "progress"
	progressProperty = "campaign"
)

// RunRecord 一局游戏的结果
type RunRecord struct {
	ID        string    `yaml:"id"`
	StartedAt time.Time `yaml:"startedAt"`
	EndedAt   time.Time `yaml:"endedAt"`
	Outcome   string    `yaml:"outcome"` // win | lose
	LastLevel string    `yaml:"lastLevel"`
	Kills     int       `yaml:"kills"`
}

// Progress 战役进度
type Progress struct {
	HighestLevel string      `yaml:"highestLevel"` // 到达过的最高关卡
	Wins         int         `yaml:"wins"`
	Losses       int         `yaml:"losses"`
	Runs         []RunRecord `yaml:"runs"` // 最近的对局，最新的在最后
}

// ProgressManager 进度管理器
// 负责战役进度的加载、保存；gdataManager 为 nil 时仅保存在内存中
type ProgressManager struct {
	gdataManager *gdata.Manager
	progress     *Progress
	levelOrder   map[string]int // 关卡ID -> 序号，用于判断“更高”的关卡

	currentRun *RunRecord
}

// NewProgressManager 创建进度管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//   - levelOrder: 关卡ID按顺序排列
//
// 返回：
//   - *ProgressManager: 进度管理器实例（加载失败时使用空进度）
func NewProgressManager(gdataManager *gdata.Manager, levelOrder []string) *ProgressManager {
	pm := &ProgressManager{
		gdataManager: gdataManager,
		progress:     &Progress{},
		levelOrder:   make(map[string]int, len(levelOrder)),
	}
	for i, id := range levelOrder {
		pm.levelOrder[id] = i
	}

	if err := pm.Load(); err != nil {
		log.Printf("[ProgressManager] Warning: Failed to load progress: %v (starting fresh)", err)
	}
	return pm
}

// Load 从 gdata 加载进度
func (pm *ProgressManager) Load() error {
	if pm.gdataManager == nil {
		return nil
	}
	if !pm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	var loaded Progress
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	pm.progress = &loaded
	log.Printf("[ProgressManager] Progress loaded: highest=%s wins=%d losses=%d", loaded.HighestLevel, loaded.Wins, loaded.Losses)
	return nil
}

// Save 保存进度到 gdata（降级模式下直接返回 nil）
func (pm *ProgressManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := pm.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Progress 返回当前进度
func (pm *ProgressManager) Progress() *Progress {
	return pm.progress
}

// HighestLevel 返回到达过的最高关卡，没有记录时返回空字符串
func (pm *ProgressManager) HighestLevel() string {
	return pm.progress.HighestLevel
}

// StartRun 开始新的一局并返回对局ID
func (pm *ProgressManager) StartRun() string {
	pm.currentRun = &RunRecord{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
	log.Printf("[ProgressManager] Run %s started", pm.currentRun.ID)
	return pm.currentRun.ID
}

// CurrentRunID 返回当前对局ID
func (pm *ProgressManager) CurrentRunID() string {
	if pm.currentRun == nil {
		return ""
	}
	return pm.currentRun.ID
}

// RecordLevelReached 记录到达的关卡；只有更靠后的关卡才会更新最高关卡
func (pm *ProgressManager) RecordLevelReached(levelID string) {
	if pm.currentRun != nil {
		pm.currentRun.LastLevel = levelID
	}

	newIdx, ok := pm.levelOrder[levelID]
	if !ok {
		log.Printf("[ProgressManager] Warning: unknown level %q not recorded", levelID)
		return
	}
	if oldIdx, had := pm.levelOrder[pm.progress.HighestLevel]; had && oldIdx >= newIdx {
		return
	}
	pm.progress.HighestLevel = levelID

	if err := pm.Save(); err != nil {
		log.Printf("[ProgressManager] ERROR: %v", err)
	}
}

// FinishRun 结束当前对局并持久化
//
// 参数：
//   - outcome: 对局结果（只接受 OutcomeWin / OutcomeLose）
//   - kills: 本局累计击杀数
func (pm *ProgressManager) FinishRun(outcome OutcomeKind, kills int) {
	if outcome != OutcomeWin && outcome != OutcomeLose {
		log.Printf("[ProgressManager] Warning: FinishRun called with non-terminal outcome %s", outcome)
		return
	}
	if pm.currentRun == nil {
		pm.StartRun()
	}

	run := *pm.currentRun
	run.EndedAt = time.Now()
	run.Outcome = outcome.String()
	run.Kills = kills
	pm.currentRun = nil

	if outcome == OutcomeWin {
		pm.progress.Wins++
	} else {
		pm.progress.Losses++
	}

	pm.progress.Runs = append(pm.progress.Runs, run)
	if len(pm.progress.Runs) > maxRunRecords {
		pm.progress.Runs = pm.progress.Runs[len(pm.progress.Runs)-maxRunRecords:]
	}

	log.Printf("[ProgressManager] Run %s finished: %s at %s with %d kills", run.ID, run.Outcome, run.LastLevel, kills)
	if err := pm.Save(); err != nil {
		log.Printf("[ProgressManager] ERROR: %v", err)
	}
}
