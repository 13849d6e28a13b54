package game

import (
	"log"

	"github.com/gonewx/skybattle/pkg/ecs"
)

// LevelState 单个关卡实例的运行状态
// 每个关卡实例独享一份，关卡销毁时一并丢弃
type LevelState struct {
	LevelID        string
	NextLevel      string // 为空表示最终关
	KillsToAdvance int    // 0 表示该关卡不以击杀数判定晋级

	UserID ecs.EntityID // 玩家飞机

	KillCount int // 本关累计击杀
	Ticks     int // 已执行的帧数

	finished bool
	result   Outcome
}

// NewLevelState 创建关卡状态
func NewLevelState(levelID, nextLevel string, killsToAdvance int) *LevelState {
	return &LevelState{
		LevelID:        levelID,
		NextLevel:      nextLevel,
		KillsToAdvance: killsToAdvance,
		result:         Continue(),
	}
}

// IsFinal 是否为最终关
func (s *LevelState) IsFinal() bool {
	return s.NextLevel == ""
}

// CompletionOutcome 关卡目标达成时的结果：最终关为胜利，否则进入下一关
func (s *LevelState) CompletionOutcome() Outcome {
	if s.IsFinal() {
		return Win()
	}
	return AdvanceTo(s.NextLevel)
}

// Finished 关卡是否已结束
func (s *LevelState) Finished() bool {
	return s.finished
}

// Result 关卡结果（未结束时为 Continue）
func (s *LevelState) Result() Outcome {
	return s.result
}

// Finish 记录终止结果
// 只有第一次调用生效，返回是否为第一次
func (s *LevelState) Finish(outcome Outcome) bool {
	if s.finished || !outcome.Terminal() {
		return false
	}
	s.finished = true
	s.result = outcome
	log.Printf("[LevelState] Level %s finished after %d ticks: %s %s", s.LevelID, s.Ticks, outcome.Kind, outcome.NextLevel)
	return true
}
