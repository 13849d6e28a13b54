package game

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
)

var testLevelOrder = []string{"level-1", "level-2", "level-3"}

func createTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

// TestProgressManager_NilGdata 降级模式：仅内存
func TestProgressManager_NilGdata(t *testing.T) {
	pm := NewProgressManager(nil, testLevelOrder)

	pm.RecordLevelReached("level-2")
	if got := pm.HighestLevel(); got != "level-2" {
		t.Errorf("HighestLevel: got %q, want level-2", got)
	}
	if err := pm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail, got %v", err)
	}
}

// TestProgressManager_HighestLevelOnlyIncreases 最高关卡只会前进
func TestProgressManager_HighestLevelOnlyIncreases(t *testing.T) {
	tests := []struct {
		name    string
		reached []string
		want    string
	}{
		{"顺序前进", []string{"level-1", "level-2", "level-3"}, "level-3"},
		{"回到较早关卡", []string{"level-3", "level-1"}, "level-3"},
		{"未知关卡被忽略", []string{"level-2", "secret"}, "level-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewProgressManager(nil, testLevelOrder)
			for _, id := range tt.reached {
				pm.RecordLevelReached(id)
			}
			if got := pm.HighestLevel(); got != tt.want {
				t.Errorf("HighestLevel: got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestProgressManager_Runs 对局记录
func TestProgressManager_Runs(t *testing.T) {
	pm := NewProgressManager(nil, testLevelOrder)

	id := pm.StartRun()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("StartRun() returned invalid uuid %q: %v", id, err)
	}
	pm.RecordLevelReached("level-2")
	pm.FinishRun(OutcomeLose, 7)

	p := pm.Progress()
	if p.Losses != 1 || p.Wins != 0 {
		t.Errorf("Expected 1 loss 0 wins, got %d/%d", p.Losses, p.Wins)
	}
	if len(p.Runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(p.Runs))
	}
	run := p.Runs[0]
	if run.ID != id || run.Outcome != "lose" || run.LastLevel != "level-2" || run.Kills != 7 {
		t.Errorf("Unexpected run record: %+v", run)
	}
	if pm.CurrentRunID() != "" {
		t.Error("CurrentRunID should be empty after FinishRun")
	}

	// 非终止结果被拒绝
	pm.FinishRun(OutcomeAdvance, 1)
	if len(pm.Progress().Runs) != 1 {
		t.Error("FinishRun with non-terminal outcome should be ignored")
	}
}

// TestProgressManager_RunLimit 只保留最近的对局
func TestProgressManager_RunLimit(t *testing.T) {
	pm := NewProgressManager(nil, testLevelOrder)
	for i := 0; i < maxRunRecords+5; i++ {
		pm.StartRun()
		pm.FinishRun(OutcomeWin, i)
	}
	runs := pm.Progress().Runs
	if len(runs) != maxRunRecords {
		t.Fatalf("Expected %d runs, got %d", maxRunRecords, len(runs))
	}
	if runs[len(runs)-1].Kills != maxRunRecords+4 {
		t.Errorf("Expected newest run last, got kills=%d", runs[len(runs)-1].Kills)
	}
}

// TestProgressManager_Persistence 保存后重新加载
func TestProgressManager_Persistence(t *testing.T) {
	manager := createTestGdataManager(t, "test_skybattle_progress")

	pm := NewProgressManager(manager, testLevelOrder)
	pm.StartRun()
	pm.RecordLevelReached("level-3")
	pm.FinishRun(OutcomeWin, 42)

	reloaded := NewProgressManager(manager, testLevelOrder)
	p := reloaded.Progress()
	if p.HighestLevel != "level-3" {
		t.Errorf("HighestLevel after reload: got %q, want level-3", p.HighestLevel)
	}
	if p.Wins != 1 || len(p.Runs) != 1 || p.Runs[0].Kills != 42 {
		t.Errorf("Unexpected progress after reload: %+v", p)
	}
}
