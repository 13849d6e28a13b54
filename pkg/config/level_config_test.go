package config

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/gonewx/skybattle/pkg/embedded"
)

// TestParseLevelConfig 测试关卡配置解析与默认值
func TestParseLevelConfig(t *testing.T) {
	t.Run("regular level", func(t *testing.T) {
		yamlData := `id: level-1
name: "Level 1"
nextLevel: level-2
killsToAdvance: 10
enemyCapacity: 5
enemySpawnProbability: 0.2
`
		lc, err := ParseLevelConfig([]byte(yamlData))
		if err != nil {
			t.Fatalf("ParseLevelConfig() failed: %v", err)
		}
		if lc.SpawnMode != SpawnModeRegular {
			t.Errorf("Expected default spawnMode %q, got %q", SpawnModeRegular, lc.SpawnMode)
		}
		if lc.PlayerHealth != 5 {
			t.Errorf("Expected default playerHealth 5, got %d", lc.PlayerHealth)
		}
		if len(lc.EnemyTypes) != 1 || lc.EnemyTypes[0] != "basic" {
			t.Errorf("Expected default enemyTypes [basic], got %v", lc.EnemyTypes)
		}
		if lc.IsFinal() {
			t.Error("Level with nextLevel should not be final")
		}
	})

	t.Run("boss mode inferred from bosses", func(t *testing.T) {
		yamlData := `id: level-5
name: "Finale"
bosses: [mutation-1, mutation-2]
`
		lc, err := ParseLevelConfig([]byte(yamlData))
		if err != nil {
			t.Fatalf("ParseLevelConfig() failed: %v", err)
		}
		if lc.SpawnMode != SpawnModeBoss {
			t.Errorf("Expected spawnMode %q, got %q", SpawnModeBoss, lc.SpawnMode)
		}
		if !lc.IsFinal() {
			t.Error("Level without nextLevel should be final")
		}
	})
}

// TestValidateLevelConfig 测试关卡配置校验
func TestValidateLevelConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"缺少ID", `name: x
killsToAdvance: 1
enemyCapacity: 1`},
		{"缺少名称", `id: a
killsToAdvance: 1
enemyCapacity: 1`},
		{"下一关指向自身", `id: a
name: a
nextLevel: a
killsToAdvance: 1
enemyCapacity: 1`},
		{"击杀目标为零", `id: a
name: a
enemyCapacity: 1`},
		{"容量为零", `id: a
name: a
killsToAdvance: 3`},
		{"boss模式无Boss", `id: a
name: a
spawnMode: boss`},
		{"未知生成模式", `id: a
name: a
spawnMode: swarm`},
		{"概率越界", `id: a
name: a
killsToAdvance: 1
enemyCapacity: 1
ammoProbability: 1.5`},
		{"生命为负", `id: a
name: a
playerHealth: -1
killsToAdvance: 1
enemyCapacity: 1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected error to wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

// TestLoadAllLevels 测试按 order 排序加载关卡目录
func TestLoadAllLevels(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/levels/b.yaml": {Data: []byte("id: second\nname: B\norder: 2\nbosses: [boss]\n")},
		"data/levels/a.yaml": {Data: []byte("id: first\nname: A\norder: 1\nnextLevel: second\nkillsToAdvance: 1\nenemyCapacity: 1\n")},
	})
	defer embedded.Init(nil)

	levels, err := LoadAllLevels(LevelsDir)
	if err != nil {
		t.Fatalf("LoadAllLevels() failed: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(levels))
	}
	if levels[0].ID != "first" || levels[1].ID != "second" {
		t.Errorf("Expected order [first second], got [%s %s]", levels[0].ID, levels[1].ID)
	}
}

// TestLoadAllLevels_DuplicateID 重复ID应报错
func TestLoadAllLevels_DuplicateID(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/levels/a.yaml": {Data: []byte("id: same\nname: A\nbosses: [boss]\n")},
		"data/levels/b.yaml": {Data: []byte("id: same\nname: B\nbosses: [boss]\n")},
	})
	defer embedded.Init(nil)

	if _, err := LoadAllLevels(LevelsDir); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for duplicate ids, got %v", err)
	}
}

// TestLoadLevelConfig_NotInitialized 未初始化 embedded 时应返回错误
func TestLoadLevelConfig_NotInitialized(t *testing.T) {
	embedded.Init(nil)
	if _, err := LoadLevelConfig("data/levels/level-1.yaml"); err == nil {
		t.Error("Expected error when embedded is not initialized")
	}
}
