package config

import (
	"fmt"
	"path"
	"sort"

	"github.com/gonewx/skybattle/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// LevelsDir 关卡配置的嵌入目录
const LevelsDir = "data/levels"

// 敌人生成模式
const (
	// SpawnModeRegular 普通敌机：概率生成，受容量限制
	SpawnModeRegular = "regular"
	// SpawnModeBoss Boss 序列：敌人集合为空时依次登场
	SpawnModeBoss = "boss"
)

// LevelConfig 关卡配置数据结构
type LevelConfig struct {
	ID          string `yaml:"id"`          // 关卡ID，如 "level-1"
	Name        string `yaml:"name"`        // 关卡名称
	Description string `yaml:"description"` // 关卡描述（可选）
	Order       int    `yaml:"order"`       // 关卡序号，决定关卡列表顺序
	NextLevel   string `yaml:"nextLevel"`   // 下一关ID，为空表示最终关（通关即胜利）

	PlayerHealth   int `yaml:"playerHealth"`   // 玩家初始生命，默认 5
	KillsToAdvance int `yaml:"killsToAdvance"` // 击杀目标（regular 模式）

	SpawnMode             string   `yaml:"spawnMode"`             // regular | boss
	EnemyCapacity         int      `yaml:"enemyCapacity"`         // 场上敌机上限（regular 模式）
	EnemySpawnProbability float64  `yaml:"enemySpawnProbability"` // 每个空位每帧生成概率
	EnemyTypes            []string `yaml:"enemyTypes"`            // 可生成的敌机类型（均匀随机）
	Bosses                []string `yaml:"bosses"`                // Boss 登场顺序（boss 模式）

	AmmoProbability  float64 `yaml:"ammoProbability"`  // 每帧生成弹药箱的概率
	HeartProbability float64 `yaml:"heartProbability"` // 每帧生成生命补给的概率

	World *WorldConfig `yaml:"world"` // 可选：覆盖默认世界配置
}

// IsFinal 是否为最终关
func (c *LevelConfig) IsFinal() bool {
	return c.NextLevel == ""
}

// ParseLevelConfig 解析关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	// 应用默认值（向后兼容性）
	applyDefaults(&levelConfig)

	// 验证必填字段
	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, err
	}

	return &levelConfig, nil
}

// LoadLevelConfig 从嵌入文件加载关卡配置
// 参数：
//
//	filepath - 关卡配置文件的路径（以 data/ 开头）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}

	levelConfig, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("level config %s: %w", filepath, err)
	}
	return levelConfig, nil
}

// LoadAllLevels 加载目录下所有关卡，按 Order（其次ID）排序
func LoadAllLevels(dir string) ([]*LevelConfig, error) {
	files, err := embedded.Glob(path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list level configs in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, invalidf("no level configs found in %s", dir)
	}

	levels := make([]*LevelConfig, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, file := range files {
		lc, err := LoadLevelConfig(file)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[lc.ID]; dup {
			return nil, invalidf("duplicate level id %q in %s and %s", lc.ID, prev, file)
		}
		seen[lc.ID] = file
		levels = append(levels, lc)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		if levels[i].Order != levels[j].Order {
			return levels[i].Order < levels[j].Order
		}
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// applyDefaults 为 LevelConfig 中缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.PlayerHealth == 0 {
		config.PlayerHealth = 5
	}

	if config.SpawnMode == "" {
		if len(config.Bosses) > 0 {
			config.SpawnMode = SpawnModeBoss
		} else {
			config.SpawnMode = SpawnModeRegular
		}
	}

	if config.SpawnMode == SpawnModeRegular && len(config.EnemyTypes) == 0 {
		config.EnemyTypes = []string{"basic"}
	}
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return invalidf("level ID is required")
	}

	if config.Name == "" {
		return invalidf("level %s: name is required", config.ID)
	}

	if config.NextLevel == config.ID {
		return invalidf("level %s: nextLevel cannot point to itself", config.ID)
	}

	if config.PlayerHealth < 1 {
		return invalidf("level %s: playerHealth must be at least 1, got %d", config.ID, config.PlayerHealth)
	}

	switch config.SpawnMode {
	case SpawnModeRegular:
		if config.KillsToAdvance < 1 {
			return invalidf("level %s: killsToAdvance must be at least 1 in regular mode, got %d", config.ID, config.KillsToAdvance)
		}
		if config.EnemyCapacity < 1 {
			return invalidf("level %s: enemyCapacity must be at least 1 in regular mode, got %d", config.ID, config.EnemyCapacity)
		}
	case SpawnModeBoss:
		if len(config.Bosses) == 0 {
			return invalidf("level %s: at least one boss is required in boss mode", config.ID)
		}
	default:
		return invalidf("level %s: spawnMode must be one of: regular, boss, got %q", config.ID, config.SpawnMode)
	}

	for name, p := range map[string]float64{
		"enemySpawnProbability": config.EnemySpawnProbability,
		"ammoProbability":       config.AmmoProbability,
		"heartProbability":      config.HeartProbability,
	} {
		if p < 0 || p > 1 {
			return invalidf("level %s: %s must be within [0, 1], got %g", config.ID, name, p)
		}
	}

	if config.World != nil {
		if err := config.World.Validate(); err != nil {
			return fmt.Errorf("level %s: %w", config.ID, err)
		}
	}

	return nil
}
