package config

import (
	"fmt"

	"github.com/gonewx/skybattle/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// WorldConfigPath 世界配置的嵌入路径
const WorldConfigPath = "data/world.yaml"

// WorldConfig 世界尺寸与边界
//
// 坐标系：原点在左上角，X 向右，Y 向下；实体位置指实体中心。
type WorldConfig struct {
	Width  float64 `yaml:"width"`  // 世界宽度（像素）
	Height float64 `yaml:"height"` // 世界高度（像素）

	// 可玩区域：玩家飞机中心与 Boss 中心允许到达的范围
	PlayTop    float64 `yaml:"playTop"`
	PlayBottom float64 `yaml:"playBottom"`
	PlayLeft   float64 `yaml:"playLeft"`
	PlayRight  float64 `yaml:"playRight"`

	// 清理边界
	LeftBoundary  float64 `yaml:"leftBoundary"`  // 敌方子弹、补给越过此X被清理；敌机越过此X视为突破防线
	RightBoundary float64 `yaml:"rightBoundary"` // 玩家子弹越过此X被清理
}

// DefaultWorldConfig 返回默认世界配置
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Width:         1300,
		Height:        750,
		PlayTop:       40,
		PlayBottom:    700,
		PlayLeft:      50,
		PlayRight:     800,
		LeftBoundary:  -50,
		RightBoundary: 1350,
	}
}

// ParseWorldConfig 解析世界配置，缺失字段使用默认值
func ParseWorldConfig(data []byte) (*WorldConfig, error) {
	cfg := DefaultWorldConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse world config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWorldConfig 从嵌入文件加载世界配置
func LoadWorldConfig(path string) (*WorldConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world config file %s: %w", path, err)
	}
	cfg, err := ParseWorldConfig(data)
	if err != nil {
		return nil, fmt.Errorf("world config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate 校验世界配置
func (w *WorldConfig) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return invalidf("world size must be positive, got %.0fx%.0f", w.Width, w.Height)
	}
	if w.PlayTop >= w.PlayBottom {
		return invalidf("playTop (%.0f) must be above playBottom (%.0f)", w.PlayTop, w.PlayBottom)
	}
	if w.PlayLeft >= w.PlayRight {
		return invalidf("playLeft (%.0f) must be left of playRight (%.0f)", w.PlayLeft, w.PlayRight)
	}
	if w.LeftBoundary >= w.RightBoundary {
		return invalidf("leftBoundary (%.0f) must be less than rightBoundary (%.0f)", w.LeftBoundary, w.RightBoundary)
	}
	return nil
}
