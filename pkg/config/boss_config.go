package config

import (
	"fmt"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// BossVariantsConfigPath Boss 变体表的嵌入路径
const BossVariantsConfigPath = "data/boss_variants.yaml"

// BossVariantConfig 一种 Boss 变体
// 变体之间只在精灵、开火率、碰撞盒、可用攻击方式和护盾参数上不同
type BossVariantConfig struct {
	Name              string       `yaml:"name"`
	Sprite            string       `yaml:"sprite"`
	Health            int          `yaml:"health"`
	FireRate          float64      `yaml:"fireRate"`
	Hitbox            HitboxConfig `yaml:"hitbox"`
	AttackTypes       []string     `yaml:"attackTypes"`
	ShieldProbability float64      `yaml:"shieldProbability"` // 每帧开启护盾的概率
	ShieldMaxFrames   int          `yaml:"shieldMaxFrames"`   // 护盾最长持续帧数
	VerticalVelocity  int          `yaml:"verticalVelocity"`  // 移动序列步长 V
	MoveRepeats       int          `yaml:"moveRepeats"`       // {+V, -V, 0} 重复次数
	MaxSameMove       int          `yaml:"maxSameMove"`       // 同一步长最多连续帧数
	ProjectileSpeed   float64      `yaml:"projectileSpeed"`   // 向左为负
	ProjectileOffsetX float64      `yaml:"projectileOffsetX"`
	ProjectileOffsetY float64      `yaml:"projectileOffsetY"`
	SpreadSpeed       float64      `yaml:"spreadSpeed"`   // 扇形攻击纵向速度
	PatternOffset     float64      `yaml:"patternOffset"` // 多发子弹纵向间距
	StartX            float64      `yaml:"startX"`
	StartY            float64      `yaml:"startY"`
}

// BossVariantsConfig Boss 变体表
type BossVariantsConfig struct {
	Variants map[string]BossVariantConfig `yaml:"variants"`
}

// attackTypeNames 配置写法 -> 攻击方式
var attackTypeNames = map[string]components.AttackType{
	"straight":    components.AttackStraight,
	"paired":      components.AttackPaired,
	"scatter":     components.AttackScatter,
	"directional": components.AttackDirectional,
}

// ParseAttackType 将配置写法转换为攻击方式
func ParseAttackType(name string) (components.AttackType, error) {
	at, ok := attackTypeNames[name]
	if !ok {
		return 0, invalidf("unknown attack type %q (want straight, paired, scatter or directional)", name)
	}
	return at, nil
}

// ResolvedAttackTypes 返回变体可用的攻击方式（已校验）
func (v *BossVariantConfig) ResolvedAttackTypes() []components.AttackType {
	out := make([]components.AttackType, 0, len(v.AttackTypes))
	for _, name := range v.AttackTypes {
		if at, err := ParseAttackType(name); err == nil {
			out = append(out, at)
		}
	}
	return out
}

// ParseBossVariants 解析 Boss 变体表
func ParseBossVariants(data []byte) (*BossVariantsConfig, error) {
	var cfg BossVariantsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse boss variants YAML: %w", err)
	}

	applyBossDefaults(&cfg)

	if err := validateBossVariants(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadBossVariants 从嵌入文件加载 Boss 变体表
func LoadBossVariants(path string) (*BossVariantsConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boss variants file %s: %w", path, err)
	}
	cfg, err := ParseBossVariants(data)
	if err != nil {
		return nil, fmt.Errorf("boss variants %s: %w", path, err)
	}
	return cfg, nil
}

// applyBossDefaults 为缺失的可选字段设置默认值
func applyBossDefaults(cfg *BossVariantsConfig) {
	for id, v := range cfg.Variants {
		if v.Name == "" {
			v.Name = id
		}
		if v.Sprite == "" {
			v.Sprite = id
		}
		if len(v.AttackTypes) == 0 {
			v.AttackTypes = []string{"straight"}
		}
		if v.MoveRepeats == 0 {
			v.MoveRepeats = 5
		}
		if v.MaxSameMove == 0 {
			v.MaxSameMove = 10
		}
		if v.PatternOffset == 0 {
			v.PatternOffset = 50
		}
		cfg.Variants[id] = v
	}
}

// validateBossVariants 验证 Boss 变体表
func validateBossVariants(cfg *BossVariantsConfig) error {
	if len(cfg.Variants) == 0 {
		return invalidf("at least one boss variant is required")
	}

	for id, v := range cfg.Variants {
		if v.Health < 1 {
			return invalidf("boss %s: health must be at least 1, got %d", id, v.Health)
		}
		if v.FireRate < 0 || v.FireRate > 1 {
			return invalidf("boss %s: fireRate must be within [0, 1], got %g", id, v.FireRate)
		}
		if v.ShieldProbability < 0 || v.ShieldProbability > 1 {
			return invalidf("boss %s: shieldProbability must be within [0, 1], got %g", id, v.ShieldProbability)
		}
		if v.ShieldProbability > 0 && v.ShieldMaxFrames < 1 {
			return invalidf("boss %s: shieldMaxFrames must be positive when shields are enabled, got %d", id, v.ShieldMaxFrames)
		}
		if v.VerticalVelocity < 0 {
			return invalidf("boss %s: verticalVelocity cannot be negative, got %d", id, v.VerticalVelocity)
		}
		if v.MoveRepeats < 1 || v.MaxSameMove < 1 {
			return invalidf("boss %s: moveRepeats and maxSameMove must be at least 1", id)
		}
		if v.ProjectileSpeed >= 0 {
			return invalidf("boss %s: projectileSpeed must be negative (leftwards), got %.1f", id, v.ProjectileSpeed)
		}
		seen := make(map[string]bool, len(v.AttackTypes))
		for _, name := range v.AttackTypes {
			if _, err := ParseAttackType(name); err != nil {
				return fmt.Errorf("boss %s: %w", id, err)
			}
			if seen[name] {
				return invalidf("boss %s: duplicate attack type %q", id, name)
			}
			seen[name] = true
		}
		if err := validateHitbox("boss "+id, v.Hitbox); err != nil {
			return err
		}
	}
	return nil
}
