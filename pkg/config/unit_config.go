package config

import (
	"fmt"

	"github.com/gonewx/skybattle/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// UnitsConfigPath 单位配置的嵌入路径
const UnitsConfigPath = "data/units.yaml"

// 敌机行为写法
const (
	EnemyBehaviorStraight = "straight"
	EnemyBehaviorSine     = "sine"
)

// HitboxConfig 碰撞盒尺寸
type HitboxConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
}

// PlayerConfig 玩家飞机参数
type PlayerConfig struct {
	Sprite            string       `yaml:"sprite"`
	Speed             float64      `yaml:"speed"`             // 每帧移动距离
	FireCooldownTicks int          `yaml:"fireCooldownTicks"` // 开火冷却（帧）
	MaxPowerLevel     int          `yaml:"maxPowerLevel"`     // 火力等级上限
	ProjectileSpeed   float64      `yaml:"projectileSpeed"`   // 子弹速度（向右为正）
	SpreadSpeed       float64      `yaml:"spreadSpeed"`       // 扇形子弹纵向速度
	ProjectileOffsetX float64      `yaml:"projectileOffsetX"`
	ProjectileOffsetY float64      `yaml:"projectileOffsetY"`
	StartX            float64      `yaml:"startX"`
	StartY            float64      `yaml:"startY"`
	Hitbox            HitboxConfig `yaml:"hitbox"`
}

// EnemyConfig 一种普通敌机的参数
type EnemyConfig struct {
	Sprite            string       `yaml:"sprite"`
	Behavior          string       `yaml:"behavior"` // straight | sine
	Health            int          `yaml:"health"`
	FireRate          float64      `yaml:"fireRate"`
	Speed             float64      `yaml:"speed"` // 水平速度（向左为负）
	ProjectileSpeed   float64      `yaml:"projectileSpeed"`
	ProjectileOffsetX float64      `yaml:"projectileOffsetX"`
	ProjectileOffsetY float64      `yaml:"projectileOffsetY"`
	Amplitude         float64      `yaml:"amplitude"` // 仅 sine
	Period            int          `yaml:"period"`    // 仅 sine（帧）
	Hitbox            HitboxConfig `yaml:"hitbox"`
}

// ProjectileConfig 子弹参数
type ProjectileConfig struct {
	Sprite string       `yaml:"sprite"`
	Hitbox HitboxConfig `yaml:"hitbox"`
}

// PickupConfig 补给参数
type PickupConfig struct {
	Speed float64          `yaml:"speed"` // 水平漂移速度（向左为负）
	Ammo  ProjectileConfig `yaml:"ammo"`
	Heart ProjectileConfig `yaml:"heart"`
}

// UnitsConfig 单位配置文件结构
type UnitsConfig struct {
	Player      PlayerConfig           `yaml:"player"`
	Enemies     map[string]EnemyConfig `yaml:"enemies"`
	Projectiles struct {
		User  ProjectileConfig `yaml:"user"`
		Enemy ProjectileConfig `yaml:"enemy"`
		Boss  ProjectileConfig `yaml:"boss"`
	} `yaml:"projectiles"`
	Pickups PickupConfig `yaml:"pickups"`
}

// ParseUnitsConfig 解析单位配置
func ParseUnitsConfig(data []byte) (*UnitsConfig, error) {
	var cfg UnitsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse units config YAML: %w", err)
	}

	applyUnitDefaults(&cfg)

	if err := validateUnitsConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadUnitsConfig 从嵌入文件加载单位配置
func LoadUnitsConfig(path string) (*UnitsConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read units config file %s: %w", path, err)
	}
	cfg, err := ParseUnitsConfig(data)
	if err != nil {
		return nil, fmt.Errorf("units config %s: %w", path, err)
	}
	return cfg, nil
}

// applyUnitDefaults 为缺失的可选字段设置默认值
func applyUnitDefaults(cfg *UnitsConfig) {
	p := &cfg.Player
	if p.Speed == 0 {
		p.Speed = 8
	}
	if p.MaxPowerLevel == 0 {
		p.MaxPowerLevel = 4
	}
	if p.ProjectileSpeed == 0 {
		p.ProjectileSpeed = 15
	}
	if p.SpreadSpeed == 0 {
		p.SpreadSpeed = 3
	}
	if p.Sprite == "" {
		p.Sprite = "userplane"
	}

	for name, enemy := range cfg.Enemies {
		if enemy.Behavior == "" {
			enemy.Behavior = EnemyBehaviorStraight
		}
		if enemy.Health == 0 {
			enemy.Health = 1
		}
		if enemy.Sprite == "" {
			enemy.Sprite = name
		}
		cfg.Enemies[name] = enemy
	}
}

// validateUnitsConfig 验证单位配置的完整性和合法性
func validateUnitsConfig(cfg *UnitsConfig) error {
	p := cfg.Player
	if p.Speed < 0 {
		return invalidf("player: speed cannot be negative, got %.1f", p.Speed)
	}
	if p.FireCooldownTicks < 0 {
		return invalidf("player: fireCooldownTicks cannot be negative, got %d", p.FireCooldownTicks)
	}
	if p.MaxPowerLevel < 1 {
		return invalidf("player: maxPowerLevel must be at least 1, got %d", p.MaxPowerLevel)
	}
	if p.ProjectileSpeed <= 0 {
		return invalidf("player: projectileSpeed must be positive (rightwards), got %.1f", p.ProjectileSpeed)
	}
	if err := validateHitbox("player", p.Hitbox); err != nil {
		return err
	}

	if len(cfg.Enemies) == 0 {
		return invalidf("at least one enemy type is required")
	}
	for name, enemy := range cfg.Enemies {
		if enemy.Behavior != EnemyBehaviorStraight && enemy.Behavior != EnemyBehaviorSine {
			return invalidf("enemy %s: behavior must be one of: straight, sine, got %q", name, enemy.Behavior)
		}
		if enemy.Health < 1 {
			return invalidf("enemy %s: health must be at least 1, got %d", name, enemy.Health)
		}
		if enemy.FireRate < 0 || enemy.FireRate > 1 {
			return invalidf("enemy %s: fireRate must be within [0, 1], got %g", name, enemy.FireRate)
		}
		if enemy.Speed >= 0 {
			return invalidf("enemy %s: speed must be negative (leftwards), got %.1f", name, enemy.Speed)
		}
		if enemy.Behavior == EnemyBehaviorSine && enemy.Period <= 0 {
			return invalidf("enemy %s: sine behavior requires a positive period, got %d", name, enemy.Period)
		}
		if err := validateHitbox("enemy "+name, enemy.Hitbox); err != nil {
			return err
		}
	}

	for name, proj := range map[string]ProjectileConfig{
		"user projectile":  cfg.Projectiles.User,
		"enemy projectile": cfg.Projectiles.Enemy,
		"boss projectile":  cfg.Projectiles.Boss,
		"ammo pickup":      cfg.Pickups.Ammo,
		"heart pickup":     cfg.Pickups.Heart,
	} {
		if err := validateHitbox(name, proj.Hitbox); err != nil {
			return err
		}
	}
	return nil
}

// validateHitbox 碰撞盒允许为零（永不碰撞），但不能为负
func validateHitbox(owner string, h HitboxConfig) error {
	if h.Width < 0 || h.Height < 0 {
		return invalidf("%s: hitbox size cannot be negative, got %.0fx%.0f", owner, h.Width, h.Height)
	}
	return nil
}
