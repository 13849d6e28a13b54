package config

import (
	"errors"
	"strings"
	"testing"
)

const validUnitsYAML = `
player:
  speed: 8
  fireCooldownTicks: 10
  hitbox: {width: 100, height: 40}
enemies:
  basic:
    fireRate: 0.01
    speed: -6
    projectileSpeed: -10
    hitbox: {width: 100, height: 40}
  glider:
    behavior: sine
    speed: -4
    amplitude: 50
    period: 60
projectiles:
  user:
    hitbox: {width: 40, height: 12}
`

// TestParseUnitsConfig 测试单位配置解析与默认值
func TestParseUnitsConfig(t *testing.T) {
	cfg, err := ParseUnitsConfig([]byte(validUnitsYAML))
	if err != nil {
		t.Fatalf("ParseUnitsConfig() failed: %v", err)
	}

	if cfg.Player.MaxPowerLevel != 4 {
		t.Errorf("Expected default maxPowerLevel 4, got %d", cfg.Player.MaxPowerLevel)
	}
	if cfg.Player.ProjectileSpeed != 15 {
		t.Errorf("Expected default projectileSpeed 15, got %.1f", cfg.Player.ProjectileSpeed)
	}

	basic := cfg.Enemies["basic"]
	if basic.Behavior != EnemyBehaviorStraight {
		t.Errorf("Expected default behavior %q, got %q", EnemyBehaviorStraight, basic.Behavior)
	}
	if basic.Health != 1 {
		t.Errorf("Expected default health 1, got %d", basic.Health)
	}
	if basic.Sprite != "basic" {
		t.Errorf("Expected default sprite 'basic', got %q", basic.Sprite)
	}

	// 零尺寸碰撞盒是合法的（永不碰撞）
	if cfg.Projectiles.Enemy.Hitbox.Width != 0 {
		t.Errorf("Expected zero enemy projectile hitbox, got %.0f", cfg.Projectiles.Enemy.Hitbox.Width)
	}
}

// TestValidateUnitsConfig 测试单位配置校验
func TestValidateUnitsConfig(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
	}{
		{"敌机速度向右", [2]string{"speed: -6", "speed: 6"}},
		{"开火率越界", [2]string{"fireRate: 0.01", "fireRate: 2"}},
		{"未知行为", [2]string{"behavior: sine", "behavior: zigzag"}},
		{"正弦周期为零", [2]string{"period: 60", "period: 0"}},
		{"碰撞盒为负", [2]string{"hitbox: {width: 40, height: 12}", "hitbox: {width: -1, height: 12}"}},
		{"冷却为负", [2]string{"fireCooldownTicks: 10", "fireCooldownTicks: -1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(validUnitsYAML, tt.replace[0], tt.replace[1], 1)
			if data == validUnitsYAML {
				t.Fatalf("replacement %q did not apply", tt.replace[0])
			}
			_, err := ParseUnitsConfig([]byte(data))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	t.Run("没有敌机类型", func(t *testing.T) {
		_, err := ParseUnitsConfig([]byte("player:\n  speed: 8\n"))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})
}
