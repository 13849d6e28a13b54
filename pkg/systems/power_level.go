package systems

import (
	"log"

	"github.com/gonewx/skybattle/pkg/components"
)

// userPatternOffset 玩家多发子弹的纵向间距
const userPatternOffset = 20.0

// UserAttackType 火力等级对应的弹幕
// 1 直线，2 成对，3 散射，4 及以上扇形
func UserAttackType(powerLevel int) components.AttackType {
	switch {
	case powerLevel <= 1:
		return components.AttackStraight
	case powerLevel == 2:
		return components.AttackPaired
	case powerLevel == 3:
		return components.AttackScatter
	default:
		return components.AttackDirectional
	}
}

// SetPowerLevel 设置玩家火力等级
// 超出 [1, MaxPowerLevel] 的请求被拒绝并记录日志，状态保持不变
func SetPowerLevel(player *components.PlayerComponent, level int) bool {
	if level < 1 || level > player.MaxPowerLevel {
		log.Printf("[PowerLevel] Warning: rejected power level %d (valid range 1..%d), keeping %d",
			level, player.MaxPowerLevel, player.PowerLevel)
		return false
	}
	player.PowerLevel = level
	return true
}

// IncreasePowerLevel 火力等级 +1，已达上限时不变
func IncreasePowerLevel(player *components.PlayerComponent) bool {
	if player.PowerLevel >= player.MaxPowerLevel {
		return false
	}
	return SetPowerLevel(player, player.PowerLevel+1)
}
