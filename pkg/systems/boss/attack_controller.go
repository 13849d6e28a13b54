// Package boss 提供 Boss 的攻击、移动与护盾控制器
//
// 控制器只读写组件数据，不持有实体；开火、移动和护盾系统在每帧调用它们。
package boss

import (
	"log"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/entities"
	"github.com/gonewx/skybattle/pkg/game"
)

// PatternParams 弹幕构造参数
//
// X/Y 是弹幕中心线的出生点（已加上武器偏移）；
// Speed 为水平速度，Boss 为负（向左），玩家为正（向右）。
type PatternParams struct {
	X, Y        float64
	Speed       float64
	SpreadSpeed float64 // 扇形弹幕的纵向速度
	Offset      float64 // 多发子弹之间的纵向间距
}

// AttackController 攻击方式选择与弹幕构造
type AttackController struct {
	rng game.RandomSource
}

// NewAttackController 创建攻击控制器
func NewAttackController(rng game.RandomSource) *AttackController {
	return &AttackController{rng: rng}
}

// SelectAttackType 在变体可用的攻击方式中均匀随机选择一种
// 列表为空时退化为直线攻击
func (c *AttackController) SelectAttackType(available []components.AttackType) components.AttackType {
	if len(available) == 0 {
		return components.AttackStraight
	}
	return available[c.rng.Intn(len(available))]
}

// CreateProjectiles 按攻击方式构造弹幕
func (c *AttackController) CreateProjectiles(attack components.AttackType, p PatternParams) []entities.ProjectileSpec {
	return BuildPattern(attack, p)
}

// BuildPattern 按攻击方式构造弹幕
// 玩家的火力等级复用同一组构造函数（速度取正）
func BuildPattern(attack components.AttackType, p PatternParams) []entities.ProjectileSpec {
	switch attack {
	case components.AttackStraight:
		return CreateStraightProjectiles(p)
	case components.AttackPaired:
		return CreatePairedProjectiles(p)
	case components.AttackScatter:
		return CreateScatterProjectiles(p)
	case components.AttackDirectional:
		return CreateDirectionalProjectiles(p)
	default:
		log.Printf("[AttackController] Warning: unknown attack type %d, falling back to straight", int(attack))
		return CreateStraightProjectiles(p)
	}
}

// CreateStraightProjectiles 单发直线
func CreateStraightProjectiles(p PatternParams) []entities.ProjectileSpec {
	return []entities.ProjectileSpec{
		{X: p.X, Y: p.Y, VX: p.Speed},
	}
}

// CreatePairedProjectiles 上下两发，共用水平速度
func CreatePairedProjectiles(p PatternParams) []entities.ProjectileSpec {
	return []entities.ProjectileSpec{
		{X: p.X, Y: p.Y - p.Offset, VX: p.Speed},
		{X: p.X, Y: p.Y + p.Offset, VX: p.Speed},
	}
}

// CreateScatterProjectiles 三发平行，纵向偏移 -Offset / 0 / +Offset
func CreateScatterProjectiles(p PatternParams) []entities.ProjectileSpec {
	return []entities.ProjectileSpec{
		{X: p.X, Y: p.Y - p.Offset, VX: p.Speed},
		{X: p.X, Y: p.Y, VX: p.Speed},
		{X: p.X, Y: p.Y + p.Offset, VX: p.Speed},
	}
}

// CreateDirectionalProjectiles 三发扇形：直线、斜上、斜下
// 斜向子弹在直线两侧 ±Offset 出生，纵向速度分别为 -SpreadSpeed / +SpreadSpeed
func CreateDirectionalProjectiles(p PatternParams) []entities.ProjectileSpec {
	return []entities.ProjectileSpec{
		{X: p.X, Y: p.Y, VX: p.Speed},
		{X: p.X, Y: p.Y - p.Offset, VX: p.Speed, VY: -p.SpreadSpeed},
		{X: p.X, Y: p.Y + p.Offset, VX: p.Speed, VY: p.SpreadSpeed},
	}
}
