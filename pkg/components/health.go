package components

// DestructibleComponent 所有可被移除的实体都携带此组件
// Destroyed 一旦为 true 不会再变回 false；实体在清理阶段被移除
type DestructibleComponent struct {
	Destroyed bool
}

// HealthComponent 存储战机的生命值信息
// 约束：CurrentHealth == 0 时 DestructibleComponent.Destroyed 必为 true
type HealthComponent struct {
	CurrentHealth int // 当前生命值（>= 0）
	MaxHealth     int // 初始生命值
}

// DamageRule 受击规则
type DamageRule int

const (
	// DamageDecrement 默认规则：生命值减一，归零时销毁
	DamageDecrement DamageRule = iota
	// DamageDestroy 子弹规则：任何命中都直接销毁
	DamageDestroy
	// DamageImmune 补给规则：不受伤害
	DamageImmune
)

// DamageableComponent 决定 TakeDamage 如何作用在实体上
type DamageableComponent struct {
	Rule DamageRule
}
