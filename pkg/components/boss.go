package components

// AttackType Boss 的攻击方式
type AttackType int

const (
	// AttackStraight 单发直线
	AttackStraight AttackType = iota
	// AttackPaired 上下两发
	AttackPaired
	// AttackScatter 三发平行散射
	AttackScatter
	// AttackDirectional 三发扇形（直线 + 左上 + 左下）
	AttackDirectional
)

// String 返回攻击方式名称（与配置文件中的写法一致）
func (a AttackType) String() string {
	switch a {
	case AttackStraight:
		return "straight"
	case AttackPaired:
		return "paired"
	case AttackScatter:
		return "scatter"
	case AttackDirectional:
		return "directional"
	default:
		return "unknown"
	}
}

// BossComponent Boss 的变体数据
// 不同变体只在精灵、开火率、碰撞盒和可用攻击方式上不同
type BossComponent struct {
	VariantID     string
	AttackTypes   []AttackType // 可被随机选中的攻击方式
	SpreadSpeed   float64      // 扇形攻击的纵向速度
	PatternOffset float64      // 成对/散射/扇形子弹的纵向间距
}

// ShieldComponent 护盾状态
//
// 状态机：Inactive --(每帧概率 ActivationProbability)--> Active
//
//	Active --(FramesElapsed 达到 MaxFrames 或外部强制)--> Inactive（FramesElapsed 归零）
//
// Active 期间所有伤害无效
type ShieldComponent struct {
	Active                bool
	FramesElapsed         int
	ActivationProbability float64
	MaxFrames             int
}

// MovePatternComponent Boss 的纵向移动序列
type MovePatternComponent struct {
	Pattern       []int // {+V, -V, 0} 重复 N 次并打乱
	Index         int
	SameMoveCount int
	MaxSameMove   int // 同一步长最多连续使用的帧数

	// 允许的纵向范围（实体中心），越界的移动会被回滚
	YUpperBound float64
	YLowerBound float64
}

// PickupKind 补给类型
type PickupKind int

const (
	// PickupAmmo 弹药箱
	PickupAmmo PickupKind = iota
	// PickupHeart 生命补给
	PickupHeart
)

// PickupComponent 补给物
type PickupComponent struct {
	Kind PickupKind
}
