package components

// BehaviorType 定义实体的行为类型
// 用于 MovementSystem / FireSystem 决定如何处理该实体
type BehaviorType int

const (
	// BehaviorUserPlane 玩家飞机：由输入控制移动，按键开火（带冷却）
	BehaviorUserPlane BehaviorType = iota
	// BehaviorEnemyPlane 普通敌机：匀速向左直线飞行
	BehaviorEnemyPlane
	// BehaviorSineEnemy 波浪敌机：向左飞行，纵向按正弦曲线摆动
	BehaviorSineEnemy
	// BehaviorBoss Boss：按移动序列纵向移动，可开启护盾
	BehaviorBoss
	// BehaviorUserProjectile 玩家子弹
	BehaviorUserProjectile
	// BehaviorEnemyProjectile 敌机子弹
	BehaviorEnemyProjectile
	// BehaviorBossProjectile Boss 子弹
	BehaviorBossProjectile
	// BehaviorAmmoBox 弹药箱：接触后提升玩家火力等级
	BehaviorAmmoBox
	// BehaviorHeart 生命补给：接触后玩家生命 +1
	BehaviorHeart
)

// String 返回行为名称（日志用）
func (b BehaviorType) String() string {
	switch b {
	case BehaviorUserPlane:
		return "user-plane"
	case BehaviorEnemyPlane:
		return "enemy-plane"
	case BehaviorSineEnemy:
		return "sine-enemy"
	case BehaviorBoss:
		return "boss"
	case BehaviorUserProjectile:
		return "user-projectile"
	case BehaviorEnemyProjectile:
		return "enemy-projectile"
	case BehaviorBossProjectile:
		return "boss-projectile"
	case BehaviorAmmoBox:
		return "ammo-box"
	case BehaviorHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// IsFighter 是否为战机（拥有生命值、会被清理阶段触发爆炸）
func (b BehaviorType) IsFighter() bool {
	return b == BehaviorUserPlane || b == BehaviorEnemyPlane || b == BehaviorSineEnemy || b == BehaviorBoss
}

// BehaviorComponent 标识实体的行为类型
type BehaviorComponent struct {
	Type     BehaviorType
	SpriteID string // 渲染层使用的精灵ID（核心逻辑不关心）
}

// SineMotionComponent 波浪敌机的纵向摆动参数
type SineMotionComponent struct {
	BaseY     float64 // 摆动中心线
	Amplitude float64 // 振幅（像素）
	Period    int     // 周期（帧）
	Ticks     int     // 已经过的帧数
}
