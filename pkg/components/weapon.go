package components

// WeaponComponent 概率开火的武器（敌机、Boss）
// 每帧以 FireRate 的概率进行一次伯努利试验
type WeaponComponent struct {
	FireRate        float64 // 每帧开火概率
	ProjectileSpeed float64 // 子弹水平速度（像素/帧，向左为负）
	OffsetX         float64 // 子弹出生点相对战机中心的X偏移
	OffsetY         float64 // 子弹出生点相对战机中心的Y偏移
}

// PlayerComponent 玩家飞机的控制与统计数据
//
// MoveX/MoveY 是方向乘数（-1, 0, 1），由输入快照在移动阶段写入；
// 开火由输入触发并受冷却限制，不做概率判定。
type PlayerComponent struct {
	Speed float64 // 每帧移动距离

	MoveX int
	MoveY int

	FireRequested     bool
	FireCooldownTicks int // 两次开火之间的最少帧数
	CooldownRemaining int

	PowerLevel    int // 当前火力等级 1..MaxPowerLevel
	MaxPowerLevel int

	ProjectileSpeed float64 // 子弹水平速度（向右为正）
	SpreadSpeed     float64 // 扇形子弹的纵向速度
	OffsetX         float64
	OffsetY         float64

	// 可移动范围（实体中心）
	MinX, MaxX float64
	MinY, MaxY float64
}
