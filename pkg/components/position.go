package components

// PositionComponent 实体在世界坐标系中的位置（实体中心点）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体的速度（像素/帧）
// 负 VX 表示向左移动
type VelocityComponent struct {
	VX float64
	VY float64
}
