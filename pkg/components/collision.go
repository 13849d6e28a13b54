package components

// Rect 轴对齐矩形（左上角 + 尺寸）
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Empty 宽或高不大于零的矩形视为空，空矩形永远不参与碰撞
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right 右边界
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX 中心点X
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY 中心点Y
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Intersects 两个矩形是否重叠（边界接触也算重叠）
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Right() >= o.X &&
		r.X <= o.Right() &&
		r.Bottom() >= o.Y &&
		r.Y <= o.Bottom()
}

// CollisionComponent 定义实体的碰撞检测边界框（hitbox）
// 碰撞盒中心 = 实体位置 + 偏移量；Bounds 由 MovementSystem 在每次移动后刷新
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒相对于实体位置的Y偏移量（像素），正值向下偏移

	Bounds Rect // 当前帧的碰撞盒（世界坐标）
}

// BoundsAt 计算实体位于 (x, y) 时的碰撞盒
func (c *CollisionComponent) BoundsAt(x, y float64) Rect {
	return Rect{
		X:      x + c.OffsetX - c.Width/2,
		Y:      y + c.OffsetY - c.Height/2,
		Width:  c.Width,
		Height: c.Height,
	}
}
