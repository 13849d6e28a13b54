package entities

import (
	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
)

// addCollision 添加碰撞组件，并按出生位置立即计算碰撞盒
// 这样新实体在同一帧的碰撞检测中也有正确的边界
func addCollision(em *ecs.EntityManager, id ecs.EntityID, h config.HitboxConfig, x, y float64) {
	c := &components.CollisionComponent{
		Width:   h.Width,
		Height:  h.Height,
		OffsetX: h.OffsetX,
		OffsetY: h.OffsetY,
	}
	c.Bounds = c.BoundsAt(x, y)
	em.AddComponent(id, c)
}
