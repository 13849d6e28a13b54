package scenes

import (
	"image/color"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	hitboxBackColor  = color.NRGBA{R: 0, G: 255, B: 0, A: 200}
	hitboxFrontColor = color.NRGBA{R: 255, G: 0, B: 255, A: 200}
	boundaryColor    = color.NRGBA{R: 255, G: 255, B: 0, A: 128}
)

// drawHitboxes 绘制所有碰撞盒（-hitboxes 或 H 键开启）
// 绿色为后层（战机），品红为前层（子弹与补给）
func (s *GameScene) drawHitboxes(screen *ebiten.Image) {
	level := s.campaign.Level()
	if level == nil {
		return
	}
	em := level.EntityManager()

	for _, id := range ecs.GetEntitiesWith1[*components.CollisionComponent](em) {
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		group, _ := em.GroupOf(id)
		if col.Bounds.Empty() {
			continue
		}
		c := hitboxBackColor
		if s.layerOf(id, group) == game.LayerFront {
			c = hitboxFrontColor
		}
		b := col.Bounds
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, c, false)
	}

	// 越界清理线
	h := float32(s.world.Height)
	vector.StrokeLine(screen, float32(s.world.LeftBoundary), 0, float32(s.world.LeftBoundary), h, 1, boundaryColor, false)
	vector.StrokeLine(screen, float32(s.world.RightBoundary), 0, float32(s.world.RightBoundary), h, 1, boundaryColor, false)
}
