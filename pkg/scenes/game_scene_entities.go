package scenes

import (
	"image/color"

	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var (
	colorSky      = color.RGBA{R: 18, G: 24, B: 48, A: 255}
	colorPlayArea = color.RGBA{R: 30, G: 40, B: 72, A: 255}
	colorShield   = color.NRGBA{R: 120, G: 200, B: 255, A: 110}
)

// behaviorColor 每种行为的填充色
func behaviorColor(b components.BehaviorType) color.Color {
	switch b {
	case components.BehaviorUserPlane:
		return colornames.Deepskyblue
	case components.BehaviorEnemyPlane:
		return colornames.Indianred
	case components.BehaviorSineEnemy:
		return colornames.Orchid
	case components.BehaviorBoss:
		return colornames.Darkred
	case components.BehaviorUserProjectile:
		return colornames.Yellow
	case components.BehaviorEnemyProjectile:
		return colornames.Orange
	case components.BehaviorBossProjectile:
		return colornames.Orangered
	case components.BehaviorAmmoBox:
		return colornames.Limegreen
	case components.BehaviorHeart:
		return colornames.Hotpink
	default:
		return colornames.White
	}
}

// drawPlayArea 玩家可移动区域
func (s *GameScene) drawPlayArea(screen *ebiten.Image) {
	w := s.world
	vector.DrawFilledRect(screen,
		float32(w.PlayLeft), float32(w.PlayTop),
		float32(w.PlayRight-w.PlayLeft), float32(w.PlayBottom-w.PlayTop),
		colorPlayArea, false)
}

// drawEntities 先画战机（后层），再画子弹与补给（前层）
func (s *GameScene) drawEntities(screen *ebiten.Image) {
	level := s.campaign.Level()
	if level == nil {
		return
	}
	em := level.EntityManager()

	for _, layer := range []game.Layer{game.LayerBack, game.LayerFront} {
		for _, group := range ecs.Groups() {
			for _, id := range em.Entities(group) {
				if s.layerOf(id, group) != layer {
					continue
				}
				s.drawEntity(screen, em, id)
			}
		}
	}
}

func (s *GameScene) drawEntity(screen *ebiten.Image, em *ecs.EntityManager, id ecs.EntityID) {
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok || col.Bounds.Empty() {
		return
	}
	behavior, ok := ecs.GetComponent[*components.BehaviorComponent](em, id)
	if !ok {
		return
	}

	b := col.Bounds
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), behaviorColor(behavior.Type), true)

	if shield, ok := ecs.GetComponent[*components.ShieldComponent](em, id); ok && shield.Active {
		vector.DrawFilledCircle(screen, float32(b.CenterX()), float32(b.CenterY()), float32(b.Width*0.6), colorShield, true)
	}
}

// layerOf 优先使用生成通知中的渲染层
func (s *GameScene) layerOf(id ecs.EntityID, group ecs.Group) game.Layer {
	if layer, ok := s.layers[id]; ok {
		return layer
	}
	return game.LayerFor(group)
}
