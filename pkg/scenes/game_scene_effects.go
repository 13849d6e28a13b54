package scenes

import (
	"image/color"

	"github.com/gonewx/skybattle/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// explosion 表现层的爆炸标记，不进入实体管理器
type explosion struct {
	x, y float64
	age  int
}

// tickExplosions 推进爆炸动画并移除过期标记
func (s *GameScene) tickExplosions() {
	kept := s.explosions[:0]
	for _, e := range s.explosions {
		e.age++
		if e.age < explosionTicks {
			kept = append(kept, e)
		}
	}
	s.explosions = kept
}

// drawExplosions 逐渐扩大并淡出的圆
func (s *GameScene) drawExplosions(screen *ebiten.Image) {
	for _, e := range s.explosions {
		progress := float64(e.age) / explosionTicks
		radius := float32(utils.Lerp(10, 60, utils.EaseOutCubic(progress)))
		alpha := uint8(255 * (1 - utils.EaseInQuad(progress)))
		vector.DrawFilledCircle(screen, float32(e.x), float32(e.y), radius, color.NRGBA{R: 255, G: 160, B: 40, A: alpha}, true)
		vector.DrawFilledCircle(screen, float32(e.x), float32(e.y), radius*0.5, color.NRGBA{R: 255, G: 240, B: 180, A: alpha}, true)
	}
}
