package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudMargin      = 12.0
	hudLineHeight  = 18.0
	bossBarWidth   = 300.0
	bossBarHeight  = 12.0
	hudTextScale   = 1.5
	alertTextScale = 2.5
)

// drawHUD 生命、击杀数、火力等级、Boss 血条、提示与暂停状态
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	s.drawText(screen, fmt.Sprintf("HP %d", s.health), hudMargin, hudMargin, hudTextScale, color.White)

	if s.killTarget > 0 {
		s.drawText(screen, fmt.Sprintf("Kills %d/%d", s.kills, s.killTarget), hudMargin, hudMargin+hudLineHeight, hudTextScale, color.White)
	} else {
		s.drawText(screen, fmt.Sprintf("Kills %d", s.kills), hudMargin, hudMargin+hudLineHeight, hudTextScale, color.White)
	}

	if level := s.campaign.Level(); level != nil {
		if player := level.UserPlayer(); player != nil {
			s.drawText(screen, fmt.Sprintf("Power %d/%d", player.PowerLevel, player.MaxPowerLevel), hudMargin, hudMargin+2*hudLineHeight, hudTextScale, color.White)
		}
	}

	if s.levelName != "" {
		s.drawText(screen, s.levelName, s.world.Width-200, hudMargin, hudTextScale, color.White)
	}
	if counter := s.bossCounter(); counter != "" {
		s.drawText(screen, counter, s.world.Width-200, hudMargin+hudLineHeight, hudTextScale, color.White)
	}

	s.drawBossBar(screen)

	cx, cy := s.world.Width/2-200, s.world.Height/2-40
	switch {
	case s.banner != "":
		s.drawText(screen, s.banner, cx, cy, alertTextScale, color.RGBA{R: 255, G: 220, B: 80, A: 255})
	case s.campaign.Paused():
		s.drawText(screen, "PAUSED (P to resume)", cx, cy, alertTextScale, color.White)
	case s.alert != "":
		s.drawText(screen, s.alert, cx, cy, alertTextScale, color.White)
	}
}

// drawBossBar 屏幕顶部居中的 Boss 血条
func (s *GameScene) drawBossBar(screen *ebiten.Image) {
	if s.bossID == 0 || s.bossMax <= 0 {
		return
	}
	x := float32(s.world.Width/2 - bossBarWidth/2)
	y := float32(hudMargin)
	ratio := float32(s.bossHealth) / float32(s.bossMax)

	vector.DrawFilledRect(screen, x, y, bossBarWidth, bossBarHeight, color.RGBA{R: 100, A: 255}, false)
	vector.DrawFilledRect(screen, x, y, bossBarWidth*ratio, bossBarHeight, color.RGBA{R: 220, G: 40, B: 40, A: 255}, false)
	s.drawText(screen, fmt.Sprintf("BOSS %d", s.bossHealth), float64(x)+bossBarWidth+8, float64(y)-2, 1, color.White)
}

// bossCounter Boss 关卡显示 "Boss 2/3"，其他关卡为空
func (s *GameScene) bossCounter() string {
	level := s.campaign.Level()
	if level == nil {
		return ""
	}
	current, total, ok := level.BossProgress()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Boss %d/%d", current, total)
}

func (s *GameScene) drawText(screen *ebiten.Image, msg string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, msg, s.face, op)
}
