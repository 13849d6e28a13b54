package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/ecs"
)

// hudRows 顶部 HUD 占用的行数
const hudRows = 1

var (
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBlast  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
)

// glyph 每种行为的字符与颜色
func glyph(b components.BehaviorType) (rune, tcell.Style) {
	switch b {
	case components.BehaviorUserPlane:
		return '>', tcell.StyleDefault.Foreground(tcell.ColorDeepSkyBlue).Bold(true)
	case components.BehaviorEnemyPlane:
		return '<', tcell.StyleDefault.Foreground(tcell.ColorIndianRed)
	case components.BehaviorSineEnemy:
		return '{', tcell.StyleDefault.Foreground(tcell.ColorOrchid)
	case components.BehaviorBoss:
		return '#', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case components.BehaviorUserProjectile:
		return '-', tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case components.BehaviorEnemyProjectile:
		return '*', tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case components.BehaviorBossProjectile:
		return '@', tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	case components.BehaviorAmmoBox:
		return 'A', tcell.StyleDefault.Foreground(tcell.ColorLimeGreen)
	case components.BehaviorHeart:
		return '+', tcell.StyleDefault.Foreground(tcell.ColorHotPink)
	default:
		return '?', tcell.StyleDefault
	}
}

// toCell 世界坐标映射到终端单元格；HUD 行以下为游戏区域
func (g *Game) toCell(x, y float64, cols, rows int) (int, int, bool) {
	if x < 0 || y < 0 || x >= g.world.Width || y >= g.world.Height {
		return 0, 0, false
	}
	playRows := rows - hudRows
	if cols <= 0 || playRows <= 0 {
		return 0, 0, false
	}
	cx := int(x / g.world.Width * float64(cols))
	cy := int(y/g.world.Height*float64(playRows)) + hudRows
	return cx, cy, true
}

func (g *Game) draw() {
	g.screen.Clear()
	cols, rows := g.screen.Size()

	g.drawPlayArea(cols, rows)
	g.drawEntities(cols, rows)
	for _, b := range g.blasts {
		if cx, cy, ok := g.toCell(b.x, b.y, cols, rows); ok {
			g.screen.SetContent(cx, cy, '✶', nil, styleBlast)
		}
	}
	g.drawHUD(cols, rows)

	g.screen.Show()
}

// drawPlayArea 玩家可移动区域的右边界
func (g *Game) drawPlayArea(cols, rows int) {
	for y := hudRows; y < rows; y++ {
		if cx, _, ok := g.toCell(g.world.PlayRight, 0, cols, rows); ok {
			g.screen.SetContent(cx, y, '┊', nil, styleBorder)
		}
	}
}

func (g *Game) drawEntities(cols, rows int) {
	level := g.campaign.Level()
	if level == nil {
		return
	}
	em := level.EntityManager()

	// 战机最后绘制，覆盖同一单元格中的子弹
	order := []ecs.Group{
		ecs.GroupAmmo, ecs.GroupHeart,
		ecs.GroupEnemyProjectile, ecs.GroupUserProjectile,
		ecs.GroupEnemy, ecs.GroupFriendly,
	}
	for _, group := range order {
		for _, id := range em.Entities(group) {
			pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
			if !ok {
				continue
			}
			behavior, ok := ecs.GetComponent[*components.BehaviorComponent](em, id)
			if !ok {
				continue
			}
			cx, cy, ok := g.toCell(pos.X, pos.Y, cols, rows)
			if !ok {
				continue
			}
			r, style := glyph(behavior.Type)
			if shield, ok := ecs.GetComponent[*components.ShieldComponent](em, id); ok && shield.Active {
				style = style.Reverse(true)
			}
			g.screen.SetContent(cx, cy, r, nil, style)
		}
	}
}

func (g *Game) drawHUD(cols, rows int) {
	hud := fmt.Sprintf(" %s  HP %d  Kills %d", g.levelName, g.health, g.kills)
	if g.killTarget > 0 {
		hud += fmt.Sprintf("/%d", g.killTarget)
	}
	if level := g.campaign.Level(); level != nil {
		if player := level.UserPlayer(); player != nil {
			hud += fmt.Sprintf("  Power %d", player.PowerLevel)
		}
	}
	if level := g.campaign.Level(); level != nil {
		if current, total, ok := level.BossProgress(); ok {
			hud += fmt.Sprintf("  Boss %d/%d", current, total)
		}
	}
	if g.bossID != 0 {
		hud += fmt.Sprintf("  BOSS HP %d", g.bossHealth)
	}
	drawString(g.screen, 0, 0, hud, styleHUD)

	msg, style := g.alert, styleHUD
	switch {
	case g.banner != "":
		msg, style = g.banner, styleBanner
	case g.campaign.Paused():
		msg = "PAUSED (p to resume)"
	}
	if msg != "" {
		drawString(g.screen, (cols-len(msg))/2, rows/2, msg, style)
	}
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
