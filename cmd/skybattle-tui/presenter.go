package main

import (
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/game"
)

// 终端版按集合决定字符，不需要记录渲染层
func (g *Game) OnEntitySpawned(ecs.EntityID, ecs.Group, game.Layer) {}

func (g *Game) OnEntityRemoved(id ecs.EntityID) {
	if id == g.bossID {
		g.bossID = 0
		g.bossHealth = 0
	}
}

func (g *Game) OnHealthChanged(current int) {
	g.health = current
}

func (g *Game) OnBossHealthChanged(bossID ecs.EntityID, current int) {
	if bossID != g.bossID {
		g.bossID = bossID
		g.showAlert("Boss incoming!")
	}
	g.bossHealth = current
}

func (g *Game) OnKillCountChanged(current, target int) {
	g.kills = current
	g.killTarget = target
}

func (g *Game) OnLevelComplete(outcome game.Outcome) {
	switch outcome.Kind {
	case game.OutcomeAdvance:
		g.showAlert("Level complete!")
	case game.OutcomeWin:
		g.banner = "VICTORY! r: play again  q: quit"
	case game.OutcomeLose:
		g.banner = "SHOT DOWN! r: retry  q: quit"
	}
}

func (g *Game) OnExplosionAt(x, y float64) {
	g.blasts = append(g.blasts, blast{x: x, y: y})
}

// OnLevelStarted 新关卡开始时重置 HUD
func (g *Game) OnLevelStarted(lc *config.LevelConfig) {
	g.world = g.catalog.WorldFor(lc)
	g.levelName = lc.Name
	g.health = lc.PlayerHealth
	g.kills, g.killTarget = 0, 0
	g.bossID, g.bossHealth = 0, 0
	g.blasts = g.blasts[:0]
	g.banner = ""
	g.showAlert(lc.Name)
}
