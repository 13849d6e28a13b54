package scenes

import (
	"log"

	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/game"
)

// OnEntitySpawned 记录实体的渲染层
func (s *GameScene) OnEntitySpawned(id ecs.EntityID, group ecs.Group, layer game.Layer) {
	s.layers[id] = layer
}

// OnEntityRemoved 丢弃实体的表现层状态
func (s *GameScene) OnEntityRemoved(id ecs.EntityID) {
	delete(s.layers, id)
	if id == s.bossID {
		s.bossID = 0
		s.bossHealth = 0
	}
}

func (s *GameScene) OnHealthChanged(current int) {
	s.health = current
}

// OnBossHealthChanged Boss 首次出现时记录满血值，用于血条比例
func (s *GameScene) OnBossHealthChanged(bossID ecs.EntityID, current int) {
	if bossID != s.bossID {
		s.bossID = bossID
		s.bossMax = current
		s.showAlert("Boss incoming!")
	}
	s.bossHealth = current
}

func (s *GameScene) OnKillCountChanged(current, target int) {
	s.kills = current
	s.killTarget = target
}

// OnLevelComplete 显示关卡结果；胜负结果常驻直到重新开始
func (s *GameScene) OnLevelComplete(outcome game.Outcome) {
	switch outcome.Kind {
	case game.OutcomeAdvance:
		s.showAlert("Level complete!")
	case game.OutcomeWin:
		s.banner = "VICTORY! Press R to play again"
	case game.OutcomeLose:
		s.banner = "SHOT DOWN! Press R to retry"
	}
	log.Printf("[GameScene] Level complete: %s", outcome.Kind)
}

// OnExplosionAt 在战机消失的位置留下短暂的爆炸标记
func (s *GameScene) OnExplosionAt(x, y float64) {
	s.explosions = append(s.explosions, explosion{x: x, y: y})
}

// OnLevelStarted 新关卡开始：清空上一关的表现层状态
func (s *GameScene) OnLevelStarted(lc *config.LevelConfig) {
	// 新关卡的实体ID从头编号，只保留已经在新关卡中生成的实体
	s.layers = make(map[ecs.EntityID]game.Layer)
	if level := s.campaign.Level(); level != nil {
		em := level.EntityManager()
		for _, group := range ecs.Groups() {
			for _, id := range em.Entities(group) {
				s.layers[id] = game.LayerFor(group)
			}
		}
	}
	s.explosions = s.explosions[:0]
	s.bossID, s.bossHealth, s.bossMax = 0, 0, 0
	s.kills = 0
	s.killTarget = 0
	s.health = lc.PlayerHealth
	s.levelName = lc.Name
	s.world = s.catalog.WorldFor(lc)
	s.banner = ""
	if lc.Description != "" {
		s.showAlert(lc.Name + ": " + lc.Description)
		return
	}
	s.showAlert(lc.Name)
}

// showAlert 显示一条临时提示（覆盖上一条）
func (s *GameScene) showAlert(msg string) {
	s.alert = msg
	s.alertTimer = alertTicks
}

func (s *GameScene) tickAlert() {
	if s.alertTimer <= 0 {
		return
	}
	s.alertTimer--
	if s.alertTimer == 0 {
		s.alert = ""
	}
}
