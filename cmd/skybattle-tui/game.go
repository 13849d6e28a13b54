package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/skybattle/pkg/campaign"
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/game"
)

const (
	// frameDuration 约 60 帧每秒，一帧推进一次游戏
	frameDuration = 16 * time.Millisecond
	alertFrames   = 120
	blastFrames   = 20
)

// GameOptions 终端版游戏的依赖
type GameOptions struct {
	Catalog    *config.Catalog
	RNG        game.RandomSource
	Audio      game.AudioSink
	Progress   *game.ProgressManager
	StartLevel string
}

type blast struct {
	x, y float64
	age  int
}

// Game 终端版游戏：事件 goroutine 收集按键，主循环按固定帧推进并重绘
type Game struct {
	screen   tcell.Screen
	campaign *campaign.Campaign
	catalog  *config.Catalog
	input    *game.InputState
	keys     keyState

	world      config.WorldConfig
	levelName  string
	health     int
	kills      int
	killTarget int
	bossID     ecs.EntityID
	bossHealth int
	alert      string
	alertTimer int
	banner     string
	blasts     []blast
}

// NewGame 创建终端版游戏并开始一局
func NewGame(screen tcell.Screen, opts GameOptions) (*Game, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("tui game requires a config catalog")
	}
	g := &Game{
		screen:  screen,
		catalog: opts.Catalog,
		input:   game.NewInputState(),
		world:   *opts.Catalog.World,
	}

	c, err := campaign.New(campaign.Options{
		Catalog:   opts.Catalog,
		RNG:       opts.RNG,
		Input:     g.input,
		Presenter: g,
		Audio:     opts.Audio,
		Progress:  opts.Progress,
	})
	if err != nil {
		return nil, err
	}
	g.campaign = c
	if err := c.Start(opts.StartLevel); err != nil {
		return nil, err
	}
	return g, nil
}

// Campaign 当前战役
func (g *Game) Campaign() *campaign.Campaign {
	return g.campaign
}

// Run 主循环，直到玩家退出
func (g *Game) Run() {
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev, time.Now()) {
				g.campaign.SaveOnExit()
				return
			}
		case now := <-ticker.C:
			g.step(now)
			g.draw()
		}
	}
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (g *Game) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if g.keys.press(ev, now) {
			return true
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'p', 'P':
				if !g.campaign.Ended() {
					g.campaign.SetPaused(!g.campaign.Paused())
				}
			case 'r', 'R':
				g.restart()
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// step 把按键状态写入输入并推进一帧
func (g *Game) step(now time.Time) {
	dx, dy, fire := g.keys.axes(now)
	g.input.SetMove(dx, dy)
	g.input.SetFire(fire)

	if _, err := g.campaign.Tick(); err != nil {
		log.Printf("[TUI] ERROR: %v", err)
		g.showAlert(err.Error())
	}
	if g.campaign.Paused() {
		return
	}

	if g.alertTimer > 0 {
		g.alertTimer--
		if g.alertTimer == 0 {
			g.alert = ""
		}
	}
	kept := g.blasts[:0]
	for _, b := range g.blasts {
		b.age++
		if b.age < blastFrames {
			kept = append(kept, b)
		}
	}
	g.blasts = kept
}

func (g *Game) restart() {
	if err := g.campaign.Restart(); err != nil {
		g.showAlert(err.Error())
		return
	}
	g.keys.reset()
	g.banner = ""
}

func (g *Game) showAlert(msg string) {
	g.alert = msg
	g.alertTimer = alertFrames
}
