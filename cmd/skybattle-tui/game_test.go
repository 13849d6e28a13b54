package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/skybattle/internal/testutil"
	"github.com/gonewx/skybattle/pkg/components"
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/entities"
	"github.com/gonewx/skybattle/pkg/game"
)

func testEnemy() config.EnemyConfig {
	return config.EnemyConfig{
		Behavior:        config.EnemyBehaviorStraight,
		Health:          1,
		Speed:           -6,
		ProjectileSpeed: -10,
		Hitbox:          config.HitboxConfig{Width: 100, Height: 40},
	}
}

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()
	units := &config.UnitsConfig{
		Player: config.PlayerConfig{
			Speed:             8,
			FireCooldownTicks: 5,
			MaxPowerLevel:     4,
			ProjectileSpeed:   15,
			StartX:            100,
			StartY:            350,
			Hitbox:            config.HitboxConfig{Width: 100, Height: 40},
		},
		Enemies: map[string]config.EnemyConfig{"basic": testEnemy()},
	}
	units.Projectiles.User.Hitbox = config.HitboxConfig{Width: 40, Height: 12}
	units.Projectiles.Enemy.Hitbox = config.HitboxConfig{Width: 40, Height: 12}
	units.Projectiles.Boss.Hitbox = config.HitboxConfig{Width: 50, Height: 30}
	levels := []*config.LevelConfig{
		{ID: "level-1", Name: "Level 1", PlayerHealth: 5, KillsToAdvance: 1,
			SpawnMode: config.SpawnModeRegular, EnemyTypes: []string{"basic"}},
	}
	world := config.DefaultWorldConfig()
	catalog, err := config.NewCatalog(&world, units, &config.BossVariantsConfig{}, levels)
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(130, 76)

	g, err := NewGame(screen, GameOptions{
		Catalog:  catalog,
		RNG:      testutil.Never(),
		Audio:    game.NopAudioSink{},
		Progress: game.NewProgressManager(nil, []string{"level-1"}),
	})
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	return g, screen
}

func cellAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := screen.GetContents()
	cell := cells[y*w+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(cell.Runes[0])
	}
	return b.String()
}

// TestGame_ToCell 世界坐标映射到单元格，越界坐标不绘制
func TestGame_ToCell(t *testing.T) {
	g, _ := newTestGame(t)
	tests := []struct {
		name   string
		x, y   float64
		wantX  int
		wantY  int
		wantOK bool
	}{
		{"原点", 0, 0, 0, hudRows, true},
		{"世界中心", 650, 375, 65, 37 + hudRows, true},
		{"右边界外", 1300, 10, 0, 0, false},
		{"左边界外", -1, 10, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy, ok := g.toCell(tt.x, tt.y, 130, 75+hudRows)
			if ok != tt.wantOK {
				t.Fatalf("toCell() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (cx != tt.wantX || cy != tt.wantY) {
				t.Errorf("toCell() = (%d, %d), want (%d, %d)", cx, cy, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestGame_Draw 绘制玩家飞机与 HUD
func TestGame_Draw(t *testing.T) {
	g, screen := newTestGame(t)
	g.draw()

	cols, rows := screen.Size()
	cx, cy, ok := g.toCell(100, 350, cols, rows)
	if !ok {
		t.Fatal("player start should be on screen")
	}
	if r := cellAt(screen, cx, cy); r != '>' {
		t.Errorf("player cell = %q, want '>'", r)
	}
	if hud := rowText(screen, 0); !strings.Contains(hud, "Level 1") || !strings.Contains(hud, "HP 5") {
		t.Errorf("HUD = %q", hud)
	}
}

// TestGame_StepMovesPlayer 按住方向键时玩家移动
func TestGame_StepMovesPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	now := time.Now()
	g.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), now)
	g.step(now)

	em := g.Campaign().Level().EntityManager()
	players := em.Entities(ecs.GroupFriendly)
	if len(players) != 1 {
		t.Fatalf("Expected 1 friendly entity, got %d", len(players))
	}
	pos, _ := getPosition(g, players[0])
	if pos.X != 108 {
		t.Errorf("player X = %v, want 108", pos.X)
	}
}

// TestGame_WinBanner 击落目标数后显示胜利横幅
func TestGame_WinBanner(t *testing.T) {
	g, screen := newTestGame(t)
	em := g.Campaign().Level().EntityManager()
	if _, err := entities.NewEnemyPlane(em, testEnemy(), 600, 200); err != nil {
		t.Fatalf("NewEnemyPlane() failed: %v", err)
	}
	kind := entities.ProjectileKind{
		Behavior: components.BehaviorUserProjectile,
		Hitbox:   config.HitboxConfig{Width: 40, Height: 12},
	}
	if _, err := entities.NewProjectile(em, kind, entities.ProjectileSpec{X: 579, Y: 200, VX: 15}); err != nil {
		t.Fatalf("NewProjectile() failed: %v", err)
	}

	g.step(time.Now())
	if !strings.HasPrefix(g.banner, "VICTORY") {
		t.Fatalf("banner = %q, want VICTORY", g.banner)
	}
	if len(g.blasts) != 1 {
		t.Errorf("Expected 1 blast, got %d", len(g.blasts))
	}

	g.draw()
	if row := rowText(screen, 76/2); !strings.Contains(row, "VICTORY") {
		t.Errorf("banner row = %q", row)
	}
}

// TestGame_HandleEvent 退出、暂停与重新开始
func TestGame_HandleEvent(t *testing.T) {
	g, _ := newTestGame(t)
	now := time.Now()

	if g.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now) {
		t.Error("Escape should quit")
	}
	if g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now) {
		t.Error("q should quit")
	}

	g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), now)
	if !g.Campaign().Paused() {
		t.Error("p should pause")
	}
	g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), now)
	if g.Campaign().Paused() {
		t.Error("restart should clear pause")
	}
}

func getPosition(g *Game, id ecs.EntityID) (*components.PositionComponent, bool) {
	return ecs.GetComponent[*components.PositionComponent](g.Campaign().Level().EntityManager(), id)
}

// TestGame_HUDRow 状态栏：普通关卡显示击杀目标，不显示 Boss 进度
func TestGame_HUDRow(t *testing.T) {
	g, screen := newTestGame(t)
	g.step(time.Now())
	g.draw()

	row := rowText(screen, 0)
	if !strings.Contains(row, "Level 1  HP 5  Kills 0/1") {
		t.Errorf("HUD row = %q", row)
	}
	if strings.Contains(row, "Boss") {
		t.Errorf("regular level should not show boss progress: %q", row)
	}
}
