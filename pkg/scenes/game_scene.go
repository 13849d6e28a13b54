package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/skybattle/pkg/campaign"
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	// alertTicks 普通提示显示的帧数（约 2 秒）
	alertTicks = 120
	// explosionTicks 爆炸标记存在的帧数
	explosionTicks = 30
)

// GameSceneOptions 创建战斗场景所需的依赖
type GameSceneOptions struct {
	Catalog      *config.Catalog
	Progress     *game.ProgressManager // 可为 nil
	Audio        *game.AudioManager    // 可为 nil（静音）
	RNG          game.RandomSource
	StartLevel   string // 为空时从第一关开始
	ShowHitboxes bool
}

// GameScene 战斗场景
//
// 职责：
//   - 每帧把键盘状态写入 InputState，再推进 Campaign 一帧
//   - 实现 game.Presenter：记录实体所在的渲染层、HUD 数值、爆炸位置
//   - 用纯色矩形绘制实体，文字绘制 HUD 与提示
//
// 核心逻辑不持有任何渲染资源，场景只读取 EntityManager 的位置与碰撞盒。
type GameScene struct {
	campaign *campaign.Campaign
	catalog  *config.Catalog
	input    *game.InputState
	audio    *game.AudioManager
	world    config.WorldConfig

	// Presenter 状态
	layers     map[ecs.EntityID]game.Layer
	health     int
	bossID     ecs.EntityID
	bossHealth int
	bossMax    int
	kills      int
	killTarget int
	levelName  string

	alert      string
	alertTimer int
	banner     string // 本局结束后常驻显示

	explosions []explosion

	showHitboxes bool
	face         *text.GoXFace
	touchIDs     []ebiten.TouchID
}

// NewGameScene 创建战斗场景并开始一局游戏
//
// 参数：
//   - opts: 场景依赖
//
// 返回：
//   - *GameScene: 场景实例
//   - error: 起始关卡不存在（包装 campaign.ErrUnknownLevel）等
func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("game scene requires a config catalog")
	}

	s := &GameScene{
		catalog:      opts.Catalog,
		input:        game.NewInputState(),
		audio:        opts.Audio,
		world:        *opts.Catalog.World,
		layers:       make(map[ecs.EntityID]game.Layer),
		showHitboxes: opts.ShowHitboxes,
		face:         text.NewGoXFace(basicfont.Face7x13),
	}

	var sink game.AudioSink = game.NopAudioSink{}
	if opts.Audio != nil {
		sink = opts.Audio
	}

	c, err := campaign.New(campaign.Options{
		Catalog:   opts.Catalog,
		RNG:       opts.RNG,
		Input:     s.input,
		Presenter: s,
		Audio:     sink,
		Progress:  opts.Progress,
	})
	if err != nil {
		return nil, err
	}
	s.campaign = c

	if err := c.Start(opts.StartLevel); err != nil {
		return nil, err
	}
	return s, nil
}

// Update 读取输入并推进一帧
func (s *GameScene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[GameScene] Escape pressed, quitting")
		return ebiten.Termination
	}
	s.handleKeys()
	s.step()
	return nil
}

// handleKeys 触屏优先，其次键盘
func (s *GameScene) handleKeys() {
	if !s.handleTouch() {
		s.handleMoveKeys()
	}
	s.handleControlKeys()
}

// handleMoveKeys 方向键/WASD 移动，空格开火
func (s *GameScene) handleMoveKeys() {
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	s.input.SetMove(dx, dy)
	s.input.SetFire(ebiten.IsKeyPressed(ebiten.KeySpace))
}

// handleControlKeys P 暂停，R 重新开始，H 碰撞盒，M 静音
func (s *GameScene) handleControlKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.showHitboxes = !s.showHitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.audio != nil {
		s.audio.SetMuted(!s.audio.Muted())
	}
}

// step 推进 Campaign 一帧并更新表现层计时
func (s *GameScene) step() {
	if _, err := s.campaign.Tick(); err != nil {
		log.Printf("[GameScene] ERROR: %v", err)
		s.showAlert(err.Error())
	}
	if s.campaign.Paused() {
		return
	}
	s.tickAlert()
	s.tickExplosions()
}

// TogglePause 切换暂停
func (s *GameScene) TogglePause() {
	if s.campaign.Ended() {
		return
	}
	s.campaign.SetPaused(!s.campaign.Paused())
}

// Restart 从本局起始关卡重新开始
func (s *GameScene) Restart() {
	if err := s.campaign.Restart(); err != nil {
		log.Printf("[GameScene] ERROR: restart failed: %v", err)
		s.showAlert(err.Error())
		return
	}
	s.banner = ""
}

// Input 场景使用的输入状态
func (s *GameScene) Input() *game.InputState {
	return s.input
}

// Campaign 场景驱动的战役
func (s *GameScene) Campaign() *campaign.Campaign {
	return s.campaign
}

// SaveOnExit 退出时记录未完成的对局
func (s *GameScene) SaveOnExit() bool {
	return s.campaign.SaveOnExit()
}

// Draw 背景 → 实体（后层、前层）→ 爆炸 → 碰撞盒 → HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)
	s.drawPlayArea(screen)
	s.drawEntities(screen)
	s.drawExplosions(screen)
	if s.showHitboxes {
		s.drawHitboxes(screen)
	}
	s.drawHUD(screen)
}
