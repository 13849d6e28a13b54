// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置、创建音频与进度存储、
// 组装场景管理器，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/game"
	"github.com/gonewx/skybattle/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName 进度存储目录名
const AppName = "skybattle"

// audioSampleRate 与 internal/audio 合成音效的采样率一致
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 起始关卡ID，为空则从第一关开始
	Level string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Mute 启动时静音
	Mute bool
	// Hitboxes 显示碰撞盒
	Hitboxes bool
	// Volume 音效音量 0.0 ~ 1.0
	Volume float64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	catalog      *config.Catalog
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	catalog, err := config.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	for from, to := range catalog.MissingNextLevels() {
		log.Printf("[App] Warning: level %s points to missing next level %s", from, to)
	}

	// 初始化音频上下文并预生成音效
	audioContext := audio.NewContext(audioSampleRate)
	audioManager := game.NewAudioManager(audioContext, cfg.Volume, cfg.Mute)
	audioManager.Preload()
	log.Printf("[App] AudioManager initialized")

	progress := game.NewProgressManager(openStorage(), levelOrder(catalog))

	rng := game.NewRandomSource(cfg.Seed)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(levelID string) (game.Scene, error) {
		return scenes.NewGameScene(scenes.GameSceneOptions{
			Catalog:      catalog,
			Progress:     progress,
			Audio:        audioManager,
			RNG:          rng,
			StartLevel:   levelID,
			ShowHitboxes: cfg.Hitboxes,
		})
	})

	log.Printf("[App] Starting level: %q", cfg.Level)
	if err := sceneManager.LoadLevel(cfg.Level); err != nil {
		return nil, err
	}

	return &App{
		sceneManager: sceneManager,
		catalog:      catalog,
		verbose:      cfg.Verbose,
	}, nil
}

// openStorage 打开进度存储；失败时降级为仅内存
func openStorage() *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: progress storage unavailable: %v (progress will not persist)", err)
		return nil
	}
	return manager
}

func levelOrder(catalog *config.Catalog) []string {
	order := make([]string, 0, len(catalog.Levels))
	for _, lc := range catalog.Levels {
		order = append(order, lc.ID)
	}
	return order
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次），一次 tick 推进一帧游戏
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return a.sceneManager.Update()
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回世界尺寸作为逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// WindowSize 世界尺寸（像素）
func (a *App) WindowSize() (int, int) {
	return int(a.catalog.World.Width), int(a.catalog.World.Height)
}

// SaveOnExit 退出时保存进度
func (a *App) SaveOnExit() bool {
	return a.sceneManager.SaveOnExit()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
