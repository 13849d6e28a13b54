package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/skybattle/pkg/app"
	"github.com/gonewx/skybattle/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	levelFlag    = flag.String("level", "", "起始关卡ID（如 level-3），为空从第一关开始")
	seedFlag     = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	verboseFlag  = flag.Bool("verbose", false, "显示详细日志")
	muteFlag     = flag.Bool("mute", false, "静音启动")
	volumeFlag   = flag.Float64("volume", 0.8, "音效音量 0.0 ~ 1.0")
	hitboxesFlag = flag.Bool("hitboxes", false, "显示碰撞盒（游戏中按 H 切换）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verboseFlag,
		Level:    *levelFlag,
		Seed:     *seedFlag,
		Mute:     *muteFlag,
		Hitboxes: *hitboxesFlag,
		Volume:   *volumeFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Sky Battle")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	if !gameApp.SaveOnExit() {
		log.Printf("[main] Warning: progress was not saved")
	}
	if runErr != nil && runErr != ebiten.Termination {
		fmt.Fprintf(os.Stderr, "游戏异常退出: %v\n", runErr)
		os.Exit(1)
	}
}
