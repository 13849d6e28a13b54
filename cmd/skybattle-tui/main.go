// skybattle-tui 在终端中运行 Sky Battle
//
// 用法：
//
//	go run ./cmd/skybattle-tui                 # 从第一关开始
//	go run ./cmd/skybattle-tui -level level-3  # 指定起始关卡
//	go run ./cmd/skybattle-tui -log tui.log    # 日志写入文件（终端被游戏占用）
//
// 方向键/WASD 移动，空格开火，p 暂停，r 重新开始，Esc 或 q 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	sfx "github.com/gonewx/skybattle/internal/audio"
	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/embedded"
	"github.com/gonewx/skybattle/pkg/game"
)

var (
	rootFlag  = flag.String("root", ".", "包含 data/ 目录的项目根目录")
	levelFlag = flag.String("level", "", "起始关卡ID，为空从第一关开始")
	seedFlag  = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	muteFlag  = flag.Bool("mute", false, "静音")
	logFlag   = flag.String("log", "", "日志文件路径，为空不输出日志")
)

func main() {
	flag.Parse()

	if *logFlag != "" {
		f, err := os.Create(*logFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法创建日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS(*rootFlag))
	catalog, err := config.LoadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	sink := sfx.NewSpeakerSink(*muteFlag)
	if err := sink.Init(); err != nil {
		// 没有音频设备时静音运行
		log.Printf("[TUI] Audio initialization failed: %v", err)
	}
	defer sink.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}

	progress := game.NewProgressManager(nil, levelIDs(catalog))
	g, err := NewGame(screen, GameOptions{
		Catalog:    catalog,
		RNG:        game.NewRandomSource(*seedFlag),
		Audio:      sink,
		Progress:   progress,
		StartLevel: *levelFlag,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	g.Run()
	screen.Fini()

	if c := g.Campaign(); c.Ended() {
		fmt.Printf("%s - %d kills\n", c.Result().Kind, c.TotalKills())
	}
}

func levelIDs(catalog *config.Catalog) []string {
	ids := make([]string, 0, len(catalog.Levels))
	for _, lc := range catalog.Levels {
		ids = append(ids, lc.ID)
	}
	return ids
}
