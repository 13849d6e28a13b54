// check_levels 校验 data/ 下的全部配置并打印关卡序列摘要
//
// 用法：
//
//	go run ./cmd/check_levels
//	go run ./cmd/check_levels -root /path/to/skybattle -verbose
//
// 配置无法加载，或存在指向不存在关卡的 nextLevel 时以非零状态退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/embedded"
)

var (
	rootFlag    = flag.String("root", ".", "包含 data/ 目录的项目根目录")
	verboseFlag = flag.Bool("verbose", false, "显示加载日志")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS(*rootFlag))
	if missing := missingFiles(); len(missing) > 0 {
		for _, path := range missing {
			fmt.Fprintf(os.Stderr, "❌ missing %s under %s\n", path, *rootFlag)
		}
		os.Exit(1)
	}
	catalog, err := config.LoadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println(catalog)
	fmt.Printf("World %.0fx%.0f  play area x[%.0f, %.0f] y[%.0f, %.0f]\n",
		catalog.World.Width, catalog.World.Height,
		catalog.World.PlayLeft, catalog.World.PlayRight,
		catalog.World.PlayTop, catalog.World.PlayBottom)
	fmt.Println()

	for _, lc := range catalog.Levels {
		fmt.Println(describeLevel(lc))
	}

	missing := catalog.MissingNextLevels()
	if len(missing) == 0 {
		fmt.Println("\n✅ All level references resolved")
		return
	}

	ids := make([]string, 0, len(missing))
	for id := range missing {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	fmt.Println()
	for _, id := range ids {
		fmt.Printf("❌ %s -> missing next level %q\n", id, missing[id])
	}
	os.Exit(1)
}

// missingFiles 返回缺失的配置文件路径
func missingFiles() []string {
	var missing []string
	for _, path := range []string{config.WorldConfigPath, config.UnitsConfigPath, config.BossVariantsConfigPath} {
		if !embedded.Exists(path) {
			missing = append(missing, path)
		}
	}
	return missing
}

// describeLevel 单行关卡摘要
func describeLevel(lc *config.LevelConfig) string {
	next := lc.NextLevel
	if lc.IsFinal() {
		next = "(final)"
	}

	var goal string
	switch lc.SpawnMode {
	case config.SpawnModeBoss:
		goal = "bosses " + strings.Join(lc.Bosses, ", ")
	default:
		goal = fmt.Sprintf("%d kills, capacity %d, enemies %s",
			lc.KillsToAdvance, lc.EnemyCapacity, strings.Join(lc.EnemyTypes, ", "))
	}
	return fmt.Sprintf("%-10s %-22s hp %d  %s  -> %s", lc.ID, lc.Name, lc.PlayerHealth, goal, next)
}
