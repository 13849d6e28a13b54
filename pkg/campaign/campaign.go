// Package campaign 按关卡序列驱动整局游戏
//
// Campaign 为每个关卡ID组装一个 LevelSystem，处理每帧返回的结果：
// 晋级时切换到下一关，胜利或失败时结束本局并记录进度。
// 渲染层（Ebitengine 场景或终端界面）只需要按固定帧调用 Tick。
package campaign

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/skybattle/pkg/config"
	"github.com/gonewx/skybattle/pkg/game"
	"github.com/gonewx/skybattle/pkg/systems"
)

// ErrUnknownLevel 关卡ID不存在
var ErrUnknownLevel = errors.New("unknown level")

// LevelStartListener 可选接口：Presenter 在新关卡开始时收到通知
// 旧关卡的实体不会逐个发送移除通知，渲染层应在此清空画面
type LevelStartListener interface {
	OnLevelStarted(lc *config.LevelConfig)
}

// Options 创建 Campaign 所需的依赖
type Options struct {
	Catalog   *config.Catalog
	RNG       game.RandomSource
	Input     *game.InputState
	Presenter game.Presenter
	Audio     game.AudioSink
	Progress  *game.ProgressManager // 可为 nil（不记录进度）
}

// Campaign 整局游戏的关卡序列控制器
type Campaign struct {
	opts Options

	level      *systems.LevelSystem
	levelCfg   *config.LevelConfig
	startLevel string

	paused     bool
	ended      bool
	stalled    bool // 下一关不存在，停在当前关卡的结束状态
	result     game.Outcome
	totalKills int
}

// New 创建 Campaign；调用 Start 之后才开始游戏
func New(opts Options) (*Campaign, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("campaign requires a config catalog")
	}
	if opts.RNG == nil {
		opts.RNG = game.NewRandomSource(0)
	}
	if opts.Presenter == nil {
		opts.Presenter = game.NopPresenter{}
	}
	if opts.Audio == nil {
		opts.Audio = game.NopAudioSink{}
	}
	return &Campaign{opts: opts}, nil
}

// Start 从指定关卡开始新的一局；levelID 为空时从第一关开始
//
// 返回：
//   - error: 关卡不存在时返回包装了 ErrUnknownLevel 的错误，当前状态不变
func (c *Campaign) Start(levelID string) error {
	if levelID == "" {
		first := c.opts.Catalog.FirstLevel()
		if first == nil {
			return fmt.Errorf("%w: catalog is empty", ErrUnknownLevel)
		}
		levelID = first.ID
	}

	if err := c.load(levelID); err != nil {
		return err
	}

	c.startLevel = levelID
	c.ended = false
	c.stalled = false
	c.paused = false
	c.result = game.Continue()
	c.totalKills = 0

	if c.opts.Progress != nil {
		c.opts.Progress.StartRun()
		c.opts.Progress.RecordLevelReached(levelID)
	}
	return nil
}

// Restart 从本局的起始关卡重新开始
func (c *Campaign) Restart() error {
	if c.startLevel == "" {
		return c.Start("")
	}
	log.Printf("[Campaign] Restarting from %s", c.startLevel)
	return c.Start(c.startLevel)
}

// Tick 推进一帧
//
// 返回：
//   - game.Outcome: 本帧关卡结果；本局结束后一直返回最终结果
//   - error: 晋级目标关卡不存在（包装 ErrUnknownLevel）；只报告一次，不会重试
func (c *Campaign) Tick() (game.Outcome, error) {
	if c.level == nil {
		return game.Continue(), fmt.Errorf("campaign not started")
	}
	if c.ended || c.stalled {
		return c.result, nil
	}
	if c.paused {
		return game.Continue(), nil
	}

	outcome := c.level.Tick()
	switch outcome.Kind {
	case game.OutcomeContinue:
		return outcome, nil

	case game.OutcomeAdvance:
		c.totalKills += c.level.KillCount()
		from := c.levelCfg.ID
		if err := c.load(outcome.NextLevel); err != nil {
			c.stalled = true
			c.result = outcome
			return outcome, fmt.Errorf("advance from %s: %w", from, err)
		}
		if c.opts.Progress != nil {
			c.opts.Progress.RecordLevelReached(outcome.NextLevel)
		}
		log.Printf("[Campaign] Advanced %s -> %s", from, outcome.NextLevel)
		return outcome, nil

	default:
		c.totalKills += c.level.KillCount()
		c.ended = true
		c.result = outcome
		if c.opts.Progress != nil {
			c.opts.Progress.FinishRun(outcome.Kind, c.totalKills)
		}
		log.Printf("[Campaign] Run ended at %s: %s (%d kills)", c.levelCfg.ID, outcome.Kind, c.totalKills)
		return outcome, nil
	}
}

// load 销毁当前关卡并组装新关卡
func (c *Campaign) load(levelID string) error {
	lc, ok := c.opts.Catalog.Level(levelID)
	if !ok {
		log.Printf("[Campaign] ERROR: level %q not found", levelID)
		return fmt.Errorf("%w: %q", ErrUnknownLevel, levelID)
	}

	level, err := systems.NewLevel(systems.LevelSetup{
		Level:  lc,
		World:  c.opts.Catalog.WorldFor(lc),
		Units:  c.opts.Catalog.Units,
		Bosses: c.opts.Catalog.Bosses,
		RNG:    c.opts.RNG,
		Input:  c.opts.Input,
		Hooks:  systems.Hooks{Presenter: c.opts.Presenter, Audio: c.opts.Audio},
	})
	if err != nil {
		return fmt.Errorf("failed to build level %s: %w", levelID, err)
	}

	if c.level != nil {
		c.level.Destroy()
	}
	c.level = level
	c.levelCfg = lc
	if c.opts.Input != nil {
		c.opts.Input.Reset()
	}
	if listener, ok := c.opts.Presenter.(LevelStartListener); ok {
		listener.OnLevelStarted(lc)
	}
	log.Printf("[Campaign] Level %s (%s) started", lc.ID, lc.Name)
	return nil
}

// SetPaused 暂停/继续；暂停期间不推进任何状态
func (c *Campaign) SetPaused(paused bool) {
	if c.paused == paused {
		return
	}
	c.paused = paused
	log.Printf("[Campaign] Paused: %v", paused)
}

// Paused 是否暂停
func (c *Campaign) Paused() bool {
	return c.paused
}

// Ended 本局是否已结束（胜利或失败）
func (c *Campaign) Ended() bool {
	return c.ended
}

// Result 本局的最终结果（未结束时为 Continue）
func (c *Campaign) Result() game.Outcome {
	return c.result
}

// Level 当前关卡控制器
func (c *Campaign) Level() *systems.LevelSystem {
	return c.level
}

// LevelConfig 当前关卡配置
func (c *Campaign) LevelConfig() *config.LevelConfig {
	return c.levelCfg
}

// TotalKills 本局累计击杀数（含当前关卡）
func (c *Campaign) TotalKills() int {
	if c.level == nil || c.ended || c.stalled {
		return c.totalKills
	}
	return c.totalKills + c.level.KillCount()
}

// SaveOnExit 程序退出时保存进度；未结束的对局不计入胜负
func (c *Campaign) SaveOnExit() bool {
	if c.opts.Progress == nil {
		return true
	}
	if err := c.opts.Progress.Save(); err != nil {
		log.Printf("[Campaign] ERROR: failed to save progress on exit: %v", err)
		return false
	}
	return true
}
