package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可切换的画面（关卡战斗等）
// 场景按固定帧推进，每次 Update 对应一帧
type Scene interface {
	// Update 推进一帧；返回 ebiten.Termination 表示退出游戏
	Update() error

	// Draw 绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在程序退出时保存状态
//
// 实现此接口的场景会在窗口关闭或收到退出信号时被调用 SaveOnExit()
type Saveable interface {
	// SaveOnExit 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
