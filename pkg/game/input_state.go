package game

import "sync"

// InputSnapshot 某一时刻的输入状态
type InputSnapshot struct {
	MoveX int // -1 左, 0 不动, 1 右
	MoveY int // -1 上, 0 不动, 1 下
	Fire  bool
}

// InputState 输入状态
//
// 输入事件可能来自其他 goroutine（如终端事件循环），随时写入；
// 核心只在移动阶段通过 Snapshot 读取一次，不会在一帧中途看到半更新的状态。
type InputState struct {
	mu    sync.Mutex
	state InputSnapshot
}

// NewInputState 创建输入状态
func NewInputState() *InputState {
	return &InputState{}
}

// SetMove 设置移动方向（分量会被规整到 -1/0/1）
func (s *InputState) SetMove(dx, dy int) {
	s.mu.Lock()
	s.state.MoveX = sign(dx)
	s.state.MoveY = sign(dy)
	s.mu.Unlock()
}

// SetMoveX 只设置水平方向
func (s *InputState) SetMoveX(dx int) {
	s.mu.Lock()
	s.state.MoveX = sign(dx)
	s.mu.Unlock()
}

// SetMoveY 只设置垂直方向
func (s *InputState) SetMoveY(dy int) {
	s.mu.Lock()
	s.state.MoveY = sign(dy)
	s.mu.Unlock()
}

// SetFire 设置开火键状态
func (s *InputState) SetFire(fire bool) {
	s.mu.Lock()
	s.state.Fire = fire
	s.mu.Unlock()
}

// Reset 清空所有输入
func (s *InputState) Reset() {
	s.mu.Lock()
	s.state = InputSnapshot{}
	s.mu.Unlock()
}

// Snapshot 读取当前输入
func (s *InputState) Snapshot() InputSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
