package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// keyHoldTimeout 终端只上报按下与自动重复，没有松开事件；
// 超过这个时间没有收到重复事件就视为已松开
const keyHoldTimeout = 150 * time.Millisecond

type action int

const (
	actionLeft action = iota
	actionRight
	actionUp
	actionDown
	actionFire
	actionCount
)

// keyState 记录每个持续动作最后一次按下的时间
type keyState struct {
	pressed [actionCount]time.Time
}

// press 根据按键事件更新状态，返回是否为持续动作
func (k *keyState) press(ev *tcell.EventKey, now time.Time) bool {
	a, ok := actionFor(ev)
	if !ok {
		return false
	}
	k.pressed[a] = now
	return true
}

func (k *keyState) held(a action, now time.Time) bool {
	t := k.pressed[a]
	return !t.IsZero() && now.Sub(t) < keyHoldTimeout
}

// axes 当前移动方向与开火状态
func (k *keyState) axes(now time.Time) (dx, dy int, fire bool) {
	if k.held(actionLeft, now) {
		dx--
	}
	if k.held(actionRight, now) {
		dx++
	}
	if k.held(actionUp, now) {
		dy--
	}
	if k.held(actionDown, now) {
		dy++
	}
	return dx, dy, k.held(actionFire, now)
}

func (k *keyState) reset() {
	k.pressed = [actionCount]time.Time{}
}

func actionFor(ev *tcell.EventKey) (action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionLeft, true
	case tcell.KeyRight:
		return actionRight, true
	case tcell.KeyUp:
		return actionUp, true
	case tcell.KeyDown:
		return actionDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return actionLeft, true
		case 'd', 'D':
			return actionRight, true
		case 'w', 'W':
			return actionUp, true
		case 's', 'S':
			return actionDown, true
		case ' ':
			return actionFire, true
		}
	}
	return 0, false
}
