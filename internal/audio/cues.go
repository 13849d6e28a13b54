package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
)

// Cue 游戏中的提示音
type Cue int

const (
	CueShoot Cue = iota
	CueExplosion
	CuePickup
	CueUserDamaged
	CueShieldOn
	CueShieldOff

	cueCount
)

// AllCues 返回所有提示音（预渲染用）
func AllCues() []Cue {
	cues := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		cues = append(cues, c)
	}
	return cues
}

// String 返回提示音名称
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueExplosion:
		return "explosion"
	case CuePickup:
		return "pickup"
	case CueUserDamaged:
		return "user-damaged"
	case CueShieldOn:
		return "shield-on"
	case CueShieldOff:
		return "shield-off"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

// NewCueStreamer 合成一个提示音
// 每次调用返回新的 Streamer，可以同时播放多个
func NewCueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueShoot:
		return newVolume(tone(660, 60*time.Millisecond, WaveSquare, 2*time.Millisecond, 40*time.Millisecond), 0.2)
	case CueExplosion:
		d := 350 * time.Millisecond
		return newVolume(beep.Take(SampleRate.N(d), beep.Mix(
			newVolume(tone(0, d, WaveNoise, 5*time.Millisecond, 300*time.Millisecond), 0.7),
			newVolume(tone(70, d, WaveSine, 5*time.Millisecond, 300*time.Millisecond), 0.5),
		)), 0.5)
	case CuePickup:
		return newVolume(beep.Seq(
			tone(660, 70*time.Millisecond, WaveSine, 5*time.Millisecond, 30*time.Millisecond),
			tone(990, 90*time.Millisecond, WaveSine, 5*time.Millisecond, 60*time.Millisecond),
		), 0.4)
	case CueUserDamaged:
		return newVolume(tone(110, 200*time.Millisecond, WaveSaw, 5*time.Millisecond, 120*time.Millisecond), 0.35)
	case CueShieldOn:
		return newVolume(beep.Seq(
			tone(440, 60*time.Millisecond, WaveSine, 5*time.Millisecond, 20*time.Millisecond),
			tone(880, 60*time.Millisecond, WaveSine, 5*time.Millisecond, 40*time.Millisecond),
		), 0.3)
	case CueShieldOff:
		return newVolume(beep.Seq(
			tone(880, 60*time.Millisecond, WaveSine, 5*time.Millisecond, 20*time.Millisecond),
			tone(440, 60*time.Millisecond, WaveSine, 5*time.Millisecond, 40*time.Millisecond),
		), 0.3)
	default:
		return beep.Silence(0)
	}
}
