package game

import (
	"log"

	sfx "github.com/gonewx/skybattle/internal/audio"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 桌面端音效输出，实现 AudioSink
//
// 职责：
//   - 启动时把所有提示音合成为 PCM 并缓存
//   - 每次回调创建一个新的播放器，同一提示音可以重叠播放
//   - 统一的音量与静音开关
//
// context 为 nil 时（测试、无音频设备）所有播放都是空操作。
type AudioManager struct {
	context *audio.Context
	pcm     map[sfx.Cue][]byte
	volume  float64
	muted   bool
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: Ebitengine 音频上下文（采样率必须是 sfx.SampleRate），可为 nil
//   - volume: 音量 0.0 ~ 1.0
//   - muted: 是否静音
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, volume float64, muted bool) *AudioManager {
	am := &AudioManager{
		context: ctx,
		pcm:     make(map[sfx.Cue][]byte),
		muted:   muted,
	}
	am.SetVolume(volume)
	return am
}

// Preload 预先合成所有提示音，避免首次播放时卡顿
func (am *AudioManager) Preload() {
	if am.context == nil {
		return
	}
	for _, cue := range sfx.AllCues() {
		am.cuePCM(cue)
	}
	log.Printf("[AudioManager] Preloaded %d cues", len(am.pcm))
}

// Play 播放一个提示音
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) Play(cue sfx.Cue) bool {
	if am.context == nil || am.muted {
		return false
	}

	player := am.context.NewPlayerFromBytes(am.cuePCM(cue))
	player.SetVolume(am.volume)
	player.Play()
	return true
}

// SetVolume 设置音量，超出范围的值被限制到 0.0 ~ 1.0
func (am *AudioManager) SetVolume(volume float64) {
	switch {
	case volume < 0:
		volume = 0
	case volume > 1:
		volume = 1
	}
	am.volume = volume
}

// Volume 当前音量
func (am *AudioManager) Volume() float64 {
	return am.volume
}

// SetMuted 切换静音
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
	log.Printf("[AudioManager] Muted: %v", muted)
}

// Muted 是否静音
func (am *AudioManager) Muted() bool {
	return am.muted
}

func (am *AudioManager) cuePCM(cue sfx.Cue) []byte {
	if data, ok := am.pcm[cue]; ok {
		return data
	}
	data := sfx.CuePCM(cue)
	am.pcm[cue] = data
	return data
}

func (am *AudioManager) OnExplosion()   { am.Play(sfx.CueExplosion) }
func (am *AudioManager) OnShoot()       { am.Play(sfx.CueShoot) }
func (am *AudioManager) OnPickup()      { am.Play(sfx.CuePickup) }
func (am *AudioManager) OnUserDamaged() { am.Play(sfx.CueUserDamaged) }

// OnShieldToggle 护盾开启与关闭使用不同的提示音
func (am *AudioManager) OnShieldToggle(active bool) {
	if active {
		am.Play(sfx.CueShieldOn)
		return
	}
	am.Play(sfx.CueShieldOff)
}
