package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerSink 通过系统扬声器播放提示音（终端版使用）
//
// 所有提示音加入同一个 Mixer；Mixer 在初始化时交给 speaker 持续播放。
// 初始化失败（例如没有音频设备）时退化为静音，游戏照常进行。
type SpeakerSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSpeakerSink 创建扬声器输出
func NewSpeakerSink(muted bool) *SpeakerSink {
	return &SpeakerSink{
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Init 初始化扬声器；静音模式下不会打开音频设备
func (s *SpeakerSink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized || s.muted {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	log.Printf("[SpeakerSink] Speaker initialized at %d Hz", int(SampleRate))
	return nil
}

// Close 停止所有声音
func (s *SpeakerSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	s.initialized = false
}

// Play 播放一个提示音
func (s *SpeakerSink) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.muted {
		return
	}
	// speaker 在自己的 goroutine 中读取 mixer，修改需要加锁
	speaker.Lock()
	s.mixer.Add(NewCueStreamer(c))
	speaker.Unlock()
}

func (s *SpeakerSink) OnExplosion()   { s.Play(CueExplosion) }
func (s *SpeakerSink) OnShoot()       { s.Play(CueShoot) }
func (s *SpeakerSink) OnPickup()      { s.Play(CuePickup) }
func (s *SpeakerSink) OnUserDamaged() { s.Play(CueUserDamaged) }

func (s *SpeakerSink) OnShieldToggle(active bool) {
	if active {
		s.Play(CueShieldOn)
		return
	}
	s.Play(CueShieldOff)
}
