package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain 读完 Streamer，返回样本数与幅度峰值
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 256)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

// TestOscillator 各波形的样本数与幅度范围
func TestOscillator(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
		freq float64
	}{
		{"正弦", WaveSine, 440},
		{"方波", WaveSquare, 220},
		{"锯齿", WaveSaw, 110},
		{"噪声", WaveNoise, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(tt.freq, 100*time.Millisecond, tt.wave, SampleRate)
			n, peak := drain(osc)
			if want := SampleRate.N(100 * time.Millisecond); n != want {
				t.Errorf("Expected %d samples, got %d", want, n)
			}
			if peak > 1 {
				t.Errorf("sample out of range: peak %f", peak)
			}
			if osc.Err() != nil {
				t.Errorf("unexpected error: %v", osc.Err())
			}
		})
	}
}

// TestEnvelope 包络截断时长，起点为静音
func TestEnvelope(t *testing.T) {
	osc := NewOscillator(440, time.Second, WaveSquare, SampleRate)
	env := NewEnvelope(osc, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, SampleRate)

	first := make([][2]float64, 1)
	env.Stream(first)
	if first[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", first[0][0])
	}

	n, _ := drain(env)
	if want := SampleRate.N(50*time.Millisecond) - 1; n != want {
		t.Errorf("Expected %d remaining samples, got %d", want, n)
	}
}

// TestCueStreamers 每个提示音都是有限长度且非静音
func TestCueStreamers(t *testing.T) {
	for _, c := range AllCues() {
		t.Run(c.String(), func(t *testing.T) {
			n, peak := drain(NewCueStreamer(c))
			if n == 0 {
				t.Fatal("cue produced no samples")
			}
			if n > SampleRate.N(time.Second) {
				t.Errorf("cue too long: %d samples", n)
			}
			if peak == 0 {
				t.Error("cue is silent")
			}
		})
	}
}

// TestCuePCM PCM 长度 = 样本数 × 2 声道 × 2 字节
func TestCuePCM(t *testing.T) {
	n, _ := drain(NewCueStreamer(CueShoot))
	pcm := CuePCM(CueShoot)
	if len(pcm) != n*4 {
		t.Errorf("PCM length = %d, want %d", len(pcm), n*4)
	}
}

// TestSpeakerSink_Muted 静音模式不打开音频设备，回调是空操作
func TestSpeakerSink_Muted(t *testing.T) {
	s := NewSpeakerSink(true)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() in muted mode failed: %v", err)
	}
	s.OnShoot()
	s.OnExplosion()
	s.OnShieldToggle(true)
	s.Close()
	if s.mixer.Len() != 0 {
		t.Errorf("muted sink should not queue sounds, got %d", s.mixer.Len())
	}
}

// TestSource 正弦波走 beep 发生器，超出奈奎斯特频率时退回振荡器
func TestSource(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		wave WaveType
	}{
		{"正弦发生器", 440, WaveSine},
		{"超出奈奎斯特", 30000, WaveSine},
		{"方波", 440, WaveSquare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(source(tt.freq, 20*time.Millisecond, tt.wave))
			if want := SampleRate.N(20 * time.Millisecond); n != want {
				t.Errorf("Expected %d samples, got %d", want, n)
			}
			if peak > 1 {
				t.Errorf("sample out of range: peak %f", peak)
			}
		})
	}
}
