// Package audio 用 beep 程序化合成游戏音效
//
// 音效不依赖任何音频文件：每个提示音由振荡器 + 包络构成。
// 桌面端把合成结果编码为 PCM 交给 Ebitengine 播放，终端版直接通过 beep speaker 输出。
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate 所有音效统一使用的采样率（与 Ebitengine 音频上下文一致）
const SampleRate = beep.SampleRate(48000)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator 固定频率、固定时长的波形发生器
type oscillator struct {
	freq     float64
	phase    float64
	total    int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator 创建振荡器，播放 duration 后结束
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope 为 s 套上起音与释音；超过 duration 的部分被截断
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			gain = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume 线性音量转为 beep 的对数音量；0 表示静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone 带包络的单音
func tone(freq float64, d time.Duration, wave WaveType, attack, release time.Duration) beep.Streamer {
	return NewEnvelope(source(freq, d, wave), d, attack, release, SampleRate)
}

// source 正弦波使用 beep 自带的发生器，其余波形使用振荡器
func source(freq float64, d time.Duration, wave WaveType) beep.Streamer {
	if wave == WaveSine {
		sine, err := generators.SineTone(SampleRate, freq)
		if err == nil {
			return beep.Take(SampleRate.N(d), sine)
		}
	}
	return NewOscillator(freq, d, wave, SampleRate)
}
