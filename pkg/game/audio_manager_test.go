package game

import (
	"testing"

	sfx "github.com/gonewx/skybattle/internal/audio"
)

// TestAudioManager_Volume 音量被限制在 0~1
func TestAudioManager_Volume(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"正常值", 0.5, 0.5},
		{"负数", -1, 0},
		{"超过上限", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := NewAudioManager(nil, tt.input, false)
			if am.Volume() != tt.want {
				t.Errorf("Volume() = %f, want %f", am.Volume(), tt.want)
			}
		})
	}
}

// TestAudioManager_NoContext 没有音频上下文时回调是空操作
func TestAudioManager_NoContext(t *testing.T) {
	var sink AudioSink = NewAudioManager(nil, 0.8, false)
	sink.OnShoot()
	sink.OnExplosion()
	sink.OnShieldToggle(true)

	am := sink.(*AudioManager)
	if am.Play(sfx.CuePickup) {
		t.Error("Play() should fail without an audio context")
	}
	am.Preload()
	if len(am.pcm) != 0 {
		t.Errorf("nothing should be synthesized without a context, got %d", len(am.pcm))
	}
}

// TestAudioManager_Mute 静音开关
func TestAudioManager_Mute(t *testing.T) {
	am := NewAudioManager(nil, 0.8, true)
	if !am.Muted() {
		t.Fatal("Expected muted")
	}
	am.SetMuted(false)
	if am.Muted() {
		t.Error("Expected unmuted")
	}
}
