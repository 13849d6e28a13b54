package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// EncodePCM 把有限长度的 Streamer 渲染为 16 位有符号小端立体声 PCM
// （Ebitengine audio.NewPlayerFromBytes 接受的格式）
func EncodePCM(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*SampleRate.N(500*time.Millisecond))

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// CuePCM 渲染一个提示音
func CuePCM(c Cue) []byte {
	return EncodePCM(NewCueStreamer(c))
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
