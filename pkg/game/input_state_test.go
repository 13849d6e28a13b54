package game

import (
	"sync"
	"testing"
)

// TestInputState_Normalize 方向分量被规整到 -1/0/1
func TestInputState_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   InputSnapshot
	}{
		{"静止", 0, 0, InputSnapshot{}},
		{"右下", 5, 3, InputSnapshot{MoveX: 1, MoveY: 1}},
		{"左上", -2, -9, InputSnapshot{MoveX: -1, MoveY: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInputState()
			s.SetMove(tt.dx, tt.dy)
			if got := s.Snapshot(); got != tt.want {
				t.Errorf("Snapshot() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestInputState_ConcurrentWrites 并发写入与读取（配合 -race 运行）
func TestInputState_ConcurrentWrites(t *testing.T) {
	s := NewInputState()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.SetMoveX(i%3 - 1)
				s.SetFire(j%2 == 0)
				_ = s.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	s.Reset()
	if got := s.Snapshot(); got != (InputSnapshot{}) {
		t.Errorf("Reset() left %+v", got)
	}
}

// TestChance 概率边界
func TestChance(t *testing.T) {
	rng := NewRandomSource(1)
	for i := 0; i < 100; i++ {
		if Chance(rng, 0) {
			t.Fatal("Chance(0) returned true")
		}
		if !Chance(rng, 1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}
