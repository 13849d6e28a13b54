package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// mockScene 记录调用情况的场景
type mockScene struct {
	updates   int
	drawn     bool
	updateErr error
	saved     bool
	saveOK    bool
}

func (m *mockScene) Update() error {
	m.updates++
	return m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawn = true
}

func (m *mockScene) SaveOnExit() bool {
	m.saved = true
	return m.saveOK
}

// TestSceneManager_Empty 没有活动场景时 Update/Draw 是空操作
func TestSceneManager_Empty(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("Expected no current scene initially")
	}
	if err := sm.Update(); err != nil {
		t.Errorf("Update() with no scene returned %v", err)
	}
	sm.Draw(nil)
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit() with no scene should succeed")
	}
}

// TestSceneManager_Delegation 更新与绘制委托给当前场景
func TestSceneManager_Delegation(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{updateErr: ebiten.Termination}
	sm.SwitchTo(scene)

	if err := sm.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() error = %v, want Termination", err)
	}
	sm.Draw(nil)

	if scene.updates != 1 || !scene.drawn {
		t.Errorf("Expected one update and a draw, got updates=%d drawn=%v", scene.updates, scene.drawn)
	}
}

// TestSceneManager_LoadLevel 工厂函数创建场景
func TestSceneManager_LoadLevel(t *testing.T) {
	tests := []struct {
		name       string
		factory    SceneFactory
		wantErr    bool
		wantSwitch bool
	}{
		{
			name:    "未设置工厂",
			wantErr: true,
		},
		{
			name: "创建成功",
			factory: func(levelID string) (Scene, error) {
				return &mockScene{}, nil
			},
			wantSwitch: true,
		},
		{
			name: "创建失败保持原场景",
			factory: func(levelID string) (Scene, error) {
				return nil, errors.New("unknown level")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			original := &mockScene{}
			sm.SwitchTo(original)
			if tt.factory != nil {
				sm.SetSceneFactory(tt.factory)
			}

			err := sm.LoadLevel("level-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			switched := sm.GetCurrentScene() != Scene(original)
			if switched != tt.wantSwitch {
				t.Errorf("switched = %v, want %v", switched, tt.wantSwitch)
			}
		})
	}
}

// TestSceneManager_SaveOnExit 退出时调用当前场景的保存
func TestSceneManager_SaveOnExit(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{saveOK: false}
	sm.SwitchTo(scene)

	if sm.SaveOnExit() {
		t.Error("Expected SaveOnExit() to report failure")
	}
	if !scene.saved {
		t.Error("scene SaveOnExit was not called")
	}
}
