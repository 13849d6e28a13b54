package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数
// 按关卡ID创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(levelID string) (Scene, error)

// SceneManager 管理当前活动场景，同一时间只有一个场景被更新和绘制
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager 创建场景管理器；初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadLevel 通过工厂函数创建关卡场景并切换过去
// 创建失败时保持当前场景不变
func (sm *SceneManager) LoadLevel(levelID string) error {
	log.Printf("[SceneManager] Loading level: %s", levelID)

	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}
	scene, err := sm.sceneFactory(levelID)
	if err != nil {
		return fmt.Errorf("failed to create scene for level %s: %w", levelID, err)
	}
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] Switched to level: %s", levelID)
	return nil
}

// SaveOnExit 如果当前场景支持，保存其状态
func (sm *SceneManager) SaveOnExit() bool {
	if saveable, ok := sm.currentScene.(Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
}

// Update 更新当前场景；没有活动场景时什么也不做
func (sm *SceneManager) Update() error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update()
}

// Draw 绘制当前场景；没有活动场景时什么也不做
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
