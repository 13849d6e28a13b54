package systems

import (
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/game"
)

// Hooks 系统对外的回调集合
// 零值字段会被替换为 Nop 实现
type Hooks struct {
	Presenter game.Presenter
	Audio     game.AudioSink
}

func (h Hooks) withDefaults() Hooks {
	if h.Presenter == nil {
		h.Presenter = game.NopPresenter{}
	}
	if h.Audio == nil {
		h.Audio = game.NopAudioSink{}
	}
	return h
}

// spawned 通知渲染层新实体出现
func (h Hooks) spawned(em *ecs.EntityManager, id ecs.EntityID) {
	group, ok := em.GroupOf(id)
	if !ok {
		return
	}
	h.Presenter.OnEntitySpawned(id, group, game.LayerFor(group))
}
