package game

import "github.com/gonewx/skybattle/pkg/ecs"

// Layer 渲染层提示（调试碰撞盒时区分前后）
type Layer int

const (
	// LayerBack 战机
	LayerBack Layer = iota
	// LayerFront 子弹与补给
	LayerFront
)

// LayerFor 返回集合对应的渲染层
func LayerFor(group ecs.Group) Layer {
	switch group {
	case ecs.GroupFriendly, ecs.GroupEnemy:
		return LayerBack
	default:
		return LayerFront
	}
}

// OutcomeKind 一帧更新的结果类型
type OutcomeKind int

const (
	// OutcomeContinue 关卡继续
	OutcomeContinue OutcomeKind = iota
	// OutcomeAdvance 进入下一关
	OutcomeAdvance
	// OutcomeWin 通关
	OutcomeWin
	// OutcomeLose 玩家被击落
	OutcomeLose
)

// String 返回结果名称
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "continue"
	case OutcomeAdvance:
		return "advance"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Outcome 关卡结果；Kind 为 OutcomeAdvance 时 NextLevel 为下一关ID
type Outcome struct {
	Kind      OutcomeKind
	NextLevel string
}

// Terminal 是否为终止结果
func (o Outcome) Terminal() bool {
	return o.Kind != OutcomeContinue
}

// Continue 关卡继续
func Continue() Outcome { return Outcome{Kind: OutcomeContinue} }

// AdvanceTo 进入指定关卡
func AdvanceTo(levelID string) Outcome { return Outcome{Kind: OutcomeAdvance, NextLevel: levelID} }

// Win 通关
func Win() Outcome { return Outcome{Kind: OutcomeWin} }

// Lose 失败
func Lose() Outcome { return Outcome{Kind: OutcomeLose} }

// Presenter 渲染与 HUD 回调
// 核心逻辑只通知“实体出现/消失”和数值变化，不关心如何绘制。
type Presenter interface {
	OnEntitySpawned(id ecs.EntityID, group ecs.Group, layer Layer)
	OnEntityRemoved(id ecs.EntityID)
	OnHealthChanged(current int)
	OnBossHealthChanged(bossID ecs.EntityID, current int)
	OnKillCountChanged(current, target int)
	// OnLevelComplete 每个关卡实例只调用一次
	OnLevelComplete(outcome Outcome)
}

// ExplosionListener Presenter 可选实现：在战机被移除前收到爆炸位置
type ExplosionListener interface {
	OnExplosionAt(x, y float64)
}

// AudioSink 音效触发（即发即忘）
type AudioSink interface {
	OnExplosion()
	OnShoot()
	OnPickup()
	OnUserDamaged()
	OnShieldToggle(active bool)
}

// NopPresenter 不做任何事的 Presenter
type NopPresenter struct{}

func (NopPresenter) OnEntitySpawned(ecs.EntityID, ecs.Group, Layer) {}
func (NopPresenter) OnEntityRemoved(ecs.EntityID)                   {}
func (NopPresenter) OnHealthChanged(int)                            {}
func (NopPresenter) OnBossHealthChanged(ecs.EntityID, int)          {}
func (NopPresenter) OnKillCountChanged(int, int)                    {}
func (NopPresenter) OnLevelComplete(Outcome)                        {}

// NopAudioSink 静音
type NopAudioSink struct{}

func (NopAudioSink) OnExplosion()        {}
func (NopAudioSink) OnShoot()            {}
func (NopAudioSink) OnPickup()           {}
func (NopAudioSink) OnUserDamaged()      {}
func (NopAudioSink) OnShieldToggle(bool) {}
