package testutil

import (
	"github.com/gonewx/skybattle/pkg/ecs"
	"github.com/gonewx/skybattle/pkg/game"
)

// RecordingPresenter 记录所有 Presenter 回调
type RecordingPresenter struct {
	Spawned       []ecs.EntityID
	Removed       []ecs.EntityID
	Explosions    int
	Health        []int
	BossHealth    map[ecs.EntityID]int
	Kills         []int
	KillTarget    int
	Completions   []game.Outcome
	SpawnedGroups map[ecs.EntityID]ecs.Group
}

// NewRecordingPresenter 创建记录器
func NewRecordingPresenter() *RecordingPresenter {
	return &RecordingPresenter{
		BossHealth:    make(map[ecs.EntityID]int),
		SpawnedGroups: make(map[ecs.EntityID]ecs.Group),
	}
}

func (p *RecordingPresenter) OnEntitySpawned(id ecs.EntityID, group ecs.Group, _ game.Layer) {
	p.Spawned = append(p.Spawned, id)
	p.SpawnedGroups[id] = group
}

func (p *RecordingPresenter) OnEntityRemoved(id ecs.EntityID) {
	p.Removed = append(p.Removed, id)
}

func (p *RecordingPresenter) OnHealthChanged(current int) {
	p.Health = append(p.Health, current)
}

func (p *RecordingPresenter) OnBossHealthChanged(bossID ecs.EntityID, current int) {
	p.BossHealth[bossID] = current
}

func (p *RecordingPresenter) OnKillCountChanged(current, target int) {
	p.Kills = append(p.Kills, current)
	p.KillTarget = target
}

func (p *RecordingPresenter) OnLevelComplete(outcome game.Outcome) {
	p.Completions = append(p.Completions, outcome)
}

func (p *RecordingPresenter) OnExplosionAt(x, y float64) {
	p.Explosions++
}

// LastHealth 最近一次 HUD 生命值，没有记录时返回 -1
func (p *RecordingPresenter) LastHealth() int {
	if len(p.Health) == 0 {
		return -1
	}
	return p.Health[len(p.Health)-1]
}

// LastKills 最近一次 HUD 击杀数，没有记录时返回 -1
func (p *RecordingPresenter) LastKills() int {
	if len(p.Kills) == 0 {
		return -1
	}
	return p.Kills[len(p.Kills)-1]
}

// RecordingAudio 统计音效触发次数
type RecordingAudio struct {
	Explosions   int
	Shots        int
	Pickups      int
	UserDamaged  int
	ShieldToggle []bool
}

func (a *RecordingAudio) OnExplosion()   { a.Explosions++ }
func (a *RecordingAudio) OnShoot()       { a.Shots++ }
func (a *RecordingAudio) OnPickup()      { a.Pickups++ }
func (a *RecordingAudio) OnUserDamaged() { a.UserDamaged++ }
func (a *RecordingAudio) OnShieldToggle(active bool) {
	a.ShieldToggle = append(a.ShieldToggle, active)
}
