package ecs

import "testing"

// ========== 测试组件定义 ==========

type benchmarkComp1 struct {
	Value1 int
	Value2 float64
}

type benchmarkComp2 struct {
	X, Y  float64
	Angle float64
}

// setupBenchmarkEntities 创建指定数量的实体，均匀分布到各集合
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	groups := Groups()

	for i := 0; i < count; i++ {
		entity := em.CreateEntity(groups[i%len(groups)])
		em.AddComponent(entity, &benchmarkComp1{Value1: i, Value2: float64(i) * 1.5})
		if i%2 == 0 {
			em.AddComponent(entity, &benchmarkComp2{X: float64(i)})
		}
	}

	return em
}

func BenchmarkGetEntitiesWith1_500(b *testing.B) {
	em := setupBenchmarkEntities(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith1[*benchmarkComp2](em)
	}
}

func BenchmarkGetComponent(b *testing.B) {
	em := setupBenchmarkEntities(500)
	ids := em.Entities(GroupEnemy)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GetComponent[*benchmarkComp1](em, ids[i%len(ids)])
	}
}

func BenchmarkDestroyAndSweep(b *testing.B) {
	for i := 0; i < b.N; i++ {
		em := setupBenchmarkEntities(200)
		for _, id := range em.Entities(GroupUserProjectile) {
			em.DestroyEntity(id)
		}
		em.RemoveMarkedEntities()
	}
}
