package ecs

import (
	"fmt"
	"reflect"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// Group 实体所属的集合
// 每个实体在创建时确定所属集合，之后不会迁移
type Group int

const (
	// GroupFriendly 友方单位（玩家飞机）
	GroupFriendly Group = iota
	// GroupEnemy 敌方单位（敌机、Boss）
	GroupEnemy
	// GroupUserProjectile 玩家子弹
	GroupUserProjectile
	// GroupEnemyProjectile 敌方子弹
	GroupEnemyProjectile
	// GroupAmmo 弹药箱
	GroupAmmo
	// GroupHeart 生命补给
	GroupHeart

	// GroupCount 集合数量
	GroupCount
)

// String 返回集合名称（日志用）
func (g Group) String() string {
	switch g {
	case GroupFriendly:
		return "friendly"
	case GroupEnemy:
		return "enemy"
	case GroupUserProjectile:
		return "user-projectile"
	case GroupEnemyProjectile:
		return "enemy-projectile"
	case GroupAmmo:
		return "ammo"
	case GroupHeart:
		return "heart"
	default:
		return fmt.Sprintf("group(%d)", int(g))
	}
}

// Groups 按更新顺序返回所有集合
func Groups() []Group {
	return []Group{
		GroupFriendly,
		GroupEnemy,
		GroupUserProjectile,
		GroupEnemyProjectile,
		GroupAmmo,
		GroupHeart,
	}
}

// EntityManager 管理所有实体和组件
//
// 实体按集合分组保存，集合内保持插入顺序。
// 删除是延迟的：DestroyEntity 只做标记，RemoveMarkedEntities 统一清理，
// 这样碰撞检测过程中不会因为删除而跳过任何配对。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 每个集合内的实体ID（插入顺序）
	groups [GroupCount][]EntityID
	// 实体 -> 所属集合
	groupOf map[EntityID]Group
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	markedForDestroy  map[EntityID]bool
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	em := &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		groupOf:           make(map[EntityID]Group),
		entitiesToDestroy: make([]EntityID, 0),
		markedForDestroy:  make(map[EntityID]bool),
	}
	for g := range em.groups {
		em.groups[g] = make([]EntityID, 0)
	}
	return em
}

// CreateEntity 在指定集合中创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity(group Group) EntityID {
	if group < 0 || group >= GroupCount {
		panic(fmt.Sprintf("ecs: invalid group %d", int(group)))
	}
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	em.groups[group] = append(em.groups[group], id)
	em.groupOf[id] = group
	return id
}

// Exists 检查实体是否仍在管理器中（未被清理）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// GroupOf 返回实体所属集合
func (em *EntityManager) GroupOf(id EntityID) (Group, bool) {
	g, ok := em.groupOf[id]
	return g, ok
}

// Entities 返回集合内实体ID的快照（插入顺序）
// 返回的是副本，遍历期间创建新实体不会影响本次遍历
func (em *EntityManager) Entities(group Group) []EntityID {
	src := em.groups[group]
	out := make([]EntityID, len(src))
	copy(out, src)
	return out
}

// Count 返回集合内的实体数量（包括已标记但尚未清理的实体）
func (em *EntityManager) Count(group Group) int {
	return len(em.groups[group])
}

// DestroyEntity 标记实体待删除(不立即删除)
// 重复标记同一实体是安全的
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.Exists(id) || em.markedForDestroy[id] {
		return
	}
	em.markedForDestroy[id] = true
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 返回本次清理的实体ID（按标记顺序），集合内剩余实体的相对顺序不变
func (em *EntityManager) RemoveMarkedEntities() []EntityID {
	if len(em.entitiesToDestroy) == 0 {
		return nil
	}

	removed := make([]EntityID, len(em.entitiesToDestroy))
	copy(removed, em.entitiesToDestroy)

	for g := range em.groups {
		kept := em.groups[g][:0]
		for _, id := range em.groups[g] {
			if !em.markedForDestroy[id] {
				kept = append(kept, id)
			}
		}
		em.groups[g] = kept
	}

	for _, id := range removed {
		delete(em.components, id)
		delete(em.groupOf, id)
		delete(em.markedForDestroy, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
	return removed
}

// Clear 丢弃所有实体（关卡销毁时调用）
func (em *EntityManager) Clear() {
	em.components = make(map[EntityID]map[reflect.Type]interface{})
	em.groupOf = make(map[EntityID]Group)
	em.markedForDestroy = make(map[EntityID]bool)
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
	for g := range em.groups {
		em.groups[g] = em.groups[g][:0]
	}
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 按集合顺序、集合内插入顺序返回
//
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, g := range Groups() {
		result = append(result, em.filterGroup(g, componentTypes...)...)
	}

	return result
}

// GetGroupEntitiesWith 查询指定集合中拥有组件组合的实体
func (em *EntityManager) GetGroupEntitiesWith(group Group, componentTypes ...reflect.Type) []EntityID {
	return em.filterGroup(group, componentTypes...)
}

func (em *EntityManager) filterGroup(group Group, componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for _, id := range em.groups[group] {
		compMap := em.components[id]
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	return result
}
