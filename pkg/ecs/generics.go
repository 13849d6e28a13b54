package ecs

import "reflect"

// typeOf 返回泛型参数对应的 reflect.Type
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 类型安全地获取实体组件
//
// 用法:
//
//	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 类型安全地检查实体是否拥有组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有组件 T1 的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetGroupEntitiesWith1 查询集合内拥有组件 T1 的实体
func GetGroupEntitiesWith1[T1 any](em *EntityManager, group Group) []EntityID {
	return em.GetGroupEntitiesWith(group, typeOf[T1]())
}
