package ecs

import "reflect"

// GetComponent 泛型版本的组件获取，省去调用方的 reflect.TypeOf 和类型断言
// T 必须是组件的指针类型，如 *components.HealthComponent
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 泛型版本的组件存在性检查
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	var zero T
	return em.HasComponent(id, reflect.TypeOf(zero))
}

// GetEntitiesWith1 查询拥有单个指定组件类型的所有实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	var zero T
	return em.GetEntitiesWith(reflect.TypeOf(zero))
}

// GetEntitiesWith2 查询同时拥有两个指定组件类型的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var zero1 T1
	var zero2 T2
	return em.GetEntitiesWith(reflect.TypeOf(zero1), reflect.TypeOf(zero2))
}

// GetEntitiesWith3 查询同时拥有三个指定组件类型的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	var zero1 T1
	var zero2 T2
	var zero3 T3
	return em.GetEntitiesWith(reflect.TypeOf(zero1), reflect.TypeOf(zero2), reflect.TypeOf(zero3))
}
