package ecs

import (
	"reflect"
	"testing"
)

// 测试用组件
type testPosition struct {
	X, Y float64
}

type testHealth struct {
	HP int
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Errorf("CreateEntity returned duplicate IDs: %d", id1)
	}
	if id1 == 0 || id2 == 0 {
		t.Error("CreateEntity returned reserved ID 0")
	}
	if !em.Exists(id1) || !em.Exists(id2) {
		t.Error("created entities should exist")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	pos := &testPosition{X: 10, Y: 20}
	em.AddComponent(id, pos)

	comp, ok := em.GetComponent(id, reflect.TypeOf(&testPosition{}))
	if !ok {
		t.Fatal("GetComponent failed to find added component")
	}
	got := comp.(*testPosition)
	if got.X != 10 || got.Y != 20 {
		t.Errorf("expected (10, 20), got (%v, %v)", got.X, got.Y)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testHealth{HP: 5})

	hp, ok := GetComponent[*testHealth](em, id)
	if !ok {
		t.Fatal("GetComponent[*testHealth] failed")
	}
	if hp.HP != 5 {
		t.Errorf("expected HP 5, got %d", hp.HP)
	}

	_, ok = GetComponent[*testPosition](em, id)
	if ok {
		t.Error("GetComponent should fail for missing component type")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	em.AddComponent(both, &testPosition{})
	em.AddComponent(both, &testHealth{})

	posOnly := em.CreateEntity()
	em.AddComponent(posOnly, &testPosition{})

	entities := GetEntitiesWith2[*testPosition, *testHealth](em)
	if len(entities) != 1 {
		t.Fatalf("expected 1 entity with both components, got %d", len(entities))
	}
	if entities[0] != both {
		t.Errorf("expected entity %d, got %d", both, entities[0])
	}

	posEntities := GetEntitiesWith1[*testPosition](em)
	if len(posEntities) != 2 {
		t.Errorf("expected 2 entities with position, got %d", len(posEntities))
	}
}

// TestDeferredDestroy 验证延迟删除语义：
// DestroyEntity 之后实体在本 tick 内仍然可见，
// 只有 RemoveMarkedEntities 执行后才真正消失。
func TestDeferredDestroy(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testHealth{HP: 0})

	em.DestroyEntity(id)

	// 标记后、清理前，实体仍然存在且组件可查
	if !em.Exists(id) {
		t.Fatal("entity should still exist before RemoveMarkedEntities")
	}
	if _, ok := GetComponent[*testHealth](em, id); !ok {
		t.Error("component should still be queryable before cleanup")
	}

	em.RemoveMarkedEntities()

	if em.Exists(id) {
		t.Error("entity should be gone after RemoveMarkedEntities")
	}
	if _, ok := GetComponent[*testHealth](em, id); ok {
		t.Error("component should be gone after cleanup")
	}
}

func TestDestroyEntityTwice(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 同一实体重复标记不应引起问题
	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	if em.Exists(id) {
		t.Error("entity should be removed")
	}

	// 清理后再次调用也应安全
	em.RemoveMarkedEntities()
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPosition{})

	em.RemoveComponent(id, reflect.TypeOf(&testPosition{}))

	if em.HasComponent(id, reflect.TypeOf(&testPosition{})) {
		t.Error("component should be removed")
	}
	// 实体本身仍然存在
	if !em.Exists(id) {
		t.Error("entity should still exist after component removal")
	}
}
