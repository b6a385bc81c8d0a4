package ecs

import (
	"testing"
)

// 测试组件类型定义
type testTransform struct {
	X, Y, Z float64
}

type testGlow struct {
	Opacity float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试ID从1开始且唯一
	if id1 != 1 || id2 != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", id1, id2)
	}
	if em.Count() != 2 {
		t.Errorf("expected 2 entities, got %d", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if !AddComponent(em, id, &testTransform{X: 45, Y: 55, Z: -80}) {
		t.Fatal("AddComponent should succeed for an existing entity")
	}

	tr, ok := GetComponent[*testTransform](em, id)
	if !ok {
		t.Fatal("component should be found")
	}
	if tr.X != 45 || tr.Y != 55 || tr.Z != -80 {
		t.Errorf("component data mismatch: %+v", tr)
	}

	// 返回的是同一个指针，修改可见
	tr.Y = 1
	again, _ := GetComponent[*testTransform](em, id)
	if again.Y != 1 {
		t.Error("GetComponent should return the stored pointer")
	}
}

func TestAddComponentMissingEntity(t *testing.T) {
	em := NewEntityManager()
	if AddComponent(em, 42, &testGlow{}) {
		t.Error("AddComponent on a missing entity should fail")
	}
	if _, ok := GetComponent[*testGlow](em, 42); ok {
		t.Error("missing entity should have no components")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testGlow](em, id) {
		t.Error("should not have component before adding")
	}
	AddComponent(em, id, &testGlow{Opacity: 0.3})
	if !HasComponent[*testGlow](em, id) {
		t.Error("should have component after adding")
	}
	RemoveComponent[*testGlow](em, id)
	if HasComponent[*testGlow](em, id) {
		t.Error("should not have component after removal")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	AddComponent(em, id1, &testTransform{})
	AddComponent(em, id2, &testTransform{})

	em.DestroyEntity(id1)

	// 清理前实体仍存在
	if !em.Exists(id1) {
		t.Error("entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id1) {
		t.Error("entity should be removed after cleanup")
	}
	if !em.Exists(id2) {
		t.Error("other entities must survive cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testTransform{})
	AddComponent(em, id1, &testGlow{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testTransform{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testGlow{})

	both := GetEntitiesWith2[*testTransform, *testGlow](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("expected [%d], got %v", id1, both)
	}

	transforms := GetEntitiesWith1[*testTransform](em)
	if len(transforms) != 2 || transforms[0] != id1 || transforms[1] != id2 {
		t.Errorf("expected sorted [%d %d], got %v", id1, id2, transforms)
	}
}
