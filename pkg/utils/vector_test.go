package utils

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -4}

	result := a.Add(b)

	if result.X != 4 || result.Y != -2 {
		t.Errorf("Add: expected (4, -2), got (%v, %v)", result.X, result.Y)
	}
	// 原向量不应被修改
	if a.X != 1 || a.Y != 2 {
		t.Error("Add modified the receiver")
	}
}

func TestVec2Sub(t *testing.T) {
	a := Vec2{X: 5, Y: 3}
	b := Vec2{X: 2, Y: 7}

	result := a.Sub(b)

	if result.X != 3 || result.Y != -4 {
		t.Errorf("Sub: expected (3, -4), got (%v, %v)", result.X, result.Y)
	}
}

func TestVec2Scale(t *testing.T) {
	v := Vec2{X: 2, Y: -3}

	result := v.Scale(2.5)

	if result.X != 5 || result.Y != -7.5 {
		t.Errorf("Scale: expected (5, -7.5), got (%v, %v)", result.X, result.Y)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{X: 3, Y: 4}

	if v.Length() != 5 {
		t.Errorf("Length: expected 5, got %v", v.Length())
	}

	zero := Vec2{}
	if zero.Length() != 0 {
		t.Errorf("Length of zero vector: expected 0, got %v", zero.Length())
	}
}

func TestVec2Normalize(t *testing.T) {
	t.Run("普通向量归一化", func(t *testing.T) {
		v := Vec2{X: 3, Y: 4}
		n := v.Normalize()

		if math.Abs(n.Length()-1.0) > 1e-9 {
			t.Errorf("Normalize: expected unit length, got %v", n.Length())
		}
		if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Y-0.8) > 1e-9 {
			t.Errorf("Normalize: expected (0.6, 0.8), got (%v, %v)", n.X, n.Y)
		}
	})

	t.Run("零向量归一化返回零向量", func(t *testing.T) {
		zero := Vec2{}
		n := zero.Normalize()

		if n.X != 0 || n.Y != 0 {
			t.Errorf("Normalize of zero vector: expected (0, 0), got (%v, %v)", n.X, n.Y)
		}
	})
}
