// Package utils 提供通用工具函数和基础数学类型
package utils

import "math"

// Vec2 二维向量
// 用于表示位置、速度、加速度等，所有运算均为值语义、无副作用
type Vec2 struct {
	X float64
	Y float64
}

// Add 返回两个向量相加的结果
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub 返回两个向量相减的结果
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale 返回向量乘以标量的结果
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length 返回向量的长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize 返回单位向量
// 零向量归一化返回零向量，不会除零（追踪逻辑依赖此行为）
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}
