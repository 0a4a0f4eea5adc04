package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒以实体位置为中心对齐，用于 AABB 碰撞检测和场景边界约束
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒相对于实体位置的X偏移量（像素）
	OffsetY float64 // 碰撞盒相对于实体位置的Y偏移量（像素）
}
