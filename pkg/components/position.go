// Package components 定义挂在实体上的纯数据组件
//
// 组件本身不包含游戏逻辑（动画片段的播放控制是唯一例外），
// 逻辑由 pkg/systems 中的各系统驱动。
package components

// PositionComponent 存储实体在场景中的位置
// 坐标为实体的中心点（亚像素精度），碰撞盒和渲染位置均由此推导
type PositionComponent struct {
	X float64
	Y float64
}
