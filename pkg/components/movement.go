package components

import "github.com/gonewx/aqua/pkg/utils"

// MovementComponent 存储实体的运动状态
// MovementSystem 每个 tick 按 v' = (v + a) * Drag 积分，之后更新位置
type MovementComponent struct {
	Velocity      utils.Vec2 // 当前速度（像素/tick）
	Acceleration  utils.Vec2 // 本 tick 的加速度，每 tick 由输入或 AI 重新写入
	Drag          float64    // 水体阻力系数，(0,1]，每 tick 无条件作用于速度
	FacingRight   bool       // 朝向，驱动贴图水平镜像
	ClampToBounds bool       // 是否被约束在场景边界内（角色是，弹体否）
	StopOnClamp   bool       // 撞到场景边界时是否将该轴速度清零（玩家清零，敌人保留）
}
