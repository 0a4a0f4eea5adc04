package components

// HealthComponent 存储实体的生命值信息
// 生命值始终满足 0 <= CurrentHealth <= MaxHealth，越界写入在边界处饱和
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// Damage 扣除生命值，下限为 0
func (h *HealthComponent) Damage(amount int) {
	h.CurrentHealth -= amount
	if h.CurrentHealth < 0 {
		h.CurrentHealth = 0
	}
}

// Heal 恢复生命值，上限为 MaxHealth
func (h *HealthComponent) Heal(amount int) {
	h.CurrentHealth += amount
	if h.CurrentHealth > h.MaxHealth {
		h.CurrentHealth = h.MaxHealth
	}
}

// IsDead 返回生命值是否已经耗尽
func (h *HealthComponent) IsDead() bool {
	return h.CurrentHealth <= 0
}
