package component

// Health is the shared health state for anything that can take damage.
// Current is clamped to [0, Max].
type Health struct {
	Max     float64
	Current float64
	// Shielded blocks all incoming damage while set.
	Shielded bool

	OnDamage func(h *Health, amount float64)
	OnDeath  func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max < 0 {
		max = 0
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether any health remains.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// ApplyDamage subtracts amount unless shielded. Returns true if damage was applied.
func (h *Health) ApplyDamage(amount float64) bool {
	if h == nil || h.Shielded || amount <= 0 {
		return false
	}
	wasAlive := h.Current > 0
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, amount)
	}
	if wasAlive && h.Current <= 0 && h.OnDeath != nil {
		h.OnDeath(h)
	}
	return true
}

// CurrentHP returns the current health value.
func (h *Health) CurrentHP() float64 {
	if h == nil {
		return 0
	}
	return h.Current
}
