package component

// Faction identifies who fired a projectile, which decides what it can hit.
type Faction int

const (
	FactionPlayer Faction = iota + 1
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	}
	return "none"
}

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventDamageApplied CombatEventType = "damage_applied"
	EventDeath         CombatEventType = "death"
	EventFireball      CombatEventType = "fireball"
)

// CombatEvent is emitted while a level resolves contact and projectiles.
type CombatEvent struct {
	Type     CombatEventType
	Attacker Faction
	Target   Faction
	Damage   float64
	Frame    int
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans combat events out to registered handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe registers h.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
