package obj

// Key is a semantic game key, decoupled from the physical binding.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyFire
	KeyLevel1
	KeyLevel2
	KeyLevel3
	KeyRestart
	KeyPause
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyFire:
		return "fire"
	case KeyLevel1:
		return "level1"
	case KeyLevel2:
		return "level2"
	case KeyLevel3:
		return "level3"
	case KeyRestart:
		return "restart"
	case KeyPause:
		return "pause"
	case KeyQuit:
		return "quit"
	}
	return "unknown"
}

// Input answers keyboard queries for the current frame.
type Input interface {
	// IsDown reports whether k is held this frame.
	IsDown(k Key) bool
	// WasPressed reports whether k went down this frame.
	WasPressed(k Key) bool
}

// Keys is a snapshot of one frame's key state. The zero value is an empty
// snapshot; Hold and Press return the updated copy.
type Keys struct {
	Held    map[Key]bool
	Pressed map[Key]bool
}

// NewKeys returns an empty snapshot.
func NewKeys() Keys {
	return Keys{Held: make(map[Key]bool), Pressed: make(map[Key]bool)}
}

// Hold marks k as held.
func (k Keys) Hold(keys ...Key) Keys {
	k = k.init()
	for _, key := range keys {
		k.Held[key] = true
	}
	return k
}

// Press marks k as pressed this frame. A pressed key is also held.
func (k Keys) Press(keys ...Key) Keys {
	k = k.init()
	for _, key := range keys {
		k.Pressed[key] = true
		k.Held[key] = true
	}
	return k
}

func (k Keys) init() Keys {
	if k.Held == nil {
		k.Held = make(map[Key]bool)
	}
	if k.Pressed == nil {
		k.Pressed = make(map[Key]bool)
	}
	return k
}

func (k Keys) IsDown(key Key) bool {
	return k.Held[key]
}

func (k Keys) WasPressed(key Key) bool {
	return k.Pressed[key]
}
