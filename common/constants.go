package common

const (
	// DefaultWidth and DefaultHeight are used when a config omits the window size
	// in contexts that do not validate it (level inspection, tests).
	DefaultWidth  = 1024
	DefaultHeight = 768

	// DeathFallSpeed is how many pixels a dead player or boss drops per frame.
	DeathFallSpeed = 2

	// BossSinkRadii is how many boss radii below the window the boss keeps sinking after death.
	BossSinkRadii = 5

	// DefaultScoreMultiplier is the baseline score multiplier.
	DefaultScoreMultiplier = 1
)

// Direction multipliers for the Move helpers.
const (
	Left  = -1
	Right = 1
	Up    = -1
	Down  = 1
)
