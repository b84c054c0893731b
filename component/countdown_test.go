package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdown(t *testing.T) {
	c := NewCountdown()
	assert.False(t, c.Active())
	assert.False(t, c.Tick(), "disarmed countdown never expires")

	c.Arm(3)
	assert.True(t, c.Active())
	assert.False(t, c.Tick())
	assert.False(t, c.Tick())
	assert.True(t, c.Tick(), "expires on the third tick")
	assert.False(t, c.Active())
	assert.False(t, c.Tick())
}

func TestCountdownRearm(t *testing.T) {
	c := NewCountdown()
	c.Arm(2)
	c.Tick()
	c.Arm(2)
	assert.False(t, c.Tick())
	assert.True(t, c.Tick())
}
