package obj

import (
	"testing"

	"github.com/milk9111/shadowmario/common"
	"github.com/stretchr/testify/assert"
)

func TestEntityCollides(t *testing.T) {
	cases := []struct {
		name    string
		a, b    Entity
		collide bool
	}{
		{"overlapping", Entity{X: 0, Y: 0, Radius: 30}, Entity{X: 40, Y: 0, Radius: 20}, true},
		{"touching", Entity{X: 0, Y: 0, Radius: 30}, Entity{X: 50, Y: 0, Radius: 20}, false},
		{"apart", Entity{X: 0, Y: 0, Radius: 30}, Entity{X: 30, Y: 40, Radius: 10}, false},
		{"diagonal_inside", Entity{X: 0, Y: 0, Radius: 30}, Entity{X: 30, Y: 39, Radius: 20}, true},
		{"zero_radius_same_point", Entity{X: 5, Y: 5}, Entity{X: 5, Y: 5}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.a.Radius+c.b.Radius, c.a.CollisionRange(&c.b))
			assert.Equal(t, c.collide, c.a.Collides(&c.b))
			assert.Equal(t, c.collide, c.b.Collides(&c.a))
		})
	}
}

func TestEntityMove(t *testing.T) {
	e := Entity{X: 10, Y: 10, SpeedX: 5, SpeedY: 3}

	e.MoveX(common.Left)
	assert.Equal(t, 5, e.X)
	e.MoveX(common.Right)
	assert.Equal(t, 10, e.X)

	e.MoveY(common.Up)
	assert.Equal(t, 7, e.Y)
	e.MoveYBy(common.Down, 1)
	assert.Equal(t, 8, e.Y)

	e.MoveXBy(common.Right, 6)
	assert.Equal(t, 16, e.X)
	assert.Equal(t, 5.0, e.Distance(&Entity{X: 19, Y: 12}))
}

func TestPlatformScrollStopsAtMaxX(t *testing.T) {
	p := &Platform{Entity: Entity{X: 2995, SpeedX: 5}, MaxX: 3000}

	p.Scroll(common.Right)
	assert.Equal(t, 3000, p.X)
	p.Scroll(common.Right)
	assert.Equal(t, 3000, p.X, "platform at max_x does not move")

	p.X = 2999
	p.Scroll(common.Left)
	assert.Equal(t, 2994, p.X)
}
