package engine

import "github.com/lixenwraith/bell-fighter/vmath"

// Body is the shape and liveness shared by every simulated object
// Liveness is the only destruction signal: a body marked dead is reaped at the end of the step
type Body struct {
	X, Y  float64
	R     float64
	Alive bool
}

func newBody(x, y, r float64) Body {
	return Body{X: x, Y: y, R: r, Alive: true}
}

// IsAlive reports the liveness flag
func (b *Body) IsAlive() bool {
	return b.Alive
}

// Kill marks the body for removal at the end of the step
func (b *Body) Kill() {
	b.Alive = false
}

// Overlaps is the circle-circle hit test used by every collision pair
func (b *Body) Overlaps(o *Body) bool {
	return vmath.CircleHit(b.X, b.Y, b.R, o.X, o.Y, o.R)
}

// outside reports whether the body is beyond the playfield by more than margin on any edge
func (b *Body) outside(margin float64) bool {
	return b.Y < -margin || b.Y > playfieldH+margin || b.X < -margin || b.X > playfieldW+margin
}

type living interface {
	IsAlive() bool
}

// reap compacts a collection in place, dropping dead entries and clearing the tail
func reap[E living](s []E) []E {
	n := 0
	for _, e := range s {
		if e.IsAlive() {
			s[n] = e
			n++
		}
	}
	clear(s[n:])
	return s[:n]
}

// empty truncates a collection, dropping references held by the backing array
func empty[E any](s []E) []E {
	clear(s)
	return s[:0]
}
