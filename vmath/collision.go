package vmath

// CircleHit reports whether two circles overlap or touch
// Compares squared distance against squared radius sum, no sqrt
func CircleHit(ax, ay, ar, bx, by, br float64) bool {
	dx := ax - bx
	dy := ay - by
	r := ar + br
	return dx*dx+dy*dy <= r*r
}
