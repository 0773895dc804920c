package vmath

import "math"

// VecFromAngle returns the velocity for a heading in degrees at the given speed
// 0° points right, 90° points down (screen space, y grows downward)
func VecFromAngle(deg, speed float64) (vx, vy float64) {
	rad := DegToRad(deg)
	return math.Cos(rad) * speed, math.Sin(rad) * speed
}

// AngleTo returns the heading in degrees from (fromX, fromY) to (toX, toY)
func AngleTo(fromX, fromY, toX, toY float64) float64 {
	return RadToDeg(math.Atan2(toY-fromY, toX-fromX))
}

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Normalize returns the unit vector and original length, zero-safe
func Normalize(x, y float64) (nx, ny, length float64) {
	length = math.Hypot(x, y)
	if length == 0 {
		return 0, 0, 0
	}
	return x / length, y / length, length
}

// DirectionTo returns a velocity of the given speed aiming from one point at another
// ok is false when both points coincide and no direction exists
func DirectionTo(fromX, fromY, toX, toY, speed float64) (vx, vy float64, ok bool) {
	nx, ny, dist := Normalize(toX-fromX, toY-fromY)
	if dist == 0 {
		return 0, 0, false
	}
	return nx * speed, ny * speed, true
}
