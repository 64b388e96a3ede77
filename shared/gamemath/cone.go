package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// WithinCone reports whether target lies within radius of origin and within
// maxAngle radians either side of facing. A zero facing matches any
// direction, as does a target sitting on the origin.
func WithinCone(origin, facing, target dmath.Vec2, radius, maxAngle float64) bool {
	d := dmath.Vec2{X: target.X - origin.X, Y: target.Y - origin.Y}
	distSq := d.X*d.X + d.Y*d.Y
	if distSq > radius*radius {
		return false
	}
	if distSq < epsilon || Length(facing) < epsilon {
		return true
	}
	return Angle(facing, d) <= maxAngle
}
