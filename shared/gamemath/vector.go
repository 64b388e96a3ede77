package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

const epsilon = 1e-9

// Length returns the magnitude of v.
func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. It reports false for a zero
// vector, which has no direction.
func Normalize(v dmath.Vec2) (dmath.Vec2, bool) {
	l := Length(v)
	if l < epsilon {
		return dmath.Vec2{}, false
	}
	return dmath.Vec2{X: v.X / l, Y: v.Y / l}, true
}

// ClampLength caps the magnitude of v at max.
func ClampLength(v dmath.Vec2, max float64) dmath.Vec2 {
	l := Length(v)
	if l <= max || l < epsilon {
		return v
	}
	s := max / l
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// Scale multiplies v by s.
func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// Sub returns a - b.
func Sub(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Angle returns the unsigned angle between a and b in radians.
func Angle(a, b dmath.Vec2) float64 {
	la, lb := Length(a), Length(b)
	if la < epsilon || lb < epsilon {
		return 0
	}
	cos := (a.X*b.X + a.Y*b.Y) / (la * lb)
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// TurnToward blends the unit direction dir toward the unit direction target
// by t in [0, 1] and renormalizes. A zero dir snaps straight to target.
func TurnToward(dir, target dmath.Vec2, t float64) dmath.Vec2 {
	if t <= 0 {
		return dir
	}
	if Length(dir) < epsilon || t >= 1 {
		return target
	}
	blended := dmath.Vec2{
		X: dir.X + (target.X-dir.X)*t,
		Y: dir.Y + (target.Y-dir.Y)*t,
	}
	if n, ok := Normalize(blended); ok {
		return n
	}
	// Exactly opposite directions cancel out; rotate a quarter turn instead.
	return dmath.Vec2{X: -dir.Y, Y: dir.X}
}
