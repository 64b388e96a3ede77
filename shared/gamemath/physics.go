package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// DecayVector shortens v by amount without flipping its direction.
func DecayVector(v dmath.Vec2, amount float64) dmath.Vec2 {
	l := Length(v)
	if l <= amount || l < epsilon {
		return dmath.Vec2{}
	}
	return Scale(v, (l-amount)/l)
}

// Clamp limits a value to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
