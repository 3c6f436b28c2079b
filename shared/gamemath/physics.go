package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Accelerate moves speed toward target by at most step.
func Accelerate(speed, target, step float64) float64 {
	if speed < target {
		speed += step
		if speed > target {
			return target
		}
		return speed
	}
	if speed > target {
		speed -= step
		if speed < target {
			return target
		}
	}
	return speed
}

// Sign returns 1 for right and -1 for left.
func Sign(right bool) float64 {
	if right {
		return 1
	}
	return -1
}
