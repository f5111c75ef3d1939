package kinematics

// MapRange maps x linearly so that x1 goes to y1 and x2 goes to y2. It is typically used to
// turn a joint value into actuator units, e.g. degrees into servo ticks. Values outside
// [x1, x2] are extrapolated, not clamped.
func MapRange(x, x1, x2, y1, y2 float64) (float64, error) {
	if x1 == x2 {
		return 0, NewDegenerateRangeError(x1, x2)
	}
	m := (y2 - y1) / (x2 - x1)
	return m*(x-x1) + y1, nil
}
