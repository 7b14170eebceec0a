package utils

// WholeMinutes converts accumulated voice seconds to whole minutes,
// flooring the remainder (125 seconds is 2 minutes, not 2.08).
func WholeMinutes(seconds float64) int64 {
	return int64(seconds) / 60
}
