package ring

import "strconv"

// SweepAngle returns the arc length in degrees for progress out of total.
//
// The ratio uses integer division, truncating toward zero, so 1 out of 7
// sweeps 51 degrees. The result is not clamped: progress above total sweeps
// past 360 and negative progress sweeps backwards. A total of zero or less
// sweeps 0.
func SweepAngle(progress, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(360 * progress / total)
}

// Percent returns 100*progress/total truncated toward zero, or 0 when total is
// not positive.
func Percent(progress, total int) int {
	if total <= 0 {
		return 0
	}
	return 100 * progress / total
}

// PercentText returns the label drawn in the middle of the ring, e.g. "65%".
func PercentText(progress, total int) string {
	return strconv.Itoa(Percent(progress, total)) + "%"
}
