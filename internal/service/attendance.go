package service

import "math"

const attendanceTotalClasses = 30

// stringHash is the 32-bit signed running hash the portal has always used to
// fabricate attendance: h = h*31 + codeUnit, wrapped to int32, absolute
// value. It must stay bit-compatible with previously displayed values.
func stringHash(s string) int64 {
	var h int32
	for _, r := range s {
		h = (h << 5) - h + int32(r)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// attendanceFor derives a stable (attended, percent) pair for a user/course
// combination. Attended falls in [20, 30] out of 30 classes.
func attendanceFor(username, code string) (attended, percent int) {
	seed := stringHash(username + code)
	attended = 20 + int(seed%11)
	percent = int(math.Round(float64(attended) / float64(attendanceTotalClasses) * 100))
	return attended, percent
}
