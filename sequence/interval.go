package sequence

// interval represents a half-open interval of positions [start, end).
type interval struct {
	start int
	end   int
}

// empty reports whether the interval holds no position.
func (x interval) empty() bool {
	return x.end <= x.start
}

// intersect returns the intersection with the half-open interval y. If no
// intersection is found, the second value returned by the method
// is false.
func (x interval) intersect(y interval) (interval, bool) {
	r := interval{start: max(x.start, y.start), end: min(x.end, y.end)}
	if r.empty() {
		return interval{}, false
	}
	return r, true
}

// resolve maps a possibly negative position onto a sequence of length n.
// Negative values count from the end, -1 being the last element. The result
// is not clamped.
func resolve(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}
