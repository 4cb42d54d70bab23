// File: utils/utils.go
package utils

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FoldReflect maps an unbounded coordinate into [lo, hi] by mirror
// reflection at the interval edges, the way a ball folds back off the top
// and bottom walls. Values already inside the interval are returned as is.
func FoldReflect(v, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	for v < lo || v > hi {
		if v < lo {
			v = 2*lo - v
		} else {
			v = 2*hi - v
		}
	}
	return v
}
