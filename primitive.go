package lexicodec

// cmpString is the primitive total order over byte strings.
func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpFloat64 is the primitive total order over numbers. Callers are
// responsible for keeping NaN out of the value universe.
func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpBool is the primitive total order over booleans: false < true,
// because the encoded bodies are "false" and "true" and 'f' < 't'.
func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

// sign normalizes byte-comparison results to -1/0/1.
func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
