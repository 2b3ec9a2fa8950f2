// Package wildcard matches keys against '*'-only glob patterns, mirroring
// the subset of redis MATCH syntax this library emits. In-process providers
// use it so scan semantics agree with the redis backend.
package wildcard

// Match reports whether s matches pattern. '*' matches any possibly empty
// substring; every other byte matches literally.
func Match(pattern, s string) bool {
	// classic iterative glob with single-star backtracking
	var pi, si int
	star, mark := -1, 0
	for si < len(s) {
		switch {
		case pi < len(pattern) && pattern[pi] == '*':
			star = pi
			mark = si
			pi++
		case pi < len(pattern) && pattern[pi] == s[si]:
			pi++
			si++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}
