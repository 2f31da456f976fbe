package common

// IsEmpty reports whether s has no elements.
func IsEmpty[S ~[]E, E any](s S) bool { return len(s) == 0 }

// First returns s[0], or the zero value and false for an empty slice.
func First[S ~[]E, E any](s S) (first E, ok bool) {
	if len(s) > 0 {
		first, ok = s[0], true
	}

	return first, ok
}

// Map applies f to every element of s.
func Map[S ~[]E, E, R any](s S, f func(E) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = f(v)
	}

	return out
}
