package pure_utils

// Map returns a new slice with the same length as src, but with values transformed by f.
// If src is nil, returns nil.
func Map[T, U any](src []T, f func(T) U) []U {
	if src == nil {
		return nil
	}
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}

// MapErr returns a new slice with the same length as src, but with values transformed by f.
// If f returns an error, the function stops and returns the error.
func MapErr[T, U any](src []T, f func(T) (U, error)) ([]U, error) {
	if src == nil {
		return nil, nil
	}
	us := make([]U, len(src))
	for i := range src {
		var err error
		us[i], err = f(src[i])
		if err != nil {
			return us, err
		}
	}
	return us, nil
}

// IndexBy indexes src by the key returned by f. Later entries with the same
// key overwrite earlier ones.
func IndexBy[T any, K comparable](src []T, f func(T) K) map[K]T {
	result := make(map[K]T, len(src))
	for _, item := range src {
		result[f(item)] = item
	}
	return result
}
