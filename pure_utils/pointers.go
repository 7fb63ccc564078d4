package pure_utils

func Ptr[T any](v T) *T {
	return &v
}

// PtrValue returns the value pointed to by p, or the zero value if p is nil.
func PtrValue[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
