package model

// require dereferences an optional wire field or fails with kind.
func require[T any](value *T, kind ErrorKind) (T, error) {
	if value == nil {
		var zero T
		return zero, kind
	}
	return *value, nil
}
