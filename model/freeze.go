package model

// Unmodifiable returns a frozen deep copy of obj. Every mutator on the copy,
// or on anything reachable from it, panics with an errors.ErrCodeReadOnly
// error and leaves the copy unchanged. obj itself stays modifiable.
func Unmodifiable[T Object](obj T) T {
	c := DeepCopy(obj)
	if isNil(c) {
		return c
	}
	Walk(c, func(_ string, o Object) bool {
		o.Properties().Freeze()
		return true
	})
	return c
}

// IsUnmodifiable reports whether obj has been frozen.
func IsUnmodifiable(obj Object) bool {
	return !isNil(obj) && obj.Properties().Frozen()
}
