package domain

// Field is one slot of a partial update: absent (Set == false), explicitly
// cleared (Set && Null) or assigned (Set && !Null, holding Value).
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Value returns a Field assigned to v.
func Value[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a Field that clears the column.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// Ptr returns the assigned value as a pointer, or nil when cleared or absent.
func (f Field[T]) Ptr() *T {
	if !f.Set || f.Null {
		return nil
	}
	v := f.Value
	return &v
}
