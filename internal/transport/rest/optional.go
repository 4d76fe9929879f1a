package rest

import (
	"bytes"
	"encoding/json"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// optional is a PATCH body field that tells an absent key apart from an
// explicit null.
type optional[T any] struct {
	set   bool
	null  bool
	value T
}

func (o *optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.null = true
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

func (o optional[T]) field() domain.Field[T] {
	return domain.Field[T]{Set: o.set, Null: o.null, Value: o.value}
}

// mapOptional converts the value of a present, non-null field.
func mapOptional[T, U any](o optional[T], fn func(T) U) domain.Field[U] {
	f := domain.Field[U]{Set: o.set, Null: o.null}
	if o.set && !o.null {
		f.Value = fn(o.value)
	}
	return f
}
