package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds a field of a merge-patch body. It tells apart a key that was
// not sent (Set == false), a key sent as JSON null (Set && Null) and a key
// sent with a value.
type Value[T any] struct {
	Set  bool
	Null bool
	V    T
}

// Of returns a present, non-null Value.
func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, V: v}
}

// Null returns a present Value carrying an explicit null.
func Null[T any]() Value[T] {
	return Value[T]{Set: true, Null: true}
}

// HasValue reports whether the key was sent with a non-null value.
func (o Value[T]) HasValue() bool {
	return o.Set && !o.Null
}

// Get returns the value and whether it is usable.
func (o Value[T]) Get() (T, bool) {
	return o.V, o.HasValue()
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// including when its value is null.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.V = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.V)
}

func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.V)
}
