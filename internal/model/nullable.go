package model

// Nullable is a patch slot for a column that may hold NULL. The zero value
// means "leave unchanged"; Null clears the column; Value sets it.
type Nullable[T any] struct {
	set   bool
	valid bool
	value T
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{set: true}
}

func Value[T any](v T) Nullable[T] {
	return Nullable[T]{set: true, valid: true, value: v}
}

// FromPtr maps nil to Null and anything else to Value.
func FromPtr[T any](p *T) Nullable[T] {
	if p == nil {
		return Null[T]()
	}
	return Value(*p)
}

func (n Nullable[T]) IsSet() bool {
	return n.set
}

func (n Nullable[T]) IsNull() bool {
	return n.set && !n.valid
}

func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.valid
}

// Ptr returns nil for an explicit null or an unset slot.
func (n Nullable[T]) Ptr() *T {
	if !n.valid {
		return nil
	}
	v := n.value
	return &v
}
