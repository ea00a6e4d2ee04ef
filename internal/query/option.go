package query

// Opt is a comparable optional value, usable as a map or group key where a
// pointer would compare by address.
type Opt[V comparable] struct {
	Value V
	Valid bool
}

// PtrKey converts an optional pointer into a comparable key.
func PtrKey[V comparable](p *V) Opt[V] {
	if p == nil {
		return Opt[V]{}
	}
	return Opt[V]{Value: *p, Valid: true}
}

// Ptr converts the key back into an optional pointer.
func (o Opt[V]) Ptr() *V {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
