package casting

// FromCaster is the extension point for types outside the built-in table.
// A type U takes part by implementing CastFrom with a pointer receiver,
// overwriting the receiver with the value cast from v:
//
//	type Millis float64
//
//	func (m *Millis) CastFrom(s Seconds) { *m = Millis(s) * 1000 }
//
// Implement only this direction. The reciprocal is derived by [As]; a
// hand-written counterpart would just be a second path that can drift.
type FromCaster[T any] interface {
	CastFrom(T)
}

// FromCasterPtr constrains a pointer to U that implements [FromCaster] for
// source type T. It only exists so that [As] can allocate the target
// itself; there is no reason to use it directly.
type FromCasterPtr[U, T any] interface {
	*U
	FromCaster[T]
}

// As casts v into type U through U's CastFrom implementation. It is the
// derived half of the [FromCaster] pair: the target type is named once at
// the call site and the conversion itself lives in exactly one place.
//
//	m := casting.As[Millis](Seconds(1.5))
func As[U, T any, PU FromCasterPtr[U, T]](v T) U {
	var u U
	PU(&u).CastFrom(v)

	return u
}
