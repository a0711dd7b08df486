package casting

// The constraints below are exact: they name the predeclared types only,
// with no ~ terms. The conversion table is a closed set, and admitting
// defined types would let restricted kinds such as [Char] back into the
// generic path. Defined types convert through [FromCaster] instead.

// Signed matches the predeclared signed integer types.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned matches the predeclared unsigned integer types.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Integer matches the predeclared integer types.
type Integer interface {
	Signed | Unsigned
}

// Float matches the predeclared floating-point types.
type Float interface {
	float32 | float64
}

// Numeric matches every type in the built-in conversion table.
type Numeric interface {
	Integer | Float
}
