package casting

// Char is a single Unicode code point.
//
// It is a defined type rather than an alias so that it stays out of the
// generic conversion table: [Numeric] names predeclared types only. Its
// conversions are restricted to [FromChar] and [CharFromByte].
type Char rune

// FromChar casts c to any integer kind, yielding its code point. Narrow
// targets keep the low bits, like any other integer narrowing.
func FromChar[To Integer](c Char) To {
	return To(c)
}

// CharFromByte casts b to a Char with the same code point.
//
// A byte is the only integer kind accepted: every value in [0, 255] is a
// valid code point, which no wider kind can guarantee.
func CharFromByte(b byte) Char {
	return Char(b)
}
