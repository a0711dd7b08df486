// Package casting provides lossy numeric conversions with fixed semantics.
//
// [From] and [Into] mirror an infallible conversion pair, but with casting
// semantics: narrowing an integer keeps the low bits, swapping signedness at
// the same width reinterprets the bit pattern, and converting a float to an
// integer truncates toward zero and saturates at the target's bounds (NaN
// maps to 0). Every conversion is a total function; there is no error path
// and no runtime dispatch. Requesting a pair outside the supported set is a
// compile error, not a runtime one.
//
// The built-in set covers Go's numeric kinds exactly: it is closed over the
// predeclared types, so defined types do not satisfy [Numeric]. Custom types
// take part by implementing [FromCaster] and converting through [As].
//
// Two rows of the conversion table are deliberately asymmetric. [FromBool]
// casts a bool to any integer kind, but nothing converts back: a non-zero
// integer is not a truth value here. [Char] casts to any integer kind via
// [FromChar], but is only constructible from a byte via [CharFromByte],
// since wider integers could carry invalid code points.
//
// IEEE-754 binary16 support ([Float16]) is gated behind the "floatext"
// build tag; the type is not universally useful and costs a software codec
// on every conversion.
package casting
