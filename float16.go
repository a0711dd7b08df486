//go:build floatext

package casting

import "go.dw1.io/casting/internal/f16"

// Float16 is an IEEE-754 binary16 value, held as its bit pattern.
//
// Go has no native 16-bit float, so the kind cannot join [Numeric]; it
// joins the conversion table through [FromFloat16] and [Float16From]
// instead, available under the "floatext" build tag.
type Float16 uint16

// Float32 returns the exact float32 value of h. Every binary16 value is
// representable in float32, so this direction never loses information.
func (h Float16) Float32() float32 {
	return f16.Unpack(uint16(h))
}

// Bits returns the raw binary16 bit pattern of h.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// FromFloat16 casts h to any kind in the built-in table. The value widens
// exactly to float32 first, so float targets round (or widen) natively and
// integer targets truncate and saturate like any other float source;
// infinities clamp to the target's bounds and NaN becomes 0.
func FromFloat16[To Numeric](h Float16) To {
	return From[To](h.Float32())
}

// Float16From casts v to a Float16, rounding to the nearest binary16
// value, ties to even. Values beyond ±65504 become infinities. The
// conversion narrows through float32, so a value that rounds in that step
// may carry the intermediate rounding into the result.
func Float16From[F Numeric](v F) Float16 {
	return Float16(f16.Pack(From[float32](v)))
}
