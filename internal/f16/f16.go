// Package f16 converts between IEEE-754 binary16 bit patterns and float32.
//
// binary16 layout: 1 sign bit, 5 exponent bits (bias 15), 10 fraction bits.
// Pack rounds to nearest, ties to even; Unpack is exact, since every
// binary16 value is representable in float32.
package f16

import "math"

const (
	signMask uint16 = 0x8000
	expMask  uint16 = 0x7C00
	fracMask uint16 = 0x03FF

	expBias   = 15
	fracWidth = 10

	f32SignMask uint32 = 0x8000_0000
	f32ExpMask  uint32 = 0x7F80_0000
	f32FracMask uint32 = 0x007F_FFFF
)

// Unpack converts a binary16 bit pattern to float32.
func Unpack(b uint16) float32 {
	sign := uint32(b&signMask) << 16
	exp := int32(b&expMask) >> fracWidth
	frac := uint32(b & fracMask)

	switch exp {
	case 0x1F:
		if frac == 0 {
			return math.Float32frombits(sign | f32ExpMask)
		}

		return math.Float32frombits(sign | f32ExpMask | frac<<13)
	case 0:
		// Zero or subnormal. A subnormal half is frac * 2^-24, which is a
		// normal float32, so plain arithmetic reconstructs it exactly.
		v := float32(math.Ldexp(float64(frac), -24))
		if sign != 0 {
			v = -v
		}

		return v
	default:
		f32Exp := uint32(exp-expBias+127) << 23

		return math.Float32frombits(sign | f32Exp | frac<<13)
	}
}

// Pack converts a float32 to the nearest binary16 bit pattern, ties to
// even. Values beyond the binary16 range become infinities; values below
// the smallest subnormal become signed zero.
func Pack(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16((bits & f32SignMask) >> 16)
	exp := int32((bits & f32ExpMask) >> 23)
	frac := bits & f32FracMask

	if exp == 0xFF {
		if frac == 0 {
			return sign | expMask
		}
		// NaN: carry the top payload bits, force quiet, keep non-zero.
		payload := uint16(frac>>13) | 0x0200

		return sign | expMask | (payload & fracMask)
	}

	// float32 subnormals sit far below the binary16 subnormal range.
	if exp == 0 {
		return sign
	}

	e := exp - 127 + expBias
	switch {
	case e >= 0x1F:
		return sign | expMask
	case e < -10:
		return sign
	case e <= 0:
		// Subnormal target: make the implicit bit explicit, then shift the
		// 24-bit significand down to 10 bits, rounding half to even. A full
		// carry lands on the smallest normal encoding, which is exactly
		// sign|0x0400, so no overflow check is needed.
		mant := frac | 0x0080_0000
		shift := uint32(14 - e)
		m := mant >> shift
		rem := mant & (1<<shift - 1)
		half := uint32(1) << (shift - 1)
		if rem > half || (rem == half && m&1 == 1) {
			m++
		}

		return sign | uint16(m)
	}

	m := frac >> 13
	rem := frac & 0x1FFF
	if rem > 0x1000 || (rem == 0x1000 && m&1 == 1) {
		m++
		if m == 1<<fracWidth {
			m = 0
			e++
			if e >= 0x1F {
				return sign | expMask
			}
		}
	}

	return sign | uint16(e)<<fracWidth | uint16(m)
}
