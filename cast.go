package casting

import (
	"math"
	"math/bits"
)

// From casts v to type To.
//
// Integer-to-integer conversions keep the low bits on narrowing, sign- or
// zero-extend on widening, and reinterpret the bit pattern on a same-width
// signedness swap. Conversions involving a float round to the nearest
// representable value, except float-to-integer, which truncates toward zero
// and saturates: values beyond the target's range clamp to its min or max,
// and NaN becomes 0. From never fails.
func From[To, F Numeric](v F) To {
	if isFloatKind[F]() && !isFloatKind[To]() {
		return floatToInt[To](float64(v))
	}

	return To(v)
}

// Into casts v into type To. It mirrors [From] from the value's side of the
// call and always forwards to it; the two are interchangeable and produce
// bit-identical results for every supported pair.
func Into[To, F Numeric](v F) To {
	return From[To](v)
}

// isFloatKind reports whether the type argument T is a floating-point kind.
func isFloatKind[T Numeric]() bool {
	switch any(*new(T)).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// floatToInt converts f to the integer kind To with saturation. Go leaves
// out-of-range float-to-integer conversions implementation-defined, so the
// clamping is spelled out per target width here.
func floatToInt[To Numeric](f float64) To {
	switch any(*new(To)).(type) {
	case int8:
		return To(satSigned(f, 8))
	case int16:
		return To(satSigned(f, 16))
	case int32:
		return To(satSigned(f, 32))
	case int64:
		return To(satSigned(f, 64))
	case int:
		return To(satSigned(f, bits.UintSize))
	case uint8:
		return To(satUnsigned(f, 8))
	case uint16:
		return To(satUnsigned(f, 16))
	case uint32:
		return To(satUnsigned(f, 32))
	case uint64:
		return To(satUnsigned(f, 64))
	case uint:
		return To(satUnsigned(f, bits.UintSize))
	case uintptr:
		return To(satUnsigned(f, bits.UintSize))
	default:
		// Unreachable: every integer kind in Numeric is listed above.
		return To(f)
	}
}

// satSigned converts f to a signed integer of the given bit width,
// truncating toward zero and clamping to the width's range. NaN yields 0.
//
// Bounds are compared against exact powers of two: float64(MaxInt64) is
// 1<<63, not MaxInt64, so comparing against the constant max would admit
// the boundary value it must clamp. Note -hi-1 rounds back to -hi at width
// 64; the clamp then returns the same value the exact conversion would.
func satSigned(f float64, width uint) int64 {
	if math.IsNaN(f) {
		return 0
	}

	hi := math.Ldexp(1, int(width)-1)
	switch {
	case f >= hi:
		return int64(1)<<(width-1) - 1
	case f <= -hi-1:
		return -1 << (width - 1)
	default:
		return int64(f)
	}
}

// satUnsigned converts f to an unsigned integer of the given bit width,
// truncating toward zero and clamping to [0, 1<<width). NaN yields 0.
func satUnsigned(f float64, width uint) uint64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}

	if f >= math.Ldexp(1, int(width)) {
		return uint64(1)<<width - 1
	}

	return uint64(f)
}
