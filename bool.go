package casting

// FromBool casts b to any integer kind: false is 0, true is 1.
//
// The conversion is one-way. No integer-to-bool counterpart exists, so
// "truthiness" of a non-zero value cannot be smuggled in through a cast.
func FromBool[To Integer](b bool) To {
	if b {
		return 1
	}

	return 0
}
