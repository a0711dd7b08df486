package casting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromChar(t *testing.T) {
	t.Run("codePoint", func(t *testing.T) {
		assert.Equal(t, uint32(0x2318), FromChar[uint32]('⌘'))
		assert.Equal(t, int64(0x1F600), FromChar[int64]('😀'))
		assert.Equal(t, uint8(0x41), FromChar[uint8]('A'))
	})

	t.Run("narrowingKeepsLowBits", func(t *testing.T) {
		// 'é' is U+00E9 (233); reinterpreted as int8 that is -23.
		assert.Equal(t, int8(-23), FromChar[int8]('é'))
		assert.Equal(t, uint8(0x00), FromChar[uint8]('Ā')) // U+0100
	})
}

func TestCharFromByte(t *testing.T) {
	assert.Equal(t, Char('A'), CharFromByte(0x41))
	assert.Equal(t, Char('ÿ'), CharFromByte(0xFF))

	t.Run("roundTrip", func(t *testing.T) {
		for b := 0; b <= math.MaxUint8; b++ {
			assert.Equal(t, uint8(b), FromChar[uint8](CharFromByte(uint8(b))))
		}
	})
}
