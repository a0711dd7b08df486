package casting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wrapped struct {
	v float32
}

type scaled float64

func (s *scaled) CastFrom(w wrapped) {
	*s = scaled(float64(w.v) * 1000.0)
}

type tinyID uint8

func (id *tinyID) CastFrom(v uint32) {
	*id = tinyID(v)
}

func TestAs(t *testing.T) {
	t.Run("scalesThroughCastFrom", func(t *testing.T) {
		got := As[scaled](wrapped{v: 5.5})
		require.Equal(t, scaled(5500.0), got)
	})

	t.Run("lossyCustomCast", func(t *testing.T) {
		assert.Equal(t, tinyID(0x2C), As[tinyID](uint32(300)))
		assert.Equal(t, tinyID(7), As[tinyID](uint32(7)))
	})

	t.Run("matchesDirectCastFrom", func(t *testing.T) {
		var want scaled
		want.CastFrom(wrapped{v: 5.5})

		assert.Equal(t, want, As[scaled](wrapped{v: 5.5}))
	})
}
