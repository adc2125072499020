package wwv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_EncodeDecodeBCD_roundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.IntRange(0, 9).Draw(t, "v")
		var dest [4]int
		EncodeBCD(dest[:], v)
		assert.Equal(t, v, DecodeBCD(dest[:]))
	})
}

func Test_EncodeBCD_knownValues(t *testing.T) {
	var dest [4]int
	EncodeBCD(dest[:], 9)
	assert.Equal(t, [4]int{1, 0, 0, 1}, dest)

	EncodeBCD(dest[:], 0)
	assert.Equal(t, [4]int{0, 0, 0, 0}, dest)
}
