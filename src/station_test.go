package wwv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Station_TickFreq(t *testing.T) {
	assert.Equal(t, 1000.0, WWV.TickFreq())
	assert.Equal(t, 1200.0, WWVH.TickFreq())
}

func Test_Station_String(t *testing.T) {
	assert.Equal(t, "WWV", WWV.String())
	assert.Equal(t, "WWVH", WWVH.String())
}

func Test_LeapState_String(t *testing.T) {
	assert.Equal(t, "none", LeapNone.String())
	assert.Equal(t, "positive_pending", LeapPositivePending.String())
	assert.Equal(t, "negative_pending", LeapNegativePending.String())
}
