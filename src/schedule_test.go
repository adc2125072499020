package wwv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ScheduleTone_hourZeroSuppression(t *testing.T) {
	assert.Equal(t, 0, ScheduleTone(WWV, 0, 2), "WWV minute 2 is 440Hz, suppressed at hour 0")
	assert.Equal(t, 440, ScheduleTone(WWV, 1, 2), "unsuppressed at other hours")

	assert.Equal(t, 0, ScheduleTone(WWVH, 0, 1), "WWVH minute 1 is 440Hz, suppressed at hour 0")
	assert.Equal(t, 440, ScheduleTone(WWVH, 1, 1))
}

func Test_ScheduleTone_knownSilentMinutes(t *testing.T) {
	assert.Equal(t, 0, ScheduleTone(WWV, 5, 0))
	assert.Equal(t, 0, ScheduleTone(WWVH, 5, 0))
}
