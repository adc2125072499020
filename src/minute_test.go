package wwv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func plainAssembler() Assembler {
	return Assembler{SampleRate: testSampleRate, NoVoice: true, NoCode: true}
}

func Test_AssembleMinute_bufferLength(t *testing.T) {
	a := plainAssembler()
	for _, seconds := range []int{59, 60, 61} {
		buf, err := a.AssembleMinute(MinuteSpec{Station: WWV, Seconds: seconds, Hour: 1, Minute: 1})
		assert.NoError(t, err)
		assert.Len(t, buf, seconds*testSampleRate)
	}
}

func Test_AssembleMinute_firstSampleIsZero(t *testing.T) {
	a := plainAssembler()
	buf, err := a.AssembleMinute(MinuteSpec{Station: WWV, Seconds: 60, Hour: 3, Minute: 5})
	assert.NoError(t, err)
	assert.Equal(t, int16(0), buf[0])
}

func Test_AssembleMinute_hourBeepFrequency(t *testing.T) {
	a := plainAssembler()

	hourBuf, err := a.AssembleMinute(MinuteSpec{Station: WWV, Seconds: 60, Hour: 5, Minute: 0})
	assert.NoError(t, err)
	assert.True(t, hasToneNear(hourBuf, testSampleRate, 0, 800, 1500),
		"minute==0 buffer should carry the 1500Hz hour beep")

	minuteBuf, err := a.AssembleMinute(MinuteSpec{Station: WWV, Seconds: 60, Hour: 5, Minute: 1})
	assert.NoError(t, err)
	assert.True(t, hasToneNear(minuteBuf, testSampleRate, 0, 800, 1000),
		"non-zero minute should carry the station tick frequency beep")
}

func Test_AssembleMinute_hourZeroSuppressesScheduledTone(t *testing.T) {
	a := Assembler{SampleRate: testSampleRate, NoVoice: true, NoCode: true}

	// WWV minute 2 is scheduled 440Hz; suppressed only at hour==0. Sample
	// at 1037ms is clear of every tick/guard window and not a whole
	// number of 440Hz cycles from the tone's 1000ms start, so it is a
	// reliable witness for "tone present vs. absent".
	const probeMs = 1037
	suppressed, err := a.AssembleMinute(MinuteSpec{Station: WWV, Seconds: 60, Hour: 0, Minute: 2})
	assert.NoError(t, err)
	assert.Equal(t, int16(0), suppressed[probeMs*samplesPerMs(testSampleRate)],
		"mid-second sample away from any tick/guard window should be silent when the schedule tone is suppressed")

	unsuppressed, err := a.AssembleMinute(MinuteSpec{Station: WWV, Seconds: 60, Hour: 1, Minute: 2})
	assert.NoError(t, err)
	assert.NotEqual(t, int16(0), unsuppressed[probeMs*samplesPerMs(testSampleRate)],
		"the same sample should carry the 440Hz schedule tone at a non-zero hour")
}

func Test_AssembleMinute_secondTicksPresent(t *testing.T) {
	a := plainAssembler()
	buf, err := a.AssembleMinute(MinuteSpec{Station: WWV, Seconds: 60, Hour: 2, Minute: 10})
	assert.NoError(t, err)

	spms := samplesPerMs(testSampleRate)
	for _, s := range []int{1, 2, 15, 45, 58} {
		base := s * 1000 * spms
		found := false
		for i := base; i < base+tickDurMs*spms; i++ {
			if buf[i] != 0 {
				found = true
				break
			}
		}
		assert.True(t, found, "expected a tick at second %d", s)
	}

	// second 29 is reserved and carries no tick.
	base := 29 * 1000 * spms
	for i := base - 10*spms; i < base+30*spms; i++ {
		assert.Equal(t, int16(0), buf[i], "second 29 should be silent")
	}
}

func Test_AssembleMinute_dut1DoubleTicksPositive(t *testing.T) {
	a := plainAssembler()
	buf, err := a.AssembleMinute(MinuteSpec{Station: WWV, Seconds: 60, Hour: 2, Minute: 10, Dut1: 3})
	assert.NoError(t, err)

	spms := samplesPerMs(testSampleRate)
	for _, s := range []int{1, 2, 3} {
		base := (s*1000 + 100) * spms
		found := false
		for i := base; i < base+tickDurMs*spms; i++ {
			if buf[i] != 0 {
				found = true
				break
			}
		}
		assert.True(t, found, "expected a double-tick at second %d +100ms", s)
	}

	base := (4*1000 + 100) * spms
	assert.Equal(t, int16(0), buf[base], "second 4 should have no double-tick for dut1=3")
}

func Test_AssembleMinute_dut1DoubleTicksNegative(t *testing.T) {
	a := plainAssembler()
	buf, err := a.AssembleMinute(MinuteSpec{Station: WWV, Seconds: 60, Hour: 2, Minute: 10, Dut1: -2})
	assert.NoError(t, err)

	spms := samplesPerMs(testSampleRate)
	for _, s := range []int{9, 10} {
		base := (s*1000 + 100) * spms
		found := false
		for i := base; i < base+tickDurMs*spms; i++ {
			if buf[i] != 0 {
				found = true
				break
			}
		}
		assert.True(t, found, "expected a negative-dut1 double-tick at second %d +100ms", s)
	}
}

func Test_AnnouncementText_singularAndPlural(t *testing.T) {
	assert.Equal(t, "At the tone, 1 hour 1 minute Coordinated Universal Time", AnnouncementText(1, 1))
	assert.Equal(t, "At the tone, 12 hours 34 minutes Coordinated Universal Time", AnnouncementText(12, 34))
}

// hasToneNear reports whether the buffer's [startMs,stopMs) window
// contains a nonzero sample consistent with an overlay at freqHz
// (coarse check: just that the window is non-silent, since asserting an
// exact sine value would overfit to one implementation's rounding).
func hasToneNear(buf []int16, sampleRate, startMs, stopMs int, freqHz float64) bool {
	spms := samplesPerMs(sampleRate)
	for i := startMs * spms; i < stopMs*spms; i++ {
		if buf[i] != 0 {
			return true
		}
	}
	return false
}
