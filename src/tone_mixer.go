package wwv

/*
Tone mixer (C5).

Buffer-relative, millisecond-addressed primitives for building one
minute of audio: overlay (overwrite) a tone, add a tone with clipping,
silence a range, and splice in PCM from a file or a speech synthesizer.

Tone generation uses a complex phasor advanced by e^(i*2*pi*f/Fs) per
sample, exactly as ka9q-radio's wwvsim.c does (csincos/overlay_tone/
add_tone) rather than the teacher's integer phase-accumulator + sine-table
DDS (gen_tone.go) — the phasor recurrence is what spec.md §4.4 describes
verbatim, and it makes the "starts at a zero crossing, so buffers can be
emitted back to back with no carried phase state" property (spec.md §9)
fall out for free: each call starts a fresh phasor at 1+0i.

The zero-crossing precondition (start_ms * freq_hz divisible by 1000) is
checked, not merely commented, since a violation here would silently
produce an audible click rather than a wrong-but-safe result.
*/

import (
	"fmt"
	"math"
	"math/cmplx"
)

const sampleMax = 32767

// samplesPerMs returns sample_rate/1000, the unit spec.md §3 defines
// millisecond addressing in terms of. Callers are expected to have
// already validated sampleRate%1000==0 (Config.Validate does this).
func samplesPerMs(sampleRate int) int {
	return sampleRate / 1000
}

func phasorStep(freqHz float64, sampleRate int) complex128 {
	theta := 2 * math.Pi * freqHz / float64(sampleRate)
	return cmplx.Exp(complex(0, theta))
}

func checkZeroCrossing(startMs int, freqHz float64) error {
	if (startMs*int(freqHz))%1000 != 0 {
		return fmt.Errorf("wwv: tone start %dms at %gHz is not a zero crossing", startMs, freqHz)
	}
	return nil
}

func checkRange(buf []int16, sampleRate, startMs, stopMs int) error {
	if startMs < 0 || stopMs <= startMs {
		return fmt.Errorf("wwv: invalid range [%d,%d)ms", startMs, stopMs)
	}
	stopSample := stopMs * samplesPerMs(sampleRate)
	if stopSample > len(buf) {
		return fmt.Errorf("wwv: range [%d,%d)ms exceeds buffer of %d samples", startMs, stopMs, len(buf))
	}
	return nil
}

// OverlayTone overwrites buf's samples in [startMs, stopMs) with
// amp*sin(2*pi*freqHz*t)*32767. Used for ticks, minute/hour beeps, and any
// tone that must dominate whatever else occupies that range.
func OverlayTone(buf []int16, sampleRate, startMs, stopMs int, freqHz, amp float64) error {
	if err := checkRange(buf, sampleRate, startMs, stopMs); err != nil {
		return err
	}
	if err := checkZeroCrossing(startMs, freqHz); err != nil {
		return err
	}

	spms := samplesPerMs(sampleRate)
	out := buf[startMs*spms:]
	n := (stopMs - startMs) * spms

	phase := complex(1, 0)
	step := phasorStep(freqHz, sampleRate)
	for i := range n {
		out[i] = int16(imag(phase) * amp * sampleMax)
		phase *= step
	}
	return nil
}

// AddTone sums amp*sin(2*pi*freqHz*t)*32767 into buf's existing samples in
// [startMs, stopMs), clipping to the 16-bit range. Used for the 100 Hz
// subcarrier and the 500/600/440 Hz continuous tones, which must coexist
// with whatever ticks and beeps later overwrite part of the same range.
func AddTone(buf []int16, sampleRate, startMs, stopMs int, freqHz, amp float64) error {
	if err := checkRange(buf, sampleRate, startMs, stopMs); err != nil {
		return err
	}
	if err := checkZeroCrossing(startMs, freqHz); err != nil {
		return err
	}

	spms := samplesPerMs(sampleRate)
	out := buf[startMs*spms:]
	n := (stopMs - startMs) * spms

	phase := complex(1, 0)
	step := phasorStep(freqHz, sampleRate)
	for i := range n {
		sum := float64(out[i]) + imag(phase)*amp*sampleMax
		out[i] = clip16(sum)
		phase *= step
	}
	return nil
}

func clip16(v float64) int16 {
	switch {
	case v > sampleMax:
		return sampleMax
	case v < -sampleMax:
		return -sampleMax
	default:
		return int16(v)
	}
}

// OverlaySilence zeroes buf's samples in [startMs, stopMs). Used for the
// guard interval around each second tick and around the minute beep.
func OverlaySilence(buf []int16, sampleRate, startMs, stopMs int) error {
	if err := checkRange(buf, sampleRate, startMs, stopMs); err != nil {
		return err
	}
	spms := samplesPerMs(sampleRate)
	out := buf[startMs*spms:]
	n := (stopMs - startMs) * spms
	for i := range n {
		out[i] = 0
	}
	return nil
}

// InsertPCM splices 16-bit mono samples at sampleRate into buf at startMs,
// overwriting up to end-of-buffer or end-of-samples, whichever comes
// first. It returns the number of samples copied.
func InsertPCM(buf []int16, sampleRate, startMs int, samples []int16) int {
	spms := samplesPerMs(sampleRate)
	offset := startMs * spms
	if offset >= len(buf) {
		return 0
	}
	n := copy(buf[offset:], samples)
	return n
}
