package wwv

/*
Minute assembler (C6).

Composes one minute of audio from, in layering order: a scheduled tone or
announcement splice, the spoken minute announcement, the 100 Hz BCD
subcarrier, the minute/hour beep, the second ticks, and the DUT1
double-ticks — grounded on wwvsim.c's makeminute/gen_tone_or_announcement,
in the layering order it uses, with the teacher's xmit.go contributing the
general shape of "sequence several independent audio events into one
buffer, logging as you go" rather than any domain logic (xmit.go's domain
is APRS packet framing, not tone synthesis).

Each step is independently deterministic in (L, station, code, dut1, hour,
minute) per spec.md §4.5, which is what lets minute_test.go check fixed
sample positions for the presence or absence of signal.
*/

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	ampHighDB6  = 0.5012 // 10^(-6/20), the "-6 dB" level used for schedule tones and the subcarrier high level
	guardPreMs  = 10
	guardPostMs = 30
	tickDurMs   = 5
)

// Assembler holds the resources a minute build may need beyond the pure
// arithmetic of schedule.go/timecode.go/tone_mixer.go: the announcement
// library directory and an optional speech synthesizer. A nil Synth or a
// missing LibDir degrade to the scheduled tone, per spec.md §7's
// resource-error rule, never fatally.
type Assembler struct {
	SampleRate int
	LibDir     string
	Synth      Synthesizer
	NoVoice    bool
	NoCode     bool
}

// MinuteSpec is everything AssembleMinute needs about the minute it is
// building, independent of how the caller obtained it.
type MinuteSpec struct {
	Station     Station
	Seconds     int // L: 59, 60, or 61
	Hour        int
	Minute      int
	NextHour    int
	NextMinute  int
	Code        *Timecode // nil suppresses the subcarrier entirely
	Dut1        Dut1Tenths
}

// AssembleMinute builds one minute of audio per spec.md §4.5's seven
// steps, in order, each additive/overlay operation layering on the last.
func (a Assembler) AssembleMinute(spec MinuteSpec) ([]int16, error) {
	buf := make([]int16, spec.Seconds*a.SampleRate)

	if err := a.applyScheduleOrAnnouncement(buf, spec); err != nil {
		return nil, fmt.Errorf("wwv: schedule/announcement: %w", err)
	}

	if !a.NoVoice {
		if err := a.applyMinuteAnnouncement(buf, spec); err != nil {
			return nil, fmt.Errorf("wwv: minute announcement: %w", err)
		}
	}

	if !a.NoCode && spec.Code != nil {
		if err := applySubcarrier(buf, a.SampleRate, spec.Seconds, *spec.Code); err != nil {
			return nil, fmt.Errorf("wwv: subcarrier: %w", err)
		}
	}

	if err := applyMinuteBeep(buf, a.SampleRate, spec.Station, spec.Minute); err != nil {
		return nil, fmt.Errorf("wwv: minute beep: %w", err)
	}

	if err := applySecondTicks(buf, a.SampleRate, spec.Station, spec.Seconds); err != nil {
		return nil, fmt.Errorf("wwv: second ticks: %w", err)
	}

	if err := applyDut1DoubleTicks(buf, a.SampleRate, spec.Station, spec.Dut1); err != nil {
		return nil, fmt.Errorf("wwv: dut1 double ticks: %w", err)
	}

	return buf, nil
}

// applyScheduleOrAnnouncement implements step 2: an announcement file (raw
// PCM or synthesized text) takes priority over the schedule table's
// continuous tone.
func (a Assembler) applyScheduleOrAnnouncement(buf []int16, spec MinuteSpec) error {
	const startMs, stopMs = 1000, 45000

	if a.LibDir != "" {
		stationDir := "wwv"
		if spec.Station == WWVH {
			stationDir = "wwvh"
		}

		rawPath := filepath.Join(a.LibDir, stationDir, fmt.Sprintf("%d.raw", spec.Minute))
		if samples, err := LoadRawPCM(rawPath); err == nil {
			InsertPCM(buf, a.SampleRate, startMs, samples)
			return nil
		}

		textPath := filepath.Join(a.LibDir, stationDir, fmt.Sprintf("%d.txt", spec.Minute))
		if text, err := os.ReadFile(textPath); err == nil && a.Synth != nil {
			samples, err := a.Synth.Synthesize(string(text), spec.Station == WWVH)
			if err == nil {
				InsertPCM(buf, a.SampleRate, startMs, samples)
				return nil
			}
		}
	}

	tone := ScheduleTone(spec.Station, spec.Hour, spec.Minute)
	if tone == 0 {
		return nil
	}
	return AddTone(buf, a.SampleRate, startMs, stopMs, float64(tone), ampHighDB6)
}

// applyMinuteAnnouncement implements step 3.
func (a Assembler) applyMinuteAnnouncement(buf []int16, spec MinuteSpec) error {
	if a.Synth == nil {
		return nil
	}

	text := AnnouncementText(spec.NextHour, spec.NextMinute)
	spliceMs := 52500
	if spec.Station == WWVH {
		spliceMs = 45000
	}

	samples, err := a.Synth.Synthesize(text, spec.Station == WWVH)
	if err != nil {
		return nil // degrade silently; announcement is not load-bearing
	}
	InsertPCM(buf, a.SampleRate, spliceMs, samples)
	return nil
}

// AnnouncementText renders the spoken minute announcement, singularizing
// "hour"/"minute" for a value of 1, matching wwvsim.c's announce_text.
func AnnouncementText(hour, minute int) string {
	hourWord := "hours"
	if hour == 1 {
		hourWord = "hour"
	}
	minuteWord := "minutes"
	if minute == 1 {
		minuteWord = "minute"
	}
	return fmt.Sprintf("At the tone, %d %s %d %s Coordinated Universal Time", hour, hourWord, minute, minuteWord)
}

// applySubcarrier implements step 4: one 1000 ms cell per second s in
// [1, L), each cell a high segment at ampHighDB6 followed by a low segment
// at amplitude 0 ("fully off", per spec.md's open-question decision).
func applySubcarrier(buf []int16, sampleRate, seconds int, code Timecode) error {
	for s := 1; s < seconds && s < len(code); s++ {
		base := s * 1000
		var highMs int
		switch {
		case s%10 == 9:
			highMs = 800
		case code[s] != 0:
			highMs = 500
		default:
			highMs = 200
		}
		if err := AddTone(buf, sampleRate, base, base+highMs, 100, ampHighDB6); err != nil {
			return err
		}
		// low segment is amplitude 0: nothing is added, so it holds only
		// what the buffer already carries (a scheduled tone or splice) plus
		// any tick or beep that later overlays it.
	}
	return nil
}

// applyMinuteBeep implements step 5.
func applyMinuteBeep(buf []int16, sampleRate int, station Station, minute int) error {
	freq := station.TickFreq()
	if minute == 0 {
		freq = 1500
	}
	if err := OverlayTone(buf, sampleRate, 0, 800, freq, 1.0); err != nil {
		return err
	}
	return OverlaySilence(buf, sampleRate, 800, 1000)
}

// applySecondTicks implements step 6: every second except the 29th
// (reserved for WWV/WWVH voice cues in the original broadcast) and the
// tail seconds at/after 59 (minute-end marker territory).
func applySecondTicks(buf []int16, sampleRate int, station Station, seconds int) error {
	freq := station.TickFreq()
	for s := 1; s < seconds && s < 59; s++ {
		if s == 29 {
			continue
		}
		baseMs := s * 1000
		if err := OverlaySilence(buf, sampleRate, baseMs-guardPreMs, baseMs+guardPostMs); err != nil {
			return err
		}
		if err := OverlayTone(buf, sampleRate, baseMs, baseMs+tickDurMs, freq, 1.0); err != nil {
			return err
		}
	}
	return nil
}

// applyDut1DoubleTicks implements step 7: an extra 5 ms tick 100 ms after
// the second tick, on seconds 1..|dut1| (positive DUT1) or 9..(8+|dut1|)
// (negative DUT1). No guard silence brackets the double-tick.
func applyDut1DoubleTicks(buf []int16, sampleRate int, station Station, dut1 Dut1Tenths) error {
	mag := int(dut1)
	if mag == 0 {
		return nil
	}

	freq := station.TickFreq()
	var first, last int
	if mag > 0 {
		first, last = 1, mag
	} else {
		mag = -mag
		first, last = 9, 8+mag
	}

	for s := first; s <= last; s++ {
		baseMs := s*1000 + 100
		if err := OverlayTone(buf, sampleRate, baseMs, baseMs+tickDurMs, freq, 1.0); err != nil {
			return err
		}
	}
	return nil
}
