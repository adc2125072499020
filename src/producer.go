package wwv

/*
Producer loop (C8).

Ticks a civil clock, builds one minute at a time, and enqueues it for the
output stage, handling the one piece of real-time delicacy in the whole
system: the first minute must be truncated so playback starts in phase
with the wall clock instead of at the top of whatever minute the process
happened to start in. Grounded on wwvsim.c's main loop and, for the
general "build work, push to a shared queue, poll for backpressure"
shape, the teacher's beacon.go scheduler.

The -v/--verbose trace (wwvsim.c:320-323, "if(Verbose){ print date; call
decode_timecode(); }") is reproduced here by logging the date line and a
Dump of the timecode each minute, at Debug level so NewLogger's level
selection is what actually gates it on/off.
*/

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
)

// Producer owns the civil clock and DUT1/leap state and feeds Queue.
type Producer struct {
	Station    Station
	SampleRate int
	Clock      CivilTime
	Dut1       Dut1Tenths
	Leap       LeapState
	Manual     bool // true when the start time was set explicitly (spec.md §6 -Y/-M/.../-s)
	NoTone     bool
	Verbose    bool // -v/--verbose: dump the per-minute timecode to stderr

	Assembler Assembler
	Queue     *Queue
	Logger    *log.Logger

	// Now returns the current wall clock; overridable in tests.
	Now func() time.Time
}

// minuteLength computes L per spec.md §4.7 step 1: a leap second only
// ever fires at 23:59 UTC of June or December.
func (p *Producer) minuteLength() int {
	if !p.Clock.IsEndOfLeapEligibleMonth() {
		return 60
	}
	switch p.Leap {
	case LeapPositivePending:
		return 61
	case LeapNegativePending:
		return 59
	default:
		return 60
	}
}

// Run builds and enqueues minutes forever, blocking for backpressure and
// for the startup alignment check. It returns only on a build error
// (none of which are expected in steady state — synthesis failures
// degrade in place per spec.md §7).
func (p *Producer) Run() error {
	startup := true

	for {
		length := p.minuteLength()

		code := BuildTimecode(p.Clock, p.Dut1, p.Leap != LeapNone)
		if p.Clock.Year < 2007 && p.Logger != nil {
			p.Logger.Warn("year predates 2007 DST rule; DST bits forced to 0", "year", p.Clock.Year)
		}

		if p.verboseDumpEnabled() {
			p.logTimecode(code, length)
		}

		nextHour, nextMinute := p.Clock.NextMinute()
		spec := MinuteSpec{
			Station:    p.Station,
			Seconds:    length,
			Hour:       p.Clock.Hour,
			Minute:     p.Clock.Minute,
			NextHour:   nextHour,
			NextMinute: nextMinute,
			Code:       &code,
			Dut1:       p.Dut1,
		}
		samples, err := p.Assembler.AssembleMinute(spec)
		if err != nil {
			return fmt.Errorf("wwv: assemble minute: %w", err)
		}
		if p.NoTone {
			silenceScheduleTone(samples, p.SampleRate)
		}

		startOffset := 0
		enqueue := true
		if startup {
			if p.Manual {
				startup = false
			} else {
				wall := CivilTimeFromWall(p.Now())
				if !wall.SameMinute(p.Clock) {
					if p.Logger != nil {
						p.Logger.Warn("startup drift: wall clock advanced past minute under construction",
							"built", fmt.Sprintf("%02d:%02d", p.Clock.Hour, p.Clock.Minute))
					}
					enqueue = false
				} else {
					now := p.Now().UTC()
					micros := now.Second()*1_000_000 + now.Nanosecond()/1000
					startOffset = micros * p.SampleRate / 1_000_000
					startup = false
				}
			}
		}

		if enqueue {
			p.Queue.Push(QueueEntry{Samples: samples, StartOffset: startOffset})
		}

		for p.Queue.Len() >= 2 {
			time.Sleep(30 * time.Second)
		}

		p.advance(length)
	}
}

// verboseDumpEnabled reports whether this minute's timecode should be
// traced to the logger: -v/--verbose was given, a logger is attached,
// and a code is actually being generated (wwvsim.c's dump sits inside
// its own "if(!NoTimeCode)" block, so -c/--no-code silences it too).
func (p *Producer) verboseDumpEnabled() bool {
	return p.Verbose && !p.Assembler.NoCode && p.Logger != nil
}

// logTimecode reproduces wwvsim.c:320-323's verbose trace: a date/time
// line formatted the way the teacher's tq.go/xmit.go format their own
// timestamp prefixes (strftime.Format against the timestamp_format
// option), a one-line station/DUT1/leap-state summary, and C4's
// diagnostic grid-and-summary dump.
func (p *Producer) logTimecode(code Timecode, length int) {
	stamp := time.Date(p.Clock.Year, time.Month(p.Clock.Month), p.Clock.Day,
		p.Clock.Hour, p.Clock.Minute, 0, 0, time.UTC)
	formatted, err := strftime.Format("%m/%d/%Y %H:%M", stamp)
	if err != nil {
		formatted = fmt.Sprintf("%02d/%02d/%04d %02d:%02d", p.Clock.Month, p.Clock.Day, p.Clock.Year, p.Clock.Hour, p.Clock.Minute)
	}
	p.Logger.Debug(formatted, "station", p.Station, "dut1", p.Dut1, "leap", p.Leap, "seconds", length)
	p.Logger.Debug("\n" + Dump(code, length))
}

// advance implements spec.md §4.7 step 7: clear the fired leap state and
// apply its DUT1 correction, then carry the civil clock forward.
func (p *Producer) advance(length int) {
	switch length {
	case 61:
		p.Leap = LeapNone
		p.Dut1 += 10
	case 59:
		p.Leap = LeapNone
		p.Dut1 -= 10
	}
	if p.Dut1 > 7 {
		p.Dut1 = 7
	}
	if p.Dut1 < -7 {
		p.Dut1 = -7
	}
	p.Clock.AdvanceMinute()
}

// silenceScheduleTone implements -t/--no-tone by zeroing the [1000,45000)ms
// window the schedule tone/announcement would otherwise occupy, applied
// after assembly so it also covers any announcement splice.
func silenceScheduleTone(buf []int16, sampleRate int) {
	spms := sampleRate / 1000
	start := 1000 * spms
	stop := 45000 * spms
	if stop > len(buf) {
		stop = len(buf)
	}
	for i := start; i < stop; i++ {
		buf[i] = 0
	}
}
