package wwv

import (
	"fmt"
	"strings"
)

// Timecode decoder (C4) — purely diagnostic, grounded in wwvsim.c's
// decode_timecode.

// Decoded is the human-readable reconstruction of a Timecode.
type Decoded struct {
	Year2       int // two-digit year, e.g. 24 for 2024
	DayOfYear   int
	Hour        int
	Minute      int
	Dut1        Dut1Tenths
	LeapPending bool
	DSTState    string // one of the four strings below
}

const (
	dstNotInEffect = "DST not in effect"
	dstStartsToday = "DST starts today"
	dstEndsToday   = "DST ends today"
	dstInEffect    = "DST in effect"
)

// Decode reconstructs civil fields from a 61-slot frame. It is the inverse
// of BuildTimecode for the fields BuildTimecode actually sets.
func Decode(code Timecode) Decoded {
	d := Decoded{
		Year2:     DecodeBCD(code[51:55])*10 + DecodeBCD(code[4:8]),
		DayOfYear: DecodeBCD(code[40:44])*100 + DecodeBCD(code[35:39])*10 + DecodeBCD(code[30:34]),
		Hour:      DecodeBCD(code[25:29])*10 + DecodeBCD(code[20:24]),
		Minute:    DecodeBCD(code[15:19])*10 + DecodeBCD(code[10:14]),
	}

	// Slot 59 is a position marker, not data (spec.md §9(c)); the
	// magnitude is only ever 3 bits wide (|dut1| <= 7).
	magBits := [4]int{code[56], code[57], code[58], 0}
	mag := DecodeBCD(magBits[:])
	if code[50] == 0 {
		mag = -mag
	}
	d.Dut1 = Dut1Tenths(mag)
	d.LeapPending = code[3] != 0

	switch {
	case code[2] != 0 && code[55] != 0:
		d.DSTState = dstInEffect
	case code[2] == 0 && code[55] != 0:
		d.DSTState = dstStartsToday
	case code[2] != 0 && code[55] == 0:
		d.DSTState = dstEndsToday
	default:
		d.DSTState = dstNotInEffect
	}

	return d
}

// Dump renders the frame as a 10-wide grid (with "M" at each position
// marker) followed by the decoded summary line, matching wwvsim.c's
// decode_timecode stderr output.
func Dump(code Timecode, length int) string {
	var b strings.Builder

	for s := range length {
		if s%10 == 0 && s < 60 {
			fmt.Fprintf(&b, "%02d: ", s)
		}
		switch {
		case s == 0:
			b.WriteByte(' ')
		case s%10 == 9, s == 60:
			b.WriteByte('M')
		case code[s] != 0:
			b.WriteByte('1')
		default:
			b.WriteByte('0')
		}
		if s < 59 && s%10 == 9 {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')

	d := Decode(code)
	fmt.Fprintf(&b, "year %02d doy %03d hour %02d minute %02d; dut1 %+d",
		d.Year2, d.DayOfYear, d.Hour, d.Minute, d.Dut1)
	if d.LeapPending {
		b.WriteString("; leap second pending")
	}
	fmt.Fprintf(&b, "; %s\n", d.DSTState)

	return b.String()
}
