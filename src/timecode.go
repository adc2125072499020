package wwv

// Timecode builder (C3).
//
// Timecode is the 61-slot frame modulated onto the 100 Hz subcarrier, one
// slot per second of the minute (slot 60 only exists during a positive
// leap second). Grounded in wwvsim.c's maketimecode; slot semantics are
// spec.md §3's.
type Timecode [61]int

// Dut1Tenths is UT1-UTC in tenths of a second, valid range [-7, 7].
type Dut1Tenths int

// Valid reports whether d is within the broadcast range.
func (d Dut1Tenths) Valid() bool {
	return d >= -7 && d <= 7
}

// BuildTimecode populates a 61-slot frame from civil time, DUT1, and
// leap-pending state, per spec.md §3/§4.3. Position markers (slots ending
// in 9) are left at 0 here; the minute assembler is responsible for
// emitting their 800 ms pulse in the audio, slot value is not data.
func BuildTimecode(ct CivilTime, dut1 Dut1Tenths, leapPending bool) Timecode {
	var code Timecode

	doy := DayOfYear(ct.Year, ct.Month, ct.Day)
	dstStart := DSTStartDOY(ct.Year)

	if dstStart >= 1 {
		if doy > dstStart && doy <= dstStart+DSTSpanDays {
			code[2] = 1 // DST in effect at 00:00 UTC
		}
		if doy >= dstStart && doy < dstStart+DSTSpanDays {
			code[55] = 1 // DST in effect at 24:00 UTC
		}
	}

	if leapPending {
		code[3] = 1
	}

	EncodeBCD(code[4:8], ct.Year%10)
	EncodeBCD(code[51:55], (ct.Year/10)%10)

	EncodeBCD(code[10:14], ct.Minute%10)
	EncodeBCD(code[15:19], ct.Minute/10) // extends into unused slot 18

	EncodeBCD(code[20:24], ct.Hour%10)
	EncodeBCD(code[25:29], ct.Hour/10) // extends into unused slots 27-28

	EncodeBCD(code[30:34], doy%10)
	EncodeBCD(code[35:39], (doy/10)%10)
	EncodeBCD(code[40:44], doy/100) // extends into unused slots 42-43

	mag := int(dut1)
	if mag < 0 {
		mag = -mag
		code[50] = 0
	} else {
		code[50] = 1
	}
	// Only 3 bits (56-58) are read back as magnitude; the 4th bit this
	// writes into slot 59 is never decoded because slot 59 is a position
	// marker (spec.md §9(c) — "dropped by design"). |dut1| <= 7 fits in
	// 3 bits regardless.
	EncodeBCD(code[56:60], mag)

	return code
}
