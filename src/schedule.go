package wwv

// Schedule tables (C7) — the literal NIST broadcast schedule, carried
// verbatim from wwvsim.c's WWV_tone_schedule / WWVH_tone_schedule (and
// spec.md §6, same values). Index is minute-of-hour; 0 means silent.
var wwvSchedule = [60]int{
	0, 600, 440, 0, 0, 600, 500, 600, 0, 0,
	0, 600, 500, 600, 500, 600, 0, 600, 0, 600,
	500, 600, 500, 600, 500, 600, 500, 600, 500, 0,
	0, 600, 500, 600, 500, 600, 500, 600, 500, 600,
	500, 600, 500, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 500, 600, 500, 600, 500, 600, 500, 0,
}

var wwvhSchedule = [60]int{
	0, 440, 600, 0, 0, 500, 600, 0, 0, 0,
	0, 0, 600, 500, 0, 0, 0, 0, 0, 0,
	600, 500, 600, 500, 600, 500, 600, 500, 600, 0,
	0, 500, 600, 500, 600, 500, 600, 500, 600, 500,
	600, 500, 600, 500, 600, 0, 600, 0, 0, 0,
	0, 0, 0, 500, 600, 500, 600, 500, 600, 0,
}

// ScheduleTone returns the continuous tone frequency (Hz, 0 for silence)
// for the given station at minute-of-hour minute, applying the hour==0
// suppression of the 440 Hz tone (spec.md §4.5 step 2, §6).
func ScheduleTone(station Station, hour, minute int) int {
	var tone int
	if station == WWVH {
		tone = wwvhSchedule[minute]
	} else {
		tone = wwvSchedule[minute]
	}
	if tone == 440 && hour == 0 {
		return 0
	}
	return tone
}
