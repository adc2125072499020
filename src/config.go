package wwv

/*
Config (C8/CLI glue).

Mirrors the teacher's config.go in shape (a flat struct populated by the
CLI layer, validated once at startup) scaled down to this domain's much
smaller surface, with the error-correction rules of spec.md §7 applied
in Validate rather than scattered across callers.
*/

import "fmt"

// Config is the fully-resolved set of knobs spec.md §6's CLI table
// exposes, independent of how they were parsed.
type Config struct {
	Verbose    bool
	SampleRate int
	Station    Station
	Dut1       Dut1Tenths
	Manual     bool // true if the start time was set explicitly; cmd/wwvsim sets it only when --year is non-zero, so Month/.../Second take effect only together with --year
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Positive   bool // -P/--positive: arm a positive leap second
	Negative   bool // -N/--negative: arm a negative leap second
	NoTone     bool
	NoVoice    bool
	NoCode     bool
	Device     int
	LibDir     string
}

// DefaultLibDir matches the teacher-adjacent ka9q-radio install layout
// spec.md §6 names.
const DefaultLibDir = "/usr/local/share/ka9q-radio"

// Validate applies spec.md §7's config-error corrections in place and
// returns the warnings it generated plus a fatal error, if any.
func (c *Config) Validate() (warnings []string, err error) {
	if c.Positive && c.Negative {
		warnings = append(warnings, "both --positive and --negative given; clearing leap arming")
		c.Positive = false
		c.Negative = false
	}

	if c.Dut1 < -7 || c.Dut1 > 7 {
		warnings = append(warnings, fmt.Sprintf("dut1 %d out of range [-7,7]; clamped to 0", c.Dut1))
		c.Dut1 = 0
	}

	if c.Positive && c.Dut1 > 0 {
		warnings = append(warnings, "positive leap arming contradicts positive dut1; leap canceled")
		c.Positive = false
	}
	if c.Negative && c.Dut1 < 0 {
		warnings = append(warnings, "negative leap arming contradicts negative dut1; leap canceled")
		c.Negative = false
	}

	if c.SampleRate <= 0 {
		c.SampleRate = 48000
	}
	if c.SampleRate%1000 != 0 {
		return warnings, fmt.Errorf("wwv: sample rate %d does not divide 1000 evenly", c.SampleRate)
	}

	if c.Manual && c.Year < 2007 {
		warnings = append(warnings, fmt.Sprintf("year %d predates the 2007 US DST rule; DST bits forced to 0", c.Year))
	}

	if c.LibDir == "" {
		c.LibDir = DefaultLibDir
	}

	return warnings, nil
}

// LeapState derives the armed leap state from the resolved Positive/
// Negative flags, after Validate has reconciled contradictions.
func (c Config) LeapState() LeapState {
	switch {
	case c.Positive:
		return LeapPositivePending
	case c.Negative:
		return LeapNegativePending
	default:
		return LeapNone
	}
}
