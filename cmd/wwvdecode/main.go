package main

/*
wwvdecode is a standalone diagnostic: build a timecode frame for a given
civil time and print the grid/decode dump (src.Dump) that --verbose mode
would otherwise bury in the main program's stderr stream.
*/

import (
	"fmt"
	"os"

	wwv "github.com/wwvsim/wwvsim/src"

	"github.com/spf13/pflag"
)

func main() {
	var (
		year   = pflag.IntP("year", "Y", 2024, "Civil year.")
		month  = pflag.IntP("month", "M", 1, "Civil month (1-12).")
		day    = pflag.IntP("day", "D", 1, "Civil day.")
		hour   = pflag.IntP("hour", "h", 0, "Civil hour (0-23).")
		minute = pflag.IntP("minute", "m", 0, "Civil minute (0-59).")
		ut1    = pflag.IntP("ut1", "u", 0, "DUT1 in tenths of a second, [-7, 7].")
		leap   = pflag.BoolP("leap", "l", false, "Mark a leap second as pending.")
	)
	pflag.Parse()

	ct := wwv.CivilTime{Year: *year, Month: *month, Day: *day, Hour: *hour, Minute: *minute}
	dut1 := wwv.Dut1Tenths(*ut1)
	if !dut1.Valid() {
		fmt.Fprintf(os.Stderr, "wwvdecode: dut1 %d out of range [-7,7]\n", *ut1)
		os.Exit(1)
	}

	code := wwv.BuildTimecode(ct, dut1, *leap)

	length := 60
	if *leap && ct.IsEndOfLeapEligibleMonth() {
		length = 61
	}

	fmt.Print(wwv.Dump(code, length))
}
