package wwv

import "time"

// CivilTime is the wall-clock time the producer steps minute by minute.
// Second runs 0-60 so a positive leap second (second 60) is representable;
// time.Time cannot hold that, which is why this isn't just time.Time.
type CivilTime struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-31
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-60
}

// CivilTimeFromWall converts a time.Time to UTC and copies its fields down
// to the whole second, for comparing against a civil time under
// construction.
func CivilTimeFromWall(t time.Time) CivilTime {
	t = t.UTC()
	return CivilTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// SameMinute reports whether ct and o name the same UTC minute.
func (ct CivilTime) SameMinute(o CivilTime) bool {
	return ct.Year == o.Year && ct.Month == o.Month && ct.Day == o.Day &&
		ct.Hour == o.Hour && ct.Minute == o.Minute
}

// NextMinute returns the minute following ct, for the minute announcement
// text which always names the *next* minute (spec.md §4.5 step 3).
func (ct CivilTime) NextMinute() (hour, minute int) {
	minute = ct.Minute + 1
	hour = ct.Hour
	if minute == 60 {
		minute = 0
		hour++
		if hour == 24 {
			hour = 0
		}
	}
	return hour, minute
}

// AdvanceMinute carries ct forward by one minute, propagating into hour,
// day, month and year as needed. It mirrors wwvsim.c's main loop tail.
func (ct *CivilTime) AdvanceMinute() {
	ct.Second = 0
	ct.Minute++
	if ct.Minute > 59 {
		ct.Minute = 0
		ct.Hour++
		if ct.Hour > 23 {
			ct.Hour = 0
			ct.Day++
			if ct.Day > daysInMonth(ct.Year, ct.Month) {
				ct.Day = 1
				ct.Month++
				if ct.Month > 12 {
					ct.Month = 1
					ct.Year++
				}
			}
		}
	}
}

// IsEndOfLeapEligibleMonth reports whether ct names 23:59 UTC in June or
// December. Only month, hour and minute are checked; the day of the month
// is not, so 23:59 on any day of those two months qualifies.
func (ct CivilTime) IsEndOfLeapEligibleMonth() bool {
	return (ct.Month == 6 || ct.Month == 12) && ct.Hour == 23 && ct.Minute == 59
}
