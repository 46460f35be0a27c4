package notification

import (
	"fmt"
	"time"
)

// Clock is a minute of the day, 0..1439.
type Clock int

// ParseClock accepts HH:MM with 00-23 hours and 00-59 minutes.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuietHours, s)
	}
	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuietHours, s)
	}
	return Clock(h*60 + m), nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// InWindow reports whether cur falls in [start, end]. A window with
// start > end wraps past midnight.
func InWindow(start, end, cur Clock) bool {
	if start > end {
		return cur >= start || cur <= end
	}
	return cur >= start && cur <= end
}
