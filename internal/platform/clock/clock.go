package clock

import "time"

// DateLayout is the calendar-day format stamped onto every record.
const DateLayout = "2006-01-02"

// Clock abstracts time to keep record dates deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Today formats the clock's current day as a record date.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}
