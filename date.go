package datelex

import (
	"fmt"
	"time"
)

// UTCOffset is a timezone offset in seconds east of UTC. Valid is false
// when the parsed string carried no timezone at all, which is not the
// same thing as UTC itself.
type UTCOffset struct {
	Seconds int
	Valid   bool
}

// Date is the normalized result of parsing a date string. Month is
// 0-based to match the month numbering of the tokenizer keywords: 0 is
// January, 11 is December. All other fields are the natural calendar and
// clock values.
type Date struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Offset      UTCOffset
}

// In converts the record to a time.Time. A record with an offset denotes
// an exact instant and loc only affects presentation; without one the
// fields are read as wall clock time in loc, or in UTC when loc is nil.
func (d Date) In(loc *time.Location) time.Time {
	if d.Offset.Valid {
		if d.Offset.Seconds == 0 {
			loc = time.UTC
		} else {
			loc = time.FixedZone("", d.Offset.Seconds)
		}
	} else if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, d.Hour, d.Minute, d.Second,
		d.Millisecond*int(time.Millisecond), loc)
}

// String renders the record as YYYY-MM-DDThh:mm:ss.mmm, with a Z or
// ±hh:mm suffix when an offset is present and a signed six-digit year
// when four digits cannot hold it. Parsing the result reproduces the
// record.
func (d Date) String() string {
	year := fmt.Sprintf("%04d", d.Year)
	if d.Year < 0 || d.Year > 9999 {
		year = fmt.Sprintf("%+07d", d.Year)
	}
	s := fmt.Sprintf("%s-%02d-%02dT%02d:%02d:%02d.%03d",
		year, d.Month+1, d.Day, d.Hour, d.Minute, d.Second, d.Millisecond)
	if !d.Offset.Valid {
		return s
	}
	if d.Offset.Seconds == 0 {
		return s + "Z"
	}
	off := d.Offset.Seconds
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	return fmt.Sprintf("%s%s%02d:%02d", s, sign, off/3600, off%3600/60)
}
