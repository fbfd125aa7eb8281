package datelex

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateIn(t *testing.T) {
	denverLoc, err := time.LoadLocation("America/Denver")
	assert.Equal(t, nil, err)

	d := Date{Year: 2014, Month: 7, Day: 26, Hour: 17, Minute: 24, Second: 37}

	// Without an offset the fields are wall clock time in loc.
	assert.Equal(t, "2014-08-26 23:24:37 +0000 UTC",
		fmt.Sprintf("%v", d.In(denverLoc).In(time.UTC)))
	assert.Equal(t, "2014-08-26 17:24:37 +0000 UTC",
		fmt.Sprintf("%v", d.In(nil).In(time.UTC)))

	// With one, loc does not matter.
	d.Offset = UTCOffset{Seconds: -5 * 3600, Valid: true}
	assert.Equal(t, "2014-08-26 22:24:37 +0000 UTC",
		fmt.Sprintf("%v", d.In(denverLoc).In(time.UTC)))

	// A zero offset is UTC proper.
	d.Offset = UTCOffset{Seconds: 0, Valid: true}
	ts := d.In(denverLoc)
	assert.Equal(t, time.UTC, ts.Location())
	assert.Equal(t, "2014-08-26 17:24:37 +0000 UTC", fmt.Sprintf("%v", ts))
}

func TestDateInMilliseconds(t *testing.T) {
	d := Date{Year: 2014, Month: 3, Day: 26, Hour: 17, Minute: 24, Second: 37, Millisecond: 123}
	assert.Equal(t, 123000000, d.In(nil).Nanosecond())
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2020-01-05T00:00:00.000",
		Date{Year: 2020, Month: 0, Day: 5}.String())
	assert.Equal(t, "2020-01-05T00:00:00.000Z",
		Date{Year: 2020, Month: 0, Day: 5, Offset: UTCOffset{Valid: true}}.String())
	assert.Equal(t, "2020-01-05T12:00:00.000+05:30",
		Date{Year: 2020, Month: 0, Day: 5, Hour: 12, Offset: UTCOffset{Seconds: 19800, Valid: true}}.String())
	assert.Equal(t, "2020-01-05T12:00:00.000-01:00",
		Date{Year: 2020, Month: 0, Day: 5, Hour: 12, Offset: UTCOffset{Seconds: -3600, Valid: true}}.String())
	assert.Equal(t, "0050-12-31T23:59:59.999",
		Date{Year: 50, Month: 11, Day: 31, Hour: 23, Minute: 59, Second: 59, Millisecond: 999}.String())
	assert.Equal(t, "-000050-07-04T01:02:03.004",
		Date{Year: -50, Month: 6, Day: 4, Hour: 1, Minute: 2, Second: 3, Millisecond: 4}.String())
	assert.Equal(t, "+012345-04-06T00:00:00.000",
		Date{Year: 12345, Month: 3, Day: 6}.String())
}

func TestDateStringRoundTrip(t *testing.T) {
	for _, d := range []Date{
		{Year: 2020, Month: 0, Day: 5},
		{Year: 50, Month: 11, Day: 31, Hour: 23, Minute: 59, Second: 59, Millisecond: 999},
		{Year: -50, Month: 6, Day: 4, Hour: 1, Minute: 2, Second: 3, Millisecond: 4},
		{Year: 12345, Month: 3, Day: 6},
		{Year: 2020, Month: 0, Day: 5, Offset: UTCOffset{Valid: true}},
		{Year: 2020, Month: 0, Day: 5, Hour: 12, Offset: UTCOffset{Seconds: 19800, Valid: true}},
		{Year: 2020, Month: 0, Day: 5, Hour: 12, Offset: UTCOffset{Seconds: -3600, Valid: true}},
	} {
		got, err := Parse(d.String())
		assert.Equal(t, nil, err, "for %s", d)
		assert.Equal(t, d, got, "round trip of %s", d)
	}
}
