package datelex

// optInt is an integer that knows whether it has been set. The zero value
// is unset, so emptiness checks are typed instead of sentinel
// comparisons.
type optInt struct {
	v  int
	ok bool
}

func between(x, lo, hi int) bool { return x >= lo && x <= hi }

func isMonth(x int) bool       { return between(x, 1, 12) }
func isDay(x int) bool         { return between(x, 1, 31) }
func isHour(x int) bool        { return between(x, 0, 23) }
func isHour12(x int) bool      { return between(x, 0, 12) }
func isMinute(x int) bool      { return between(x, 0, 59) }
func isSecond(x int) bool      { return between(x, 0, 59) }
func isMillisecond(x int) bool { return between(x, 0, 999) }

// dayComposer accumulates the date part of a parse: up to three numeric
// slots, an optional month taken from a name, and a flag fixing the slot
// order to year, month, day.
type dayComposer struct {
	comp       [3]int
	n          int
	namedMonth optInt
	yearFirst  bool
}

func (d *dayComposer) isEmpty() bool { return d.n == 0 }

func (d *dayComposer) add(v int) bool {
	if d.n == len(d.comp) {
		return false
	}
	d.comp[d.n] = v
	d.n++
	return true
}

func (d *dayComposer) setNamedMonth(m int) {
	d.namedMonth = optInt{m, true}
}

// setYearFirst fixes the slot order to year, month, day and disables
// two-digit year expansion. It is set when the input opens with an
// unambiguous year: four digits, or six digits behind a sign.
func (d *dayComposer) setYearFirst() { d.yearFirst = true }

// write resolves the slots into year, month and day fields of out.
// Exactly three numeric slots are required, or two next to a named month;
// fewer is not a date. Two-digit years expand into 1950-2049 unless the
// year-first flag is set.
func (d *dayComposer) write(out *Date) bool {
	var year, month, day int
	if d.namedMonth.ok {
		if d.n != 2 {
			return false
		}
		month = d.namedMonth.v + 1
		if d.yearFirst || !isDay(d.comp[0]) {
			year, day = d.comp[0], d.comp[1]
		} else {
			day, year = d.comp[0], d.comp[1]
		}
	} else {
		if d.n != 3 {
			return false
		}
		if d.yearFirst {
			year, month, day = d.comp[0], d.comp[1], d.comp[2]
		} else {
			var ok bool
			year, month, day, ok = arrangeDate(d.comp)
			if !ok {
				return false
			}
		}
	}
	if !d.yearFirst {
		switch {
		case between(year, 0, 49):
			year += 2000
		case between(year, 50, 99):
			year += 1900
		}
	}
	if !isMonth(month) || !isDay(day) {
		return false
	}
	out.Year = year
	out.Month = month - 1
	out.Day = day
	return true
}

// arrangeDate assigns three bare numeric slots to year, month and day.
// The first slot that cannot be a day of month is the year; when all
// three could be, the trailing slot is. The remaining two are read
// month-then-day when that is in range and day-then-month when only that
// is, so 03/04/2020 is March 4th and 25/12/2020 is December 25th.
func arrangeDate(comp [3]int) (year, month, day int, ok bool) {
	yi := 2
	for i, v := range comp {
		if !isDay(v) {
			yi = i
			break
		}
	}
	year = comp[yi]
	var a, b int
	switch yi {
	case 0:
		a, b = comp[1], comp[2]
	case 1:
		a, b = comp[0], comp[2]
	default:
		a, b = comp[0], comp[1]
	}
	switch {
	case isMonth(a) && isDay(b):
		month, day = a, b
	case isDay(a) && isMonth(b):
		day, month = a, b
	default:
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// timeComposer accumulates hour, minute, second and millisecond slots in
// order, plus the meridiem adjustment of a 12-hour clock.
type timeComposer struct {
	comp       [4]int
	n          int
	hourOffset optInt
}

func (t *timeComposer) isEmpty() bool { return t.n == 0 }

// isExpecting reports whether v fits the slot a running time would fill
// next. It never starts a new time, so a bare number after a complete
// time falls through to the date slots.
func (t *timeComposer) isExpecting(v int) bool {
	switch t.n {
	case 1:
		return isMinute(v)
	case 2:
		return isSecond(v)
	case 3:
		return isMillisecond(v)
	}
	return false
}

func (t *timeComposer) add(v int) bool {
	if t.n == len(t.comp) {
		return false
	}
	t.comp[t.n] = v
	t.n++
	return true
}

// addFinal appends v and zero-fills the remaining slots, closing the run:
// "12:30" has second and millisecond zero.
func (t *timeComposer) addFinal(v int) bool {
	if !t.add(v) {
		return false
	}
	for t.n < len(t.comp) {
		t.comp[t.n] = 0
		t.n++
	}
	return true
}

// setHourOffset records the meridiem adjustment applied when the record
// is written: 0 for AM, 12 for PM.
func (t *timeComposer) setHourOffset(v int) {
	t.hourOffset = optInt{v, true}
}

// write validates the slots and fills the time fields of out. Under a
// meridiem the hour must be a 12-hour clock value; 12 AM becomes 0 and
// 12 PM stays 12.
func (t *timeComposer) write(out *Date) bool {
	for t.n < len(t.comp) {
		t.comp[t.n] = 0
		t.n++
	}
	hour, minute, second, millisecond := t.comp[0], t.comp[1], t.comp[2], t.comp[3]
	if t.hourOffset.ok {
		if !isHour12(hour) {
			return false
		}
		hour = hour%12 + t.hourOffset.v
	}
	if !isHour(hour) || !isMinute(minute) || !isSecond(second) || !isMillisecond(millisecond) {
		return false
	}
	out.Hour = hour
	out.Minute = minute
	out.Second = second
	out.Millisecond = millisecond
	return true
}

// tzComposer accumulates a UTC offset, from a zone keyword or from an
// explicit sign, hour and minute.
type tzComposer struct {
	sign   optInt
	hour   optInt
	minute optInt
}

func (z *tzComposer) isEmpty() bool { return !z.hour.ok }

// set records a whole offset in minutes, as zone keywords carry it.
func (z *tzComposer) set(offsetMinutes int) {
	sign := 1
	if offsetMinutes < 0 {
		sign = -1
		offsetMinutes = -offsetMinutes
	}
	z.sign = optInt{sign, true}
	z.hour = optInt{offsetMinutes / 60, true}
	z.minute = optInt{offsetMinutes % 60, true}
}

func (z *tzComposer) setSign(sign int) {
	if sign < 0 {
		z.sign = optInt{-1, true}
	} else {
		z.sign = optInt{1, true}
	}
}

func (z *tzComposer) setHour(hour int)     { z.hour = optInt{hour, true} }
func (z *tzComposer) setMinute(minute int) { z.minute = optInt{minute, true} }

// clearMinute reopens the minute slot after "±hh:" so the number behind
// the colon lands in it.
func (z *tzComposer) clearMinute() { z.minute = optInt{} }

// isExpecting reports whether v should fill a pending minute slot.
func (z *tzComposer) isExpecting(v int) bool {
	return z.hour.ok && !z.minute.ok && isMinute(v)
}

// isUTC reports an offset of exactly zero, which is what lets a sign
// after "UTC" or "GMT" start an offset.
func (z *tzComposer) isUTC() bool {
	return z.hour.ok && z.hour.v == 0 && z.minute.ok && z.minute.v == 0
}

// write composes the offset into out in seconds, or leaves it absent when
// no zone was seen at all.
func (z *tzComposer) write(out *Date) bool {
	if !z.hour.ok {
		out.Offset = UTCOffset{}
		return true
	}
	sign := 1
	if z.sign.ok {
		sign = z.sign.v
	}
	minute := 0
	if z.minute.ok {
		minute = z.minute.v
	}
	if !isHour(z.hour.v) || !isMinute(minute) {
		return false
	}
	out.Offset = UTCOffset{Seconds: sign * (z.hour.v*3600 + minute*60), Valid: true}
	return true
}
