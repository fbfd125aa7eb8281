// Package datelex parses date strings without knowing their format in
// advance, using a single lex pass with one token of lookahead instead of
// shotgun attempts against a pile of layouts. A strict pass recognizes
// year-first ISO 8601 style input and a lenient token scan handles
// everything else: month names, US and European numeric dates, 12-hour
// clocks, timezone names and offsets, and parenthesized comments. It
// leans towards US style month/day dates when both readings are in
// range. Parsers share no state, so concurrent calls are safe.
package datelex

import (
	"fmt"
	"strconv"
	"time"
	"unicode"
)

// config carries per-parse tunables.
type config struct {
	isSpace func(rune) bool
}

// Option adjusts how a single parse reads its input.
type Option func(*config)

// WhitespaceClassifier replaces the predicate deciding which runes
// separate tokens. The default is unicode.IsSpace.
func WhitespaceClassifier(fn func(rune) bool) Option {
	return func(c *config) { c.isSpace = fn }
}

// Parse reads datestr as a date and returns the normalized record. A
// plausible date needs a resolvable year, month and day; a time of day
// alone is not a date. On failure the returned record is the zero value
// and means nothing.
func Parse(datestr string, opts ...Option) (Date, error) {
	cfg := config{isSpace: unicode.IsSpace}
	for _, opt := range opts {
		opt(&cfg)
	}
	var d Date
	if !parseDate(datestr, &cfg, &d) {
		return Date{}, fmt.Errorf("Could not find a date in %q", datestr)
	}
	return d, nil
}

// parseDate drives both strategies over one token stream and writes the
// composed fields into out. The strict pass runs first; whatever it does
// not claim is handed to the lenient loop along with any composer state
// it already accumulated, so "2014-04-26 17:24:37" parses its date
// strictly and its time leniently without rescanning.
func parseDate(datestr string, cfg *config, out *Date) bool {
	scanner := newTokenizer(newInput(datestr, cfg.isSpace))

	var day dayComposer
	var tm timeComposer
	var tz tzComposer

	tok := parseStrictDateTime(scanner, &day, &tm, &tz)
	if tok.isInvalid() {
		return false
	}
	hasReadNumber := !day.isEmpty()

	for ; !tok.isEndOfInput(); tok = scanner.next() {
		switch {
		case tok.isNumber():
			hasReadNumber = true
			n := tok.value
			if scanner.skipSymbol(':') {
				// Opening or continuing a time run: hh: or mm:.
				if !tm.add(n) {
					return false
				}
				if scanner.peek().isSymbol('.') {
					scanner.next()
				}
			} else if scanner.skipSymbol('.') && tm.isExpecting(n) {
				tm.add(n)
				if !scanner.peek().isNumber() {
					return false
				}
				if !tm.addFinal(readMilliseconds(scanner.next())) {
					return false
				}
			} else if tz.isExpecting(n) {
				tz.setMinute(n)
			} else if tm.isExpecting(n) {
				if !tm.addFinal(n) {
					return false
				}
			} else {
				if day.isEmpty() && tok.length == 4 {
					day.setYearFirst()
				}
				if !day.add(n) {
					return false
				}
				scanner.skipSymbol('-')
			}
		case tok.kind == tokenKeyword:
			switch tok.keyword {
			case keywordAmPm:
				// A meridiem needs a time to adjust.
				if !tm.isEmpty() {
					tm.setHourOffset(tok.value)
				}
			case keywordMonthName:
				day.setNamedMonth(tok.value)
				scanner.skipSymbol('-')
			case keywordTimeZoneName:
				if hasReadNumber {
					tz.set(tok.value)
				}
			case keywordTimeSeparator:
				// Date-to-time punctuation, nothing to record.
			}
		case tok.isSign() && (tz.isUTC() || !tm.isEmpty()):
			// Explicit UTC offset, only after a time or a UTC zone name
			// so negative years and phone numbers don't read as zones.
			tz.setSign(tok.signValue())
			hasReadNumber = true
			n, digits := 0, 0
			if scanner.peek().isNumber() {
				num := scanner.next()
				n, digits = num.value, num.length
			}
			switch {
			case scanner.peek().isSymbol(':'):
				tz.setHour(n)
				tz.clearMinute()
			case digits <= 2:
				tz.setHour(n)
				tz.setMinute(0)
			default:
				tz.setHour(n / 100)
				tz.setMinute(n % 100)
			}
		case (tok.isSign() || tok.isSymbol(')')) && hasReadNumber:
			return false
		default:
			// Whitespace, unknown words and stray symbols carry no date
			// information.
		}
	}

	return day.write(out) && tm.write(out) && tz.write(out)
}

// parseStrictDateTime consumes as much of the year-first date-time format
//
//	[+-]yyyyyy|yyyy['-'MM['-'DD]]['T'hh':'mm[':'ss['.'sss]][Z|(+|-)hh:mm|(+|-)hhmm]]
//
// as the input matches. On full success the composers hold the finished
// fields and EndOfInput is returned. A token that breaks the date part
// is handed back for the lenient loop to continue from, composer state
// intact. Once the time separator is consumed the format is committed:
// a malformed time part returns Invalid and fails the whole parse,
// except that trailing content after a complete time is handed back.
func parseStrictDateTime(scanner *tokenizer, day *dayComposer, tm *timeComposer, tz *tzComposer) token {
	if scanner.peek().isSign() {
		// Keep the sign token, the lenient loop may still want it.
		sign := scanner.next()
		if !scanner.peek().isFixedLengthNumber(6) {
			return sign
		}
		year := scanner.next().value
		if sign.signValue() < 0 && year == 0 {
			return sign
		}
		day.setYearFirst()
		day.add(sign.signValue() * year)
	} else if scanner.peek().isFixedLengthNumber(4) {
		day.setYearFirst()
		day.add(scanner.next().value)
	} else {
		return scanner.next()
	}
	if scanner.skipSymbol('-') {
		if !scanner.peek().isFixedLengthNumber(2) || !isMonth(scanner.peek().value) {
			return scanner.next()
		}
		day.add(scanner.next().value)
		if scanner.skipSymbol('-') {
			if !scanner.peek().isFixedLengthNumber(2) || !isDay(scanner.peek().value) {
				return scanner.next()
			}
			day.add(scanner.next().value)
		}
	}
	if !scanner.peek().isKeyword(keywordTimeSeparator) {
		if !scanner.peek().isEndOfInput() {
			return scanner.next()
		}
		return endOfInputToken()
	}
	scanner.next()
	if !scanner.peek().isFixedLengthNumber(2) || !isHour(scanner.peek().value) {
		return invalidToken()
	}
	tm.add(scanner.next().value)
	if !scanner.skipSymbol(':') {
		return invalidToken()
	}
	if !scanner.peek().isFixedLengthNumber(2) || !isMinute(scanner.peek().value) {
		return invalidToken()
	}
	tm.add(scanner.next().value)
	if scanner.skipSymbol(':') {
		if !scanner.peek().isFixedLengthNumber(2) || !isSecond(scanner.peek().value) {
			return invalidToken()
		}
		tm.add(scanner.next().value)
		if scanner.skipSymbol('.') {
			if !scanner.peek().isNumber() {
				return invalidToken()
			}
			tm.add(readMilliseconds(scanner.next()))
		}
	}
	switch {
	case scanner.peek().isKeywordZ():
		scanner.next()
		tz.set(0)
	case scanner.peek().isSymbol('+') || scanner.peek().isSymbol('-'):
		tz.setSign(scanner.next().signValue())
		if scanner.peek().isFixedLengthNumber(4) {
			// The compact hhmm form.
			hhmm := scanner.next().value
			if !isHour(hhmm/100) || !isMinute(hhmm%100) {
				return invalidToken()
			}
			tz.setHour(hhmm / 100)
			tz.setMinute(hhmm % 100)
		} else {
			if !scanner.peek().isFixedLengthNumber(2) || !isHour(scanner.peek().value) {
				return invalidToken()
			}
			tz.setHour(scanner.next().value)
			if !scanner.skipSymbol(':') {
				return invalidToken()
			}
			if !scanner.peek().isFixedLengthNumber(2) || !isMinute(scanner.peek().value) {
				return invalidToken()
			}
			tz.setMinute(scanner.next().value)
		}
	}
	if scanner.peek().isWhitespace() {
		return scanner.next()
	}
	if !scanner.peek().isEndOfInput() {
		return invalidToken()
	}
	return endOfInputToken()
}

// readMilliseconds converts a fraction-of-second number token to whole
// milliseconds using its digit count, so ".3" is 300 and ".3186369" is
// 318.
func readMilliseconds(num token) int {
	n, length := num.value, num.length
	switch {
	case length == 1:
		n *= 100
	case length == 2:
		n *= 10
	case length > 3:
		if length > maxSignificantDigits {
			length = maxSignificantDigits
		}
		for ; length > 3; length-- {
			n /= 10
		}
	}
	return n
}

// ParseAny parses an unknown date format into a time.Time using the
// timezone rules of time.Parse: fields without an explicit offset are
// read as UTC. All-digit strings of width 10, 13, 16 or 19 are Unix
// epoch seconds, milliseconds, microseconds or nanoseconds.
func ParseAny(datestr string, opts ...Option) (time.Time, error) {
	return parseTime(datestr, nil, opts...)
}

// ParseIn parses like ParseAny with the rules of time.ParseInLocation:
// fields without an explicit offset are read as wall clock time in loc.
func ParseIn(datestr string, loc *time.Location, opts ...Option) (time.Time, error) {
	return parseTime(datestr, loc, opts...)
}

// ParseLocal parses like ParseIn in the global time.Local location.
func ParseLocal(datestr string, opts ...Option) (time.Time, error) {
	return parseTime(datestr, time.Local, opts...)
}

// MustParse parses like ParseAny and panics when it cannot.
func MustParse(datestr string, opts ...Option) time.Time {
	t, err := parseTime(datestr, nil, opts...)
	if err != nil {
		panic(err.Error())
	}
	return t
}

func parseTime(datestr string, loc *time.Location, opts ...Option) (time.Time, error) {
	if t, ok := parseUnixDigits(datestr); ok {
		return t, nil
	}
	d, err := Parse(datestr, opts...)
	if err != nil {
		return time.Time{}, err
	}
	return d.In(loc), nil
}

// parseUnixDigits treats all-digit strings of epoch widths as Unix
// timestamps: 10 digits of seconds, 13 of milliseconds, 16 of
// microseconds, 19 of nanoseconds.
func parseUnixDigits(datestr string) (time.Time, bool) {
	switch len(datestr) {
	case 10, 13, 16, 19:
	default:
		return time.Time{}, false
	}
	for i := 0; i < len(datestr); i++ {
		if datestr[i] < '0' || datestr[i] > '9' {
			return time.Time{}, false
		}
	}
	v, err := strconv.ParseInt(datestr, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	switch len(datestr) {
	case 10:
		return time.Unix(v, 0), true
	case 13:
		return time.Unix(0, v*int64(time.Millisecond)), true
	case 16:
		return time.Unix(0, v*int64(time.Microsecond)), true
	default:
		return time.Unix(0, v), true
	}
}
