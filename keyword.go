package datelex

// keyword is one table entry: its category and payload. Month values are
// 0-based month numbers, timezone values are UTC offsets in minutes, and
// meridiem values are the hour adjustment (0 for AM, 12 for PM).
type keyword struct {
	kind  keywordType
	value int
}

// keywords maps the zero-padded lowercase prefix of a word to its entry.
// Prefixes are unique, so "january" and "jan" land on the same key while
// "ut" and "utc" stay distinct entries.
var keywords = map[[prefixLength]rune]keyword{
	{'j', 'a', 'n'}: {keywordMonthName, 0},
	{'f', 'e', 'b'}: {keywordMonthName, 1},
	{'m', 'a', 'r'}: {keywordMonthName, 2},
	{'a', 'p', 'r'}: {keywordMonthName, 3},
	{'m', 'a', 'y'}: {keywordMonthName, 4},
	{'j', 'u', 'n'}: {keywordMonthName, 5},
	{'j', 'u', 'l'}: {keywordMonthName, 6},
	{'a', 'u', 'g'}: {keywordMonthName, 7},
	{'s', 'e', 'p'}: {keywordMonthName, 8},
	{'o', 'c', 't'}: {keywordMonthName, 9},
	{'n', 'o', 'v'}: {keywordMonthName, 10},
	{'d', 'e', 'c'}: {keywordMonthName, 11},

	{'a', 'm', 0}: {keywordAmPm, 0},
	{'p', 'm', 0}: {keywordAmPm, 12},

	{'u', 't', 0}:   {keywordTimeZoneName, 0},
	{'u', 't', 'c'}: {keywordTimeZoneName, 0},
	{'z', 0, 0}:     {keywordTimeZoneName, 0},
	{'g', 'm', 't'}: {keywordTimeZoneName, 0},
	{'c', 'd', 't'}: {keywordTimeZoneName, -5 * 60},
	{'c', 's', 't'}: {keywordTimeZoneName, -6 * 60},
	{'e', 'd', 't'}: {keywordTimeZoneName, -4 * 60},
	{'e', 's', 't'}: {keywordTimeZoneName, -5 * 60},
	{'m', 'd', 't'}: {keywordTimeZoneName, -6 * 60},
	{'m', 's', 't'}: {keywordTimeZoneName, -7 * 60},
	{'p', 'd', 't'}: {keywordTimeZoneName, -7 * 60},
	{'p', 's', 't'}: {keywordTimeZoneName, -8 * 60},

	{'t', 0, 0}: {keywordTimeSeparator, 0},
}

// lookupKeyword resolves a scanned word by its lowercase prefix and full
// length. A word longer than its table prefix only matches month names:
// "september" is a month, "utcx" is not a timezone.
func lookupKeyword(prefix [prefixLength]rune, length int) (keyword, bool) {
	kw, ok := keywords[prefix]
	if !ok {
		return keyword{}, false
	}
	if length > prefixLength && kw.kind != keywordMonthName {
		return keyword{}, false
	}
	return kw, true
}
