package datelex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookup(word string) (keyword, bool) {
	in := testInput(word)
	var prefix [prefixLength]rune
	length := in.readWord(&prefix)
	return lookupKeyword(prefix, length)
}

func TestKeywordMonths(t *testing.T) {
	for i, name := range []string{"jan", "feb", "mar", "apr", "may", "jun",
		"jul", "aug", "sep", "oct", "nov", "dec"} {
		kw, ok := lookup(name)
		assert.Equal(t, true, ok, name)
		assert.Equal(t, keywordMonthName, kw.kind, name)
		assert.Equal(t, i, kw.value, name)
	}

	// Longer spellings match on their prefix, case insensitively.
	for _, name := range []string{"January", "SEPTEMBER", "sept", "Octob", "decembery"} {
		kw, ok := lookup(name)
		assert.Equal(t, true, ok, name)
		assert.Equal(t, keywordMonthName, kw.kind, name)
	}
}

func TestKeywordZones(t *testing.T) {
	for name, offset := range map[string]int{
		"ut": 0, "utc": 0, "z": 0, "gmt": 0,
		"est": -5 * 60, "edt": -4 * 60,
		"cst": -6 * 60, "cdt": -5 * 60,
		"mst": -7 * 60, "mdt": -6 * 60,
		"pst": -8 * 60, "pdt": -7 * 60,
	} {
		kw, ok := lookup(name)
		assert.Equal(t, true, ok, name)
		assert.Equal(t, keywordTimeZoneName, kw.kind, name)
		assert.Equal(t, offset, kw.value, name)
	}
}

func TestKeywordLength(t *testing.T) {
	// Only month names may run past their prefix.
	_, ok := lookup("utcx")
	assert.Equal(t, false, ok)
	_, ok = lookup("gmtoffset")
	assert.Equal(t, false, ok)

	kw, ok := lookup("t")
	assert.Equal(t, true, ok)
	assert.Equal(t, keywordTimeSeparator, kw.kind)
	_, ok = lookup("tx")
	assert.Equal(t, false, ok)
}

func TestKeywordMeridiem(t *testing.T) {
	kw, ok := lookup("am")
	assert.Equal(t, true, ok)
	assert.Equal(t, keywordAmPm, kw.kind)
	assert.Equal(t, 0, kw.value)

	kw, ok = lookup("PM")
	assert.Equal(t, true, ok)
	assert.Equal(t, keywordAmPm, kw.kind)
	assert.Equal(t, 12, kw.value)
}

func TestKeywordUnknown(t *testing.T) {
	for _, name := range []string{"monday", "at", "th", "nd", "年", "xyz"} {
		_, ok := lookup(name)
		assert.Equal(t, false, ok, name)
	}
}
