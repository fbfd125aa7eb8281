package datelex

import "unicode/utf8"

// prefixLength is how many characters of a scanned word are kept for
// keyword matching.
const prefixLength = 3

// maxSignificantDigits bounds the value of a numeral. Longer digit runs
// are consumed in full but the extra digits do not contribute.
const maxSignificantDigits = 9

// input is a one-rune cursor over a date string. The cursor rune is 0
// once the end is reached, which no date character ever is, so every
// classifier below is safe to call without an end check. The conditional
// skips leave the cursor untouched when they fail.
type input struct {
	str     string
	off     int // byte offset of the rune after ch
	pos     int // runes consumed so far
	ch      rune
	isSpace func(rune) bool
}

func newInput(str string, isSpace func(rune) bool) *input {
	in := &input{str: str, isSpace: isSpace}
	in.next()
	return in
}

func (in *input) next() {
	if in.off < len(in.str) {
		r, w := utf8.DecodeRuneInString(in.str[in.off:])
		in.ch = r
		in.off += w
	} else {
		in.ch = 0
	}
	in.pos++
}

// position counts consumed runes and is what token lengths are made of.
func (in *input) position() int { return in.pos }

// readNumeral consumes a maximal digit run and returns its value, keeping
// at most maxSignificantDigits of it.
func (in *input) readNumeral() int {
	n := 0
	digits := 0
	for in.isDigit() {
		if digits < maxSignificantDigits {
			n = n*10 + int(in.ch-'0')
		}
		digits++
		in.next()
	}
	return n
}

// readWord consumes a maximal run of word characters, writing the
// lowercased first prefixLength of them into prefix and zero-padding the
// rest. It returns the full length of the word, which may exceed the
// prefix.
func (in *input) readWord(prefix *[prefixLength]rune) int {
	length := 0
	for ; in.isWordChar(); in.next() {
		if length < prefixLength {
			prefix[length] = lowerASCII(in.ch)
		}
		length++
	}
	for i := length; i < prefixLength; i++ {
		prefix[i] = 0
	}
	return length
}

func (in *input) skipWhitespace() bool {
	if in.isSpace(in.ch) {
		in.next()
		return true
	}
	return false
}

// skip consumes the cursor rune only when it is c.
func (in *input) skip(c rune) bool {
	if in.ch == c {
		in.next()
		return true
	}
	return false
}

// skipParens consumes a parenthesized comment starting at the cursor,
// balancing nested parentheses. An unbalanced comment runs to the end of
// the input.
func (in *input) skipParens() bool {
	if !in.skip('(') {
		return false
	}
	balance := 1
	for !in.isEnd() {
		if in.ch == ')' {
			balance--
		} else if in.ch == '(' {
			balance++
		}
		in.next()
		if balance <= 0 {
			break
		}
	}
	return true
}

func (in *input) isEnd() bool   { return in.ch == 0 }
func (in *input) isDigit() bool { return in.ch >= '0' && in.ch <= '9' }
func (in *input) isSign() bool  { return in.ch == '+' || in.ch == '-' }

// signValue is +1 at a '+' and -1 at a '-'.
func (in *input) signValue() int {
	if in.ch == '+' {
		return 1
	}
	return -1
}

// isWordChar admits ASCII letters and everything above them, so month
// names survive exotic spellings without the table ever matching one.
func (in *input) isWordChar() bool { return in.ch >= 'A' }

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
