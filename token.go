package datelex

// tokenKind discriminates the units the tokenizer produces.
type tokenKind int8

const (
	tokenInvalid tokenKind = iota
	tokenUnknown
	tokenWhitespace
	tokenNumber
	tokenSymbol
	tokenKeyword
	tokenEndOfInput
)

// keywordType categorizes keyword tokens.
type keywordType int8

const (
	keywordNone keywordType = iota
	keywordMonthName
	keywordTimeZoneName
	keywordTimeSeparator
	keywordAmPm
)

// token is one lexical unit of a date string. value and length are read
// per kind: a number carries its value and digit count, a symbol its
// rune, a keyword its table payload and word length.
type token struct {
	kind    tokenKind
	keyword keywordType
	value   int
	length  int
}

func numberToken(value, length int) token {
	return token{kind: tokenNumber, value: value, length: length}
}

func symbolToken(c rune) token {
	return token{kind: tokenSymbol, value: int(c), length: 1}
}

func keywordToken(kt keywordType, value, length int) token {
	return token{kind: tokenKeyword, keyword: kt, value: value, length: length}
}

func whitespaceToken(length int) token {
	return token{kind: tokenWhitespace, value: -1, length: length}
}

func unknownToken(length int) token {
	return token{kind: tokenUnknown, value: -1, length: length}
}

func endOfInputToken() token { return token{kind: tokenEndOfInput, value: -1} }

func invalidToken() token { return token{kind: tokenInvalid, value: -1} }

func (t token) isInvalid() bool    { return t.kind == tokenInvalid }
func (t token) isNumber() bool     { return t.kind == tokenNumber }
func (t token) isWhitespace() bool { return t.kind == tokenWhitespace }
func (t token) isEndOfInput() bool { return t.kind == tokenEndOfInput }

func (t token) isSymbol(c rune) bool {
	return t.kind == tokenSymbol && t.value == int(c)
}

func (t token) isKeyword(kt keywordType) bool {
	return t.kind == tokenKeyword && t.keyword == kt
}

// isFixedLengthNumber reports a number written with exactly length digits,
// which is how the year-first format is told apart from everything else.
func (t token) isFixedLengthNumber(length int) bool {
	return t.kind == tokenNumber && t.length == length
}

func (t token) isSign() bool {
	return t.kind == tokenSymbol && (t.value == '+' || t.value == '-')
}

// signValue returns +1 for a "+" token and -1 for a "-" token.
func (t token) signValue() int {
	if t.value == '+' {
		return 1
	}
	return -1
}

// isKeywordZ reports the single-letter UTC designator.
func (t token) isKeywordZ() bool {
	return t.isKeyword(keywordTimeZoneName) && t.length == 1 && t.value == 0
}
