package datelex

// tokenizer turns an input into tokens with one token of lookahead, which
// is all either parse strategy ever needs.
type tokenizer struct {
	in        *input
	lookahead token
}

func newTokenizer(in *input) *tokenizer {
	t := &tokenizer{in: in}
	t.lookahead = t.scan()
	return t
}

// peek returns the lookahead token without consuming it.
func (t *tokenizer) peek() token { return t.lookahead }

// next consumes and returns the lookahead token. Past the end of input it
// keeps returning EndOfInput.
func (t *tokenizer) next() token {
	tok := t.lookahead
	t.lookahead = t.scan()
	return tok
}

// skipSymbol consumes the lookahead only when it is the symbol c.
func (t *tokenizer) skipSymbol(c rune) bool {
	if t.lookahead.isSymbol(c) {
		t.lookahead = t.scan()
		return true
	}
	return false
}

// scan produces the next token. Parenthesized comments are consumed here
// and never surface as tokens. Whitespace is folded into one token per
// run.
func (t *tokenizer) scan() token {
	for {
		pre := t.in.position()
		switch {
		case t.in.isEnd():
			return endOfInputToken()
		case t.in.isDigit():
			value := t.in.readNumeral()
			return numberToken(value, t.in.position()-pre)
		case t.in.isWordChar():
			var prefix [prefixLength]rune
			length := t.in.readWord(&prefix)
			if kw, ok := lookupKeyword(prefix, length); ok {
				return keywordToken(kw.kind, kw.value, length)
			}
			return unknownToken(length)
		case t.in.skipWhitespace():
			for t.in.skipWhitespace() {
			}
			return whitespaceToken(t.in.position() - pre)
		case t.in.skipParens():
			continue
		default:
			c := t.in.ch
			t.in.next()
			return symbolToken(c)
		}
	}
}
