package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenKind int

const (
	Word TokenKind = iota
	QuotedString
)

// Token is a positioned lexeme from the player's input. Start and End are
// byte offsets into the original string; End is exclusive. Value is the
// normalised form (lowercased for words, unescaped content for quoted
// strings); Original is the source span with casing intact.
type Token struct {
	Kind     TokenKind
	Value    string
	Original string
	Start    int
	End      int
}

func isWordChar(r rune) bool {
	if r >= 0x80 {
		return true
	}
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func isTrailingPunct(b byte) bool {
	switch b {
	case '.', ',', '!', '?', ';', ':':
		return true
	}
	return false
}

// Tokenize splits input into word and quoted-string tokens. It never
// fails: unterminated quotes run to end of input, stray punctuation is
// skipped, and empty input yields no tokens.
func Tokenize(input string) []Token {
	var tokens []Token
	i := 0
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '"' || r == '\'':
			tok, next := scanQuoted(input, i, byte(r))
			tokens = append(tokens, tok)
			i = next
		case isWordChar(r):
			tok, next := scanWord(input, i)
			tokens = append(tokens, tok)
			i = next
		default:
			i += size
		}
	}
	return tokens
}

func scanQuoted(input string, start int, quote byte) (Token, int) {
	var b strings.Builder
	i := start + 1
	for i < len(input) {
		c := input[i]
		if c == '\\' && i+1 < len(input) {
			next := input[i+1]
			if next == quote || next == '\\' {
				b.WriteByte(next)
				i += 2
				continue
			}
			// Unknown escape: keep the backslash literally.
			b.WriteByte(c)
			i++
			continue
		}
		if c == quote {
			i++
			return Token{
				Kind:     QuotedString,
				Value:    b.String(),
				Original: input[start:i],
				Start:    start,
				End:      i,
			}, i
		}
		b.WriteByte(c)
		i++
	}
	// No closing quote: the value is everything after the opening quote,
	// escapes and all.
	return Token{
		Kind:     QuotedString,
		Value:    input[start+1:],
		Original: input[start:],
		Start:    start,
		End:      len(input),
	}, len(input)
}

func scanWord(input string, start int) (Token, int) {
	i := start
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		if !isWordChar(r) {
			break
		}
		i += size
	}
	end := i
	value := strings.ToLower(input[start:end])
	for len(value) > 0 && isTrailingPunct(value[len(value)-1]) {
		value = value[:len(value)-1]
		end--
	}
	return Token{
		Kind:     Word,
		Value:    value,
		Original: input[start:end],
		Start:    start,
		End:      end,
	}, i
}
