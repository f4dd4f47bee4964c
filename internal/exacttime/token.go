package exacttime

import (
	"strconv"
	"strings"
	"unicode"
)

type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenNumber
	TokenPunct
)

// Token is one unit of the input text. Start and Stop are byte offsets into
// the original string, so matched spans can be cut back out verbatim.
type Token struct {
	Kind  TokenKind
	Raw   string
	Norm  string // lowercased, ё folded, reduced to a lemma when known
	Value int    // parsed integer for TokenNumber, -1 otherwise
	Start int
	Stop  int
}

// Tokenize splits text into word, number and punctuation tokens. Whitespace
// only separates tokens. Unrecognized characters become punctuation tokens,
// never errors; out-of-range numbers are still number tokens — range checks
// belong to the grammar.
func Tokenize(text string) []Token {
	var toks []Token
	runes := []rune(text)
	pos := 0 // byte offset of runes[i]

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			pos += len(string(r))
			i++
		case unicode.IsDigit(r):
			start := pos
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				pos += len(string(runes[j]))
				j++
			}
			raw := string(runes[i:j])
			value := -1
			if v, err := strconv.Atoi(raw); err == nil {
				value = v
			}
			toks = append(toks, Token{
				Kind:  TokenNumber,
				Raw:   raw,
				Norm:  raw,
				Value: value,
				Start: start,
				Stop:  pos,
			})
			i = j
		case unicode.IsLetter(r):
			start := pos
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				pos += len(string(runes[j]))
				j++
			}
			raw := string(runes[i:j])
			toks = append(toks, Token{
				Kind:  TokenWord,
				Raw:   raw,
				Norm:  normalize(raw),
				Value: -1,
				Start: start,
				Stop:  pos,
			})
			i = j
		default:
			start := pos
			pos += len(string(r))
			raw := string(r)
			toks = append(toks, Token{
				Kind:  TokenPunct,
				Raw:   raw,
				Norm:  raw,
				Value: -1,
				Start: start,
				Stop:  pos,
			})
			i++
		}
	}

	return toks
}

// normalize case-folds a word and reduces inflected forms of the temporal
// vocabulary to their lemma, so dictionary lookups are morphology-insensitive.
func normalize(word string) string {
	w := strings.ToLower(word)
	w = strings.ReplaceAll(w, "ё", "е")
	if lemma, ok := lemmas[w]; ok {
		return lemma
	}
	return w
}
