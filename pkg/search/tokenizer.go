package search

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Token string

type TokenList []Token

func (t *TokenList) AddToken(token Token) {
	if slices.Contains(*t, token) {
		return
	}
	*t = append(*t, token)
}

// Normalizer folds case and, optionally, strips diacritics so "Café" and
// "cafe" compare equal.
type Normalizer struct {
	FoldDiacritics bool
}

func (n Normalizer) Normalize(text string) string {
	folded := cases.Fold().String(text)
	if !n.FoldDiacritics {
		return folded
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, folded)
	if err != nil {
		return folded
	}
	return result
}

// NormalizeWord keeps letters and digits of a single word, normalized.
func (n Normalizer) NormalizeWord(word string) Token {
	ret := make([]rune, 0, len(word))
	for _, r := range n.Normalize(word) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			ret = append(ret, r)
		}
	}
	return Token(ret)
}

func isSeparator(chr rune) bool {
	return unicode.IsSpace(chr) || strings.ContainsRune(",:.!?;()[]{}\"'/|", chr)
}

func SplitWords(text string, onWord func(word string, count int, last bool) bool) {
	count := 0
	lastSplit := 0
	for idx, chr := range text {
		if isSeparator(chr) {
			if idx > lastSplit {
				if !onWord(text[lastSplit:idx], count, false) {
					return
				}
				count++
			}
			lastSplit = idx + len(string(chr))
		}
	}
	if lastSplit < len(text) {
		onWord(text[lastSplit:], count, true)
	}
}

type Tokenizer struct {
	MaxTokens  int
	Normalizer Normalizer
}

// Tokenize splits text into unique normalized tokens in order of first appearance.
func (t *Tokenizer) Tokenize(text string) TokenList {
	res := TokenList{}
	SplitWords(text, func(word string, count int, last bool) bool {
		normalized := t.Normalizer.NormalizeWord(word)
		if len(normalized) > 0 {
			res.AddToken(normalized)
		}
		return t.MaxTokens <= 0 || len(res) < t.MaxTokens
	})
	return res
}
