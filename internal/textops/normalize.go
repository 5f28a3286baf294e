// Package textops provides the pure text transformations behind the moji
// tools: normalization, word frequency counting, palindrome testing, and the
// Caesar cipher. All functions are stateless and safe for concurrent use.
package textops

import (
	"strings"
	"unicode"
)

// asciiPunct is the punctuation set replaced during normalization. This is
// exactly ASCII punctuation; Unicode punctuation outside it passes through.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize lowercases text and replaces every ASCII punctuation character
// with a single space. Splitting the result on whitespace runs yields the
// word sequence used for frequency counting. Normalize is idempotent.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 && strings.ContainsRune(asciiPunct, r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Tokens returns the words of text: maximal runs of characters that survive
// normalization, in input order. Empty tokens are discarded.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}
