package extract

import (
	"strings"
	"unicode/utf8"
)

// extractPlain returns content as a string. Byte sequences that are not
// valid UTF-8 are dropped rather than failing the read.
func extractPlain(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return strings.ToValidUTF8(string(content), ""), nil
	}
	return string(content), nil
}
