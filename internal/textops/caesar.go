package textops

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidShift is returned by ParseShift when the input is not an integer.
var ErrInvalidShift = errors.New("shift must be an integer")

// NormalizeShift reduces shift into [0, 26). Negative shifts and shifts past
// 25 are valid and wrap around the alphabet.
func NormalizeShift(shift int) int {
	return (shift%26 + 26) % 26
}

// ParseShift parses a shift value from user input. Surrounding whitespace is
// trimmed; anything that is not an integer fails with ErrInvalidShift.
func ParseShift(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidShift
	}
	return n, nil
}

// Caesar rotates every ASCII letter of text by shift positions within its
// case's 26-letter alphabet. Digits, punctuation, whitespace, and non-ASCII
// characters pass through unchanged in place. The shift is normalized first,
// so any integer is accepted; decryption is Caesar(t, -shift) and
// Caesar(t, s) == Caesar(t, s+26) for all s.
func Caesar(text string, shift int) string {
	k := rune(NormalizeShift(shift))
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + (r-'a'+k)%26)
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + (r-'A'+k)%26)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
