package textops

import "unicode"

// IsPalindrome reports whether s reads the same forwards and backwards after
// dropping everything but letters and digits (Unicode-aware) and folding
// case. A string with no alphanumeric characters is trivially a palindrome;
// callers reject blank input before asking.
func IsPalindrome(s string) bool {
	cleaned := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cleaned = append(cleaned, unicode.ToLower(r))
		}
	}
	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}
