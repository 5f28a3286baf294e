package textops

import "testing"

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"classic sentence", "A man, a plan, a canal: Panama", true},
		{"simple word", "racecar", true},
		{"not a palindrome", "hello", false},
		{"case ignored", "Noon", true},
		{"digits included", "12321", true},
		{"digits not symmetric", "12345", false},
		{"mixed alphanumeric", "1a2b2a1", true},
		{"punctuation ignored", "Was it a car or a cat I saw?", true},
		{"single character", "x", true},
		{"empty is trivially true", "", true},
		{"whitespace only is trivially true", "   ", true},
		{"punctuation only is trivially true", "?!", true},
		{"unicode letters", "réssér", true},
		{"two different characters", "ab", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsPalindrome(tt.input)
			if got != tt.expected {
				t.Errorf("IsPalindrome(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// reverse is a test helper for the symmetry property below.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func TestIsPalindrome_symmetricUnderReversal(t *testing.T) {
	inputs := []string{
		"A man, a plan, a canal: Panama",
		"hello",
		"race car!",
		"12321",
		"",
	}
	for _, in := range inputs {
		if IsPalindrome(in) != IsPalindrome(reverse(in)) {
			t.Errorf("IsPalindrome(%q) != IsPalindrome(reverse) — should be symmetric", in)
		}
	}
}
