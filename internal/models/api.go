// Package models defines the value and API types shared by the CLI and the
// HTTP server.
package models

import (
	"strings"

	"github.com/hyperjump/moji/internal/textops"
)

// FrequencyReport is the result of analyzing one document or text input.
type FrequencyReport struct {
	// Source is the analyzed file path; empty for raw text input.
	Source      string `json:"source,omitempty"`
	TotalWords  int    `json:"total_words"`
	UniqueWords int    `json:"unique_words"`
	// NoText marks a document that extracted successfully but held no text
	// (e.g. a scanned PDF). Distinct from a text that normalizes to no words.
	NoText bool                `json:"no_text,omitempty"`
	Words  []textops.WordCount `json:"words"`
}

// NewFrequencyReport builds a report for the given source and word counts.
func NewFrequencyReport(source string, words []textops.WordCount) *FrequencyReport {
	return &FrequencyReport{
		Source:      source,
		TotalWords:  textops.TotalCount(words),
		UniqueWords: len(words),
		Words:       words,
	}
}

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// PalindromeRequest is the body of POST /api/v1/palindrome.
type PalindromeRequest struct {
	Text string `json:"text"`
}

// PalindromeResponse reports the palindrome test result.
type PalindromeResponse struct {
	Text       string `json:"text"`
	Palindrome bool   `json:"palindrome"`
}

// Shift is an integer Caesar shift that unmarshals from a JSON number or a
// numeric string, matching what an HTML form field submits. Anything that is
// not an integer fails with textops.ErrInvalidShift before any
// transformation runs.
type Shift int

// UnmarshalJSON implements json.Unmarshaler.
func (s *Shift) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	n, err := textops.ParseShift(raw)
	if err != nil {
		return err
	}
	*s = Shift(n)
	return nil
}

// CaesarRequest is the body of POST /api/v1/caesar.
type CaesarRequest struct {
	Text    string `json:"text"`
	Shift   Shift  `json:"shift"`
	Decrypt bool   `json:"decrypt,omitempty"`
}

// CaesarResponse carries the transformed text.
type CaesarResponse struct {
	Result string `json:"result"`
}
