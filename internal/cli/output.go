// Package cli provides output formatting for the moji command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/moji/internal/models"
)

// OutputFormat selects how CLI results are rendered.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// countColumnPad is how far past the longest word the count column starts.
const countColumnPad = 30

// WriteFrequencyReport writes the report to w in the given format. Text mode
// renders an aligned "word ..... count" table; the dotted column keeps counts
// readable in a monospace terminal.
func WriteFrequencyReport(w io.Writer, report *models.FrequencyReport, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	writeFrequencyReportText(w, report)
	return nil
}

func writeFrequencyReportText(w io.Writer, report *models.FrequencyReport) {
	if report.Source != "" {
		fmt.Fprintf(w, "Word frequency for file: %s\n\n", report.Source)
	}
	if report.NoText {
		fmt.Fprintln(w, "No text found in document.")
		return
	}
	if len(report.Words) == 0 {
		fmt.Fprintln(w, "No words found after processing.")
		return
	}
	maxWordLen := 0
	for _, wc := range report.Words {
		if len(wc.Word) > maxWordLen {
			maxWordLen = len(wc.Word)
		}
	}
	countColumn := maxWordLen + countColumnPad
	for _, wc := range report.Words {
		dots := countColumn - len(wc.Word) - 1
		if dots < 1 {
			dots = 1
		}
		fmt.Fprintf(w, "%s %s %d\n", wc.Word, strings.Repeat(".", dots), wc.Count)
	}
}

// WritePalindromeResult writes a palindrome verdict to w.
func WritePalindromeResult(w io.Writer, resp *models.PalindromeResponse, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	if resp.Palindrome {
		fmt.Fprintln(w, "Palindrome")
	} else {
		fmt.Fprintln(w, "Not a palindrome")
	}
	return nil
}
