package textops

import "sort"

// WordCount is one row of a frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Frequencies tokenizes text and returns word counts sorted by count
// descending. Ties keep first-occurrence order; the rendered table order is
// observable, so the sort must be stable. Text with no words returns an
// empty slice.
func Frequencies(text string) []WordCount {
	words := Tokens(text)
	index := make(map[string]int, len(words))
	counts := make([]WordCount, 0, len(words))
	for _, w := range words {
		if i, ok := index[w]; ok {
			counts[i].Count++
			continue
		}
		index[w] = len(counts)
		counts = append(counts, WordCount{Word: w, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// TotalCount returns the sum of all counts, which equals the number of
// tokens in the analyzed text.
func TotalCount(counts []WordCount) int {
	total := 0
	for _, wc := range counts {
		total += wc.Count
	}
	return total
}
