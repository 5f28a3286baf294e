package extract

import "regexp"

// htmlTag matches one tag, the shortest span between < and >. Entity
// references (&amp; etc.) are not tags and stay in the output.
var htmlTag = regexp.MustCompile(`<[^>]+>`)

// extractHTML strips markup from HTML bytes. Each tag is replaced with one
// space so text nodes from adjacent elements stay separate words.
func extractHTML(content []byte) (string, error) {
	text, err := extractPlain(content)
	if err != nil {
		return "", err
	}
	return htmlTag.ReplaceAllString(text, " "), nil
}
