package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// pptxSlideName matches ppt/slides/slideN.xml and captures N for ordering.
// Zip entry order is not guaranteed, so slides are sorted numerically.
var pptxSlideName = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// txBodyBlock matches one shape's text body. Text bodies do not nest.
var txBodyBlock = regexp.MustCompile(`(?s)<p:txBody>.*?</p:txBody>`)

// apBlock matches one <a:p> paragraph inside a text body.
var apBlock = regexp.MustCompile(`(?s)<a:p(?:\s[^>]*)?>.*?</a:p>`)

// atTag matches <a:t>text</a:t> with any attributes.
var atTag = regexp.MustCompile(`<a:t[^>]*>([^<]*)</a:t>`)

// extractPPTX returns the visible text of .pptx bytes: for each slide in
// numeric order, for each shape with a text body, paragraphs with their run
// text concatenated. Non-empty parts are joined with newlines. Shapes
// without text (pictures, charts) contribute nothing.
func extractPPTX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("extract PPTX: not a zip: %w", err)
	}
	type slideFile struct {
		num  int
		file *zip.File
	}
	var slides []slideFile
	for _, f := range zr.File {
		m := pptxSlideName.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideFile{num: n, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	var parts []string
	for _, s := range slides {
		data, err := readZipEntry(s.file)
		if err != nil {
			return "", fmt.Errorf("extract PPTX: %w", err)
		}
		for _, body := range txBodyBlock.FindAllString(string(data), -1) {
			var lines []string
			for _, para := range apBlock.FindAllString(body, -1) {
				var b strings.Builder
				for _, run := range atTag.FindAllStringSubmatch(para, -1) {
					b.WriteString(run[1])
				}
				if p := b.String(); strings.TrimSpace(p) != "" {
					lines = append(lines, p)
				}
			}
			if len(lines) > 0 {
				parts = append(parts, strings.Join(lines, "\n"))
			}
		}
	}
	return strings.Join(parts, "\n"), nil
}
