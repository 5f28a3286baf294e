package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// docxDocumentXMLPath is the default path to the main document body inside a .docx zip.
const docxDocumentXMLPath = "word/document.xml"

// contentTypesPath is the path to [Content_Types].xml in OOXML packages.
const contentTypesPath = "[Content_Types].xml"

// docxMainContentType is the content type for the main document in DOCX files.
const docxMainContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"

// wpBlock matches one <w:p>...</w:p> paragraph, attributes allowed.
// Paragraphs do not nest in WordprocessingML, so a non-greedy span is safe.
var wpBlock = regexp.MustCompile(`(?s)<w:p(?:\s[^>]*)?>.*?</w:p>`)

// wtTag matches <w:t>text</w:t> with any attributes (e.g. xml:space="preserve").
var wtTag = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// partNameRe extracts PartName from the main-document Override in
// [Content_Types].xml; partNameRe2 handles ContentType appearing first.
var (
	partNameRe  = regexp.MustCompile(`<Override[^>]+PartName="([^"]+)"[^>]+ContentType="` + regexp.QuoteMeta(docxMainContentType) + `"`)
	partNameRe2 = regexp.MustCompile(`<Override[^>]+ContentType="` + regexp.QuoteMeta(docxMainContentType) + `"[^>]+PartName="([^"]+)"`)
)

// findDocxMainDocumentPath reads [Content_Types].xml to locate the main
// document part. Returns the path without leading slash, or "" if not found.
func findDocxMainDocumentPath(zr *zip.Reader) string {
	data, err := readZipFile(zr, contentTypesPath)
	if err != nil || data == nil {
		return ""
	}
	content := string(data)
	if m := partNameRe.FindStringSubmatch(content); len(m) > 1 {
		return strings.TrimPrefix(m[1], "/")
	}
	if m := partNameRe2.FindStringSubmatch(content); len(m) > 1 {
		return strings.TrimPrefix(m[1], "/")
	}
	return ""
}

// extractDOCX returns the paragraph text of .docx bytes, one paragraph per
// line, empty paragraphs skipped. DOCX is a ZIP holding WordprocessingML;
// the main part is word/document.xml unless [Content_Types].xml says
// otherwise. Run text (<w:t>) is concatenated within each paragraph so
// formatting boundaries do not split words.
func extractDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("extract DOCX: not a zip: %w", err)
	}
	docPath := findDocxMainDocumentPath(zr)
	if docPath == "" {
		docPath = docxDocumentXMLPath
	}
	docXML, err := readZipFile(zr, docPath)
	if err != nil {
		return "", fmt.Errorf("extract DOCX: %w", err)
	}
	if docXML == nil {
		return "", fmt.Errorf("extract DOCX: %s not found", docPath)
	}

	var paragraphs []string
	for _, block := range wpBlock.FindAllString(string(docXML), -1) {
		var b strings.Builder
		for _, run := range wtTag.FindAllStringSubmatch(block, -1) {
			b.WriteString(run[1])
		}
		if p := b.String(); strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}
