// Package extract provides plain-text extraction from the document formats
// moji understands: plain text (.txt, .md, .log, .csv), HTML, DOCX, PDF, and
// PPTX. Images and image-only content are ignored, so a scanned PDF yields
// empty text rather than an error.
package extract

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrUnsupportedFormat is wrapped into the error returned for any extension
// outside the recognized set. Callers use errors.Is to tell an unsupported
// file apart from an extraction failure.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// Extractor extracts plain text from document files.
type Extractor struct {
	maxFileSize int64
	logger      *zap.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithMaxFileSize refuses files larger than n bytes before reading them.
// Zero means no limit.
func WithMaxFileSize(n int64) ExtractorOption {
	return func(e *Extractor) { e.maxFileSize = n }
}

// WithLogger enables debug logging of extractions.
func WithLogger(logger *zap.Logger) ExtractorOption {
	return func(e *Extractor) { e.logger = logger }
}

// NewExtractor returns a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Supported reports whether ext (with leading dot, any case) is in the
// recognized extension set.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".txt", ".md", ".log", ".csv", ".html", ".htm", ".docx", ".pdf", ".pptx":
		return true
	}
	return false
}

// Extract reads the file at path and returns its plain-text content. The
// format is chosen by the file extension, compared case-insensitively, so
// report.TXT and report.txt are routed the same way. An empty result with a
// nil error means the document holds no extractable text (e.g. an image-only
// PDF) and is the caller's signal to report "no text found".
func (e *Extractor) Extract(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(ext) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if e.maxFileSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("stat file: %w", err)
		}
		if info.Size() > e.maxFileSize {
			return "", fmt.Errorf("file too large: %d bytes (limit %d)", info.Size(), e.maxFileSize)
		}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	text, err := e.ExtractBytes(content, ext)
	if err != nil {
		return "", err
	}
	if e.logger != nil {
		e.logger.Debug("extracted text",
			zap.String("path", path),
			zap.String("ext", ext),
			zap.Int("chars", len(text)))
	}
	return text, nil
}

// ExtractBytes extracts text from content based on the given extension.
// ext should include the leading dot (e.g. ".pdf"); case is ignored.
func (e *Extractor) ExtractBytes(content []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".txt", ".md", ".log", ".csv":
		return extractPlain(content)
	case ".html", ".htm":
		return extractHTML(content)
	case ".docx":
		return extractDOCX(content)
	case ".pdf":
		return extractPDF(content)
	case ".pptx":
		return extractPPTX(content)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, strings.ToLower(ext))
	}
}

// readZipEntry reads one file out of a zip archive.
func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Name, err)
	}
	return data, nil
}

// readZipFile returns the contents of the named entry, or nil if absent.
func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			return readZipEntry(f)
		}
	}
	return nil, nil
}
