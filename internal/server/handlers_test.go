package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyperjump/moji/internal/config"
	"github.com/hyperjump/moji/internal/extract"
	"github.com/hyperjump/moji/internal/models"
	"go.uber.org/zap"
)

func newTestServer() *Server {
	return NewServer(extract.NewExtractor(), config.Default(), zap.NewNop())
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze(t *testing.T) {
	rec := postJSON(t, newTestServer().routes(), "/api/v1/analyze", `{"text":"the cat and the dog"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var report models.FrequencyReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.TotalWords != 5 || report.UniqueWords != 4 {
		t.Errorf("report = %+v", report)
	}
	if report.Words[0].Word != "the" || report.Words[0].Count != 2 {
		t.Errorf("first word = %+v, want the 2", report.Words[0])
	}
}

func TestHandleAnalyze_blankText(t *testing.T) {
	rec := postJSON(t, newTestServer().routes(), "/api/v1/analyze", `{"text":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleAnalyze_invalidBody(t *testing.T) {
	rec := postJSON(t, newTestServer().routes(), "/api/v1/analyze", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlePalindrome(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"A man, a plan, a canal: Panama", true},
		{"hello", false},
	}
	handler := newTestServer().routes()
	for _, tt := range tests {
		body, _ := json.Marshal(models.PalindromeRequest{Text: tt.text})
		rec := postJSON(t, handler, "/api/v1/palindrome", string(body))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d for %q", rec.Code, tt.text)
		}
		var resp models.PalindromeResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Palindrome != tt.want {
			t.Errorf("palindrome(%q) = %v, want %v", tt.text, resp.Palindrome, tt.want)
		}
	}
}

func TestHandlePalindrome_blankText(t *testing.T) {
	rec := postJSON(t, newTestServer().routes(), "/api/v1/palindrome", `{"text":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleCaesar(t *testing.T) {
	handler := newTestServer().routes()

	rec := postJSON(t, handler, "/api/v1/caesar", `{"text":"abc","shift":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp models.CaesarResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result != "def" {
		t.Errorf("result = %q, want def", resp.Result)
	}

	rec = postJSON(t, handler, "/api/v1/caesar", `{"text":"def","shift":3,"decrypt":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result != "abc" {
		t.Errorf("decrypt result = %q, want abc", resp.Result)
	}
}

func TestHandleCaesar_stringShift(t *testing.T) {
	rec := postJSON(t, newTestServer().routes(), "/api/v1/caesar", `{"text":"xyz","shift":"3"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp models.CaesarResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result != "abc" {
		t.Errorf("result = %q, want abc", resp.Result)
	}
}

func TestHandleCaesar_invalidShift(t *testing.T) {
	rec := postJSON(t, newTestServer().routes(), "/api/v1/caesar", `{"text":"abc","shift":"nope"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "shift must be an integer") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleCaesar_blankText(t *testing.T) {
	rec := postJSON(t, newTestServer().routes(), "/api/v1/caesar", `{"text":" ","shift":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// uploadFile posts a multipart form with one file field.
func uploadFile(t *testing.T, handler http.Handler, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyzeFile(t *testing.T) {
	rec := uploadFile(t, newTestServer().routes(), "notes.txt", []byte("alpha beta alpha"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var report models.FrequencyReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Source != "notes.txt" || report.TotalWords != 3 {
		t.Errorf("report = %+v", report)
	}
	if report.Words[0].Word != "alpha" || report.Words[0].Count != 2 {
		t.Errorf("first word = %+v", report.Words[0])
	}
}

func TestHandleAnalyzeFile_unsupportedFormat(t *testing.T) {
	rec := uploadFile(t, newTestServer().routes(), "image.png", []byte{0x89, 0x50})
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d, want 415: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleAnalyzeFile_extractionFailure(t *testing.T) {
	rec := uploadFile(t, newTestServer().routes(), "broken.docx", []byte("not a zip"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleAnalyzeFile_emptyExtraction(t *testing.T) {
	// A whitespace-only document extracts fine but yields no text.
	rec := uploadFile(t, newTestServer().routes(), "blank.txt", []byte("   \n\t  "))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var report models.FrequencyReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !report.NoText {
		t.Errorf("NoText = false, want true: %+v", report)
	}
}

func TestHandleAnalyzeFile_missingField(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/file", strings.NewReader(""))
	rec := httptest.NewRecorder()
	newTestServer().routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newTestServer().routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
