package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/hyperjump/moji/internal/extract"
	"github.com/hyperjump/moji/internal/models"
	"github.com/hyperjump/moji/internal/textops"
	"github.com/hyperjump/moji/pkg/utils"
	"go.uber.org/zap"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.respondError(w, http.StatusBadRequest, "text must not be blank")
		return
	}
	report := models.NewFrequencyReport("", textops.Frequencies(req.Text))
	s.logger.Debug("analyze request",
		zap.Int("total_words", report.TotalWords),
		zap.Int("unique_words", report.UniqueWords))
	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleAnalyzeFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.Extract.MaxFileSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "failed to read upload")
		return
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	text, err := s.extractor.ExtractBytes(content, ext)
	if errors.Is(err, extract.ErrUnsupportedFormat) {
		s.respondError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	if err != nil {
		s.logger.Warn("extraction failed", zap.String("filename", header.Filename), zap.Error(err))
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.logger.Debug("analyze file request",
		zap.String("filename", header.Filename),
		zap.String("preview", utils.Truncate(text, 80)))

	if strings.TrimSpace(text) == "" {
		// Extraction succeeded but the document holds no text (e.g. scanned
		// PDF). Not an error; the empty report says "no text found".
		report := models.NewFrequencyReport(header.Filename, nil)
		report.NoText = true
		s.respondJSON(w, http.StatusOK, report)
		return
	}
	report := models.NewFrequencyReport(header.Filename, textops.Frequencies(text))
	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) handlePalindrome(w http.ResponseWriter, r *http.Request) {
	var req models.PalindromeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.respondError(w, http.StatusBadRequest, "text must not be blank")
		return
	}
	s.respondJSON(w, http.StatusOK, &models.PalindromeResponse{
		Text:       req.Text,
		Palindrome: textops.IsPalindrome(req.Text),
	})
}

func (s *Server) handleCaesar(w http.ResponseWriter, r *http.Request) {
	var req models.CaesarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, textops.ErrInvalidShift) {
			s.respondError(w, http.StatusBadRequest, textops.ErrInvalidShift.Error())
			return
		}
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.respondError(w, http.StatusBadRequest, "text must not be blank")
		return
	}
	shift := int(req.Shift)
	if req.Decrypt {
		shift = -shift
	}
	s.respondJSON(w, http.StatusOK, &models.CaesarResponse{
		Result: textops.Caesar(req.Text, shift),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
