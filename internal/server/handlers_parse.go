package server

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/KingSharif1/resume-sub000/internal/pipeline"
	"github.com/KingSharif1/resume-sub000/internal/types"
)

// handleParse accepts a multipart upload in the "file" field and returns
// the parse result envelope. Unsupported types are rejected with 400
// before any extraction runs.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if s.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("reading upload failed", "filename", header.Filename, "error", err)
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	mimeType := uploadMimeType(header.Header.Get("Content-Type"), header.Filename)
	if !types.IsSupportedMime(mimeType) {
		s.errorResponse(w, http.StatusBadRequest, pipeline.MsgUnsupportedType)
		return
	}

	result := s.parser.Parse(r.Context(), header.Filename, mimeType, data)
	if !result.Success {
		s.jsonResponse(w, http.StatusInternalServerError, result)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// uploadMimeType resolves the effective MIME type of an upload. The part
// header wins when present; browsers that send a generic type fall back
// to the file extension.
func uploadMimeType(contentType, filename string) string {
	contentType = strings.TrimSpace(contentType)
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if types.IsSupportedMime(contentType) {
		return contentType
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return types.MimePDF
	case ".docx":
		return types.MimeDOCX
	}
	return contentType
}
