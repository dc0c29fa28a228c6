// Package resume turns uploaded resume documents into raw text and guesses
// identity fields from it. Extraction failures are local: the caller keeps
// its state and retries with a corrected upload.
package resume

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat rejects anything that is not a PDF or DOCX upload.
var ErrUnsupportedFormat = errors.New("unsupported resume format: upload a PDF or DOCX")

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Extract returns the raw text of a resume document. The format is taken
// from the declared content type, falling back to the filename extension.
func Extract(data []byte, contentType, filename string) (string, error) {
	switch detect(contentType, filename) {
	case mimePDF:
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("parse pdf: %w", err)
		}
		return text, nil
	case mimeDocx:
		text, err := extractDocx(data)
		if err != nil {
			return "", fmt.Errorf("parse docx: %w", err)
		}
		return text, nil
	}
	return "", ErrUnsupportedFormat
}

func detect(contentType, filename string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))
	switch contentType {
	case mimePDF, mimeDocx:
		return contentType
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDocx
	}
	return ""
}
