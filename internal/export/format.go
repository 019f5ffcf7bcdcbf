package export

import (
	"fmt"
	"regexp"
	"strings"

	"quill/internal/domain"
)

// Format identifies a supported document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ContentType of the rendered document for the HTTP response.
func (f Format) ContentType() string {
	switch f {
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/pdf"
	}
}

// ParseFormat parses a path segment into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	default:
		return "", domain.NewInvalidInputError(fmt.Sprintf("Unsupported export format: %s", s))
	}
}

// File is a rendered document ready to be served.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// FileName derives a download file name from a quiz title. Characters
// outside [a-zA-Z0-9] become underscores.
func (f Format) FileName(title string) string {
	base := unsafeFileChars.ReplaceAllString(title, "_")
	if base == "" {
		base = "quiz"
	}
	return base + "." + string(f)
}
