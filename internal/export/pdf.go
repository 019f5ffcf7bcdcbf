package export

import (
	"bytes"
	"time"

	"quill/internal/domain"

	"github.com/go-pdf/fpdf"
)

// Document metadata timestamps are pinned so that rendering the same
// quiz always yields identical bytes.
var fixedDocTime = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// RenderPDF renders a quiz as a PDF document: a questions section
// followed by an answer key on its own page, both in stored question
// order. Identical quizzes render to identical bytes.
func RenderPDF(quiz *domain.Quiz) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(fixedDocTime)
	pdf.SetModificationDate(fixedDocTime)
	pdf.SetTitle(quiz.Title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr(quiz.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for i, q := range quiz.Questions {
		pdf.MultiCell(0, 7, tr(questionLine(i, q)), "", "L", false)
		for _, opt := range q.Options {
			pdf.MultiCell(0, 6, tr(optionLine(opt)), "", "L", false)
		}
		pdf.Ln(3)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, answerKeyHeading, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for i, q := range quiz.Questions {
		pdf.MultiCell(0, 7, tr(answerLine(i, q)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, domain.NewInternalError("Failed to render PDF", err)
	}
	return buf.Bytes(), nil
}
