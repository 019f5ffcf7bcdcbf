package export

import (
	"bytes"

	"quill/internal/domain"

	"github.com/fumiama/go-docx"
)

// Half-point font sizes for the DOCX rendition.
const (
	docxTitleSize   = "40"
	docxHeadingSize = "32"
	docxBodySize    = "24"
)

// RenderDOCX renders a quiz as a Word document with the same layout as
// the PDF rendition: questions first, then the answer key after a page
// break. Identical quizzes render to identical bytes.
func RenderDOCX(quiz *domain.Quiz) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().Justification("center").
		AddText(quiz.Title).Size(docxTitleSize).Bold()
	doc.AddParagraph()

	for i, q := range quiz.Questions {
		doc.AddParagraph().AddText(questionLine(i, q)).Size(docxBodySize)
		for _, opt := range q.Options {
			doc.AddParagraph().AddText(optionLine(opt)).Size(docxBodySize)
		}
		doc.AddParagraph()
	}

	doc.AddParagraph().AddPageBreaks()
	doc.AddParagraph().Justification("center").
		AddText(answerKeyHeading).Size(docxHeadingSize).Bold()
	doc.AddParagraph()

	for i, q := range quiz.Questions {
		doc.AddParagraph().AddText(answerLine(i, q)).Size(docxBodySize)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, domain.NewInternalError("Failed to render DOCX", err)
	}
	return buf.Bytes(), nil
}
