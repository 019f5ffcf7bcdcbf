package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"quill/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportQuizFixture() *domain.Quiz {
	return &domain.Quiz{
		ID:     "quiz-1",
		Title:  "Photosynthesis Basics",
		Topic:  "Photosynthesis",
		UserID: "user-1",
		Questions: []domain.Question{
			{
				Type:          domain.QuestionTypeMCQ,
				Text:          "Which gas do plants absorb?",
				Options:       []string{"CO2", "O2", "N2", "H2"},
				CorrectAnswer: "CO2",
				Difficulty:    domain.DifficultyEasy,
			},
			{
				Type:          domain.QuestionTypeTF,
				Text:          "Photosynthesis produces oxygen.",
				CorrectAnswer: "true",
				Difficulty:    domain.DifficultyEasy,
			},
			{
				Type:          domain.QuestionTypeFill,
				Text:          "The green pigment is called ____.",
				CorrectAnswer: "chlorophyll",
				Difficulty:    domain.DifficultyMedium,
			},
		},
	}
}

func TestRenderPDF_Deterministic(t *testing.T) {
	first, err := RenderPDF(exportQuizFixture())
	require.NoError(t, err)
	second, err := RenderPDF(exportQuizFixture())
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.True(t, bytes.HasPrefix(first, []byte("%PDF")))
}

func TestRenderDOCX_Deterministic(t *testing.T) {
	first, err := RenderDOCX(exportQuizFixture())
	require.NoError(t, err)
	second, err := RenderDOCX(exportQuizFixture())
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
	// DOCX is a zip container.
	assert.True(t, bytes.HasPrefix(first, []byte("PK")))
}

func TestRenderDOCX_ContainsQuestionsAndAnswerKey(t *testing.T) {
	data, err := RenderDOCX(exportQuizFixture())
	require.NoError(t, err)

	document := readDocxDocument(t, data)
	assert.Contains(t, document, "Photosynthesis Basics")
	assert.Contains(t, document, "1. Which gas do plants absorb?")
	assert.Contains(t, document, "CO2")
	assert.Contains(t, document, "2. Photosynthesis produces oxygen.")
	assert.Contains(t, document, answerKeyHeading)
	assert.Contains(t, document, "3. chlorophyll")

	// Questions precede the answer key.
	assert.Less(t,
		strings.Index(document, "1. Which gas do plants absorb?"),
		strings.Index(document, answerKeyHeading))
}

func TestLayoutLines(t *testing.T) {
	q := exportQuizFixture().Questions[0]
	assert.Equal(t, "1. Which gas do plants absorb?", questionLine(0, q))
	assert.Equal(t, "    - CO2", optionLine(q.Options[0]))
	assert.Equal(t, "1. CO2", answerLine(0, q))
}

func TestFormat(t *testing.T) {
	f, err := ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("docx")
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, f)

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)

	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Equal(t, "Photosynthesis_Basics.pdf", FormatPDF.FileName("Photosynthesis Basics"))
	assert.Equal(t, "quiz.docx", FormatDOCX.FileName(""))
}

// readDocxDocument extracts word/document.xml from a rendered DOCX.
func readDocxDocument(t *testing.T, data []byte) string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range reader.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatal("word/document.xml not found in archive")
	return ""
}
