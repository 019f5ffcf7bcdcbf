package export

import (
	"fmt"

	"quill/internal/domain"
)

// Both renderers produce the same two-section layout: a questions
// section and an answer key on a fresh page. The text of every line is
// derived here so the formats cannot drift apart.

const answerKeyHeading = "Answer Key"

func questionLine(index int, q domain.Question) string {
	return fmt.Sprintf("%d. %s", index+1, q.Text)
}

func optionLine(option string) string {
	return "    - " + option
}

func answerLine(index int, q domain.Question) string {
	return fmt.Sprintf("%d. %s", index+1, q.CorrectAnswer)
}
