package domain

import "strings"

// QuestionType identifies one of the three supported question shapes.
type QuestionType string

const (
	QuestionTypeMCQ  QuestionType = "mcq"
	QuestionTypeTF   QuestionType = "tf"
	QuestionTypeFill QuestionType = "fill"
)

// IsValid reports whether t is one of the supported question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeTF, QuestionTypeFill:
		return true
	}
	return false
}

// Difficulty is the provider-assigned difficulty label of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid reports whether d is one of the supported difficulty labels.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// MCQOptionCount is the exact number of options an mcq question carries.
const MCQOptionCount = 4

// Question represents a single quiz question
type Question struct {
	Type          QuestionType
	Text          string
	Options       []string // exactly 4 entries iff Type == mcq
	CorrectAnswer string
	Difficulty    Difficulty
	Explanation   string
}

// Validate checks the structural invariants of a question.
// Multiple-choice questions must carry exactly four options with the
// correct answer among them; true/false answers are compared against
// the literals "true"/"false" case-insensitively; only mcq questions
// may carry options at all.
func (q *Question) Validate() error {
	if !q.Type.IsValid() {
		return NewValidationError("question_type must be one of mcq, tf, fill")
	}
	if strings.TrimSpace(q.Text) == "" {
		return NewValidationError("question_text is required")
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return NewValidationError("correct_answer is required")
	}
	if !q.Difficulty.IsValid() {
		return NewValidationError("difficulty must be one of easy, medium, hard")
	}

	switch q.Type {
	case QuestionTypeMCQ:
		if len(q.Options) != MCQOptionCount {
			return NewValidationError("mcq questions require exactly 4 options")
		}
		if !containsString(q.Options, q.CorrectAnswer) {
			return NewValidationError("mcq correct_answer must be one of the options")
		}
	case QuestionTypeTF:
		if len(q.Options) != 0 {
			return NewValidationError("tf questions must not carry options")
		}
		if !strings.EqualFold(q.CorrectAnswer, "true") && !strings.EqualFold(q.CorrectAnswer, "false") {
			return NewValidationError("tf correct_answer must be \"true\" or \"false\"")
		}
	case QuestionTypeFill:
		if len(q.Options) != 0 {
			return NewValidationError("fill questions must not carry options")
		}
	}
	return nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
