package dto

import (
	"strings"
	"time"

	"quill/internal/domain"
)

// GenerateQuizRequest is the request body for quiz generation.
// Topic takes precedence over Text as the source content.
// @Description Request body for generating a quiz
type GenerateQuizRequest struct {
	Topic         string   `json:"topic"`
	Text          string   `json:"text"`
	NumQuestions  int      `json:"num_questions"`
	QuestionTypes []string `json:"question_types"`
}

// SourceContent resolves the source material the generator should work
// from: an explicit topic wins over pasted text.
func (r *GenerateQuizRequest) SourceContent() string {
	if topic := strings.TrimSpace(r.Topic); topic != "" {
		return topic
	}
	return strings.TrimSpace(r.Text)
}

// AllowedTypes converts the requested type names into domain types.
// Unknown names are kept out; validation rejects them upstream.
func (r *GenerateQuizRequest) AllowedTypes() []domain.QuestionType {
	types := make([]domain.QuestionType, 0, len(r.QuestionTypes))
	for _, t := range r.QuestionTypes {
		qt := domain.QuestionType(t)
		if qt.IsValid() {
			types = append(types, qt)
		}
	}
	return types
}

// QuestionResponse mirrors the provider wire shape of a single question.
// @Description A single quiz question
type QuestionResponse struct {
	QuestionType  string   `json:"question_type"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation"`
}

// ToDomain converts the question payload into a domain question.
func (q *QuestionResponse) ToDomain() domain.Question {
	return domain.Question{
		Type:          domain.QuestionType(q.QuestionType),
		Text:          q.QuestionText,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Difficulty:    domain.Difficulty(q.Difficulty),
		Explanation:   q.Explanation,
	}
}

// NewQuestionResponse converts a domain question into its wire shape.
func NewQuestionResponse(q domain.Question) QuestionResponse {
	return QuestionResponse{
		QuestionType:  string(q.Type),
		QuestionText:  q.Text,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Difficulty:    string(q.Difficulty),
		Explanation:   q.Explanation,
	}
}

// NewQuestionResponses converts a slice of domain questions.
func NewQuestionResponses(questions []domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, NewQuestionResponse(q))
	}
	return out
}

// ToDomainQuestions converts wire questions back into domain questions.
func ToDomainQuestions(questions []QuestionResponse) []domain.Question {
	out := make([]domain.Question, 0, len(questions))
	for i := range questions {
		out = append(out, questions[i].ToDomain())
	}
	return out
}

// GenerateQuizResponse is the transient result of a generation call;
// nothing is persisted until the user saves it.
// @Description Generated quiz awaiting review
type GenerateQuizResponse struct {
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
}

// SaveQuizRequest is the request body for persisting a reviewed quiz.
// @Description Request body for saving a quiz
type SaveQuizRequest struct {
	Title     string             `json:"title"`
	Topic     string             `json:"topic"`
	Questions []QuestionResponse `json:"questions"`
}

// UpdateQuizRequest is the request body for editing a stored quiz.
// Empty fields keep their stored values.
// @Description Request body for updating a quiz
type UpdateQuizRequest struct {
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
}

// QuizResponse represents a stored quiz in the API response.
// @Description Stored quiz
type QuizResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Topic     string             `json:"topic,omitempty"`
	Questions []QuestionResponse `json:"questions"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewQuizResponse converts a domain quiz into its wire shape.
func NewQuizResponse(quiz *domain.Quiz) *QuizResponse {
	return &QuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		Topic:     quiz.Topic,
		Questions: NewQuestionResponses(quiz.Questions),
		CreatedAt: quiz.CreatedAt,
		UpdatedAt: quiz.UpdatedAt,
	}
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
