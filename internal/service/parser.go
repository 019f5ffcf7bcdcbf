package service

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"quill/internal/domain"
	"quill/internal/logger"

	"go.uber.org/zap"
)

// Providers sometimes wrap their JSON in a markdown fence despite
// instructions to the contrary. The fenced interior, when present, is
// the only candidate handed to the JSON decoder.
var fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// extractJSONCandidate normalizes raw provider text into a single JSON
// candidate string. Schema validation never sees raw provider text.
func extractJSONCandidate(rawText string) string {
	if m := fencedBlockPattern.FindStringSubmatch(rawText); m != nil {
		return m[1]
	}
	return strings.TrimSpace(rawText)
}

// questionPayload is the provider wire shape of one question object.
type questionPayload struct {
	QuestionType  string   `json:"question_type"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation"`
}

func (p *questionPayload) toDomain() domain.Question {
	return domain.Question{
		Type:          domain.QuestionType(p.QuestionType),
		Text:          p.QuestionText,
		Options:       p.Options,
		CorrectAnswer: p.CorrectAnswer,
		Difficulty:    domain.Difficulty(p.Difficulty),
		Explanation:   p.Explanation,
	}
}

// ParseQuestions turns raw provider text into validated questions.
//
// A fenced code block, when present, is stripped first; the remaining
// candidate must decode as a JSON object carrying a "questions" array.
// Elements that violate the question invariants are dropped one by one
// rather than failing the whole batch, so a single malformed item
// cannot invalidate an otherwise usable response.
func ParseQuestions(rawText string) ([]domain.Question, error) {
	candidate := extractJSONCandidate(rawText)

	var envelope struct {
		Questions json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal([]byte(candidate), &envelope); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, domain.NewParseError(domain.ParseNotExtractableJSON, err)
		}
		// Valid JSON, but not an object we can read a questions
		// array from (e.g. a top-level array or scalar).
		return nil, domain.NewParseError(domain.ParseMissingQuestionsArray, err)
	}
	if envelope.Questions == nil || string(envelope.Questions) == "null" {
		return nil, domain.NewParseError(domain.ParseMissingQuestionsArray,
			errors.New("top-level object has no questions field"))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(envelope.Questions, &items); err != nil {
		return nil, domain.NewParseError(domain.ParseMissingQuestionsArray,
			errors.New("questions field is not an array"))
	}

	questions := make([]domain.Question, 0, len(items))
	for i, item := range items {
		var payload questionPayload
		if err := json.Unmarshal(item, &payload); err != nil {
			logger.Get().Warn("Dropping undecodable question element",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		question := payload.toDomain()
		if err := question.Validate(); err != nil {
			logger.Get().Warn("Dropping question violating schema invariants",
				zap.Int("index", i),
				zap.String("question_type", payload.QuestionType),
				zap.Error(err))
			continue
		}
		questions = append(questions, question)
	}

	return questions, nil
}
