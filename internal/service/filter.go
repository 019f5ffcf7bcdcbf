package service

import "quill/internal/domain"

// FilterQuestions keeps only questions whose type is in allowedTypes,
// preserving their relative order, then truncates to the first
// requestedCount entries. An empty result is valid output, not an
// error; the provider may have ignored the type constraint entirely.
func FilterQuestions(questions []domain.Question, allowedTypes []domain.QuestionType, requestedCount int) []domain.Question {
	allowed := make(map[domain.QuestionType]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}

	filtered := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := allowed[q.Type]; !ok {
			continue
		}
		filtered = append(filtered, q)
		if len(filtered) == requestedCount {
			break
		}
	}
	return filtered
}
