package service

import (
	"context"

	"quill/internal/domain"
	"quill/internal/export"
	"quill/internal/logger"

	"go.uber.org/zap"
)

// ExportService renders stored quizzes into downloadable documents.
type ExportService interface {
	ExportQuiz(ctx context.Context, userID, quizID string, format export.Format) (*export.File, error)
}

type exportService struct {
	repo domain.QuizRepository
}

// NewExportService creates a new instance of ExportService.
func NewExportService(repo domain.QuizRepository) ExportService {
	return &exportService{repo: repo}
}

// ExportQuiz implements ExportService.
func (s *exportService) ExportQuiz(ctx context.Context, userID, quizID string, format export.Format) (*export.File, error) {
	quiz, err := fetchOwnedQuiz(ctx, s.repo, userID, quizID)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case export.FormatDOCX:
		data, err = export.RenderDOCX(quiz)
	default:
		data, err = export.RenderPDF(quiz)
	}
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz exported",
		zap.String("quiz_id", quizID),
		zap.String("user_id", userID),
		zap.String("format", string(format)),
		zap.Int("bytes", len(data)))

	return &export.File{
		Name:        format.FileName(quiz.Title),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}
