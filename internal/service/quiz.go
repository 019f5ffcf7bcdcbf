package service

import (
	"context"

	"quill/internal/domain"
	"quill/internal/dto"
	"quill/internal/logger"

	"go.uber.org/zap"
)

// QuizService owns the stored-quiz lifecycle: a reviewed generation
// result is saved here, then listed, edited, and deleted. The service
// never regenerates content; that is GenerationService's job.
type QuizService interface {
	SaveQuiz(ctx context.Context, userID string, req *dto.SaveQuizRequest) (*dto.QuizResponse, error)
	GetQuizzes(ctx context.Context, userID string) ([]*dto.QuizResponse, error)
	GetQuiz(ctx context.Context, userID, quizID string) (*dto.QuizResponse, error)
	UpdateQuiz(ctx context.Context, userID, quizID string, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error)
	DeleteQuiz(ctx context.Context, userID, quizID string) error
}

type quizService struct {
	repo domain.QuizRepository
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo domain.QuizRepository) QuizService {
	return &quizService{repo: repo}
}

// SaveQuiz implements QuizService
func (s *quizService) SaveQuiz(ctx context.Context, userID string, req *dto.SaveQuizRequest) (*dto.QuizResponse, error) {
	quiz := domain.NewQuiz(req.Title, req.Topic, userID, dto.ToDomainQuestions(req.Questions))
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveQuiz(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}

	logger.Get().Info("Quiz saved",
		zap.String("quiz_id", quiz.ID),
		zap.String("user_id", userID),
		zap.Int("question_count", len(quiz.Questions)))

	return dto.NewQuizResponse(quiz), nil
}

// GetQuizzes implements QuizService
func (s *quizService) GetQuizzes(ctx context.Context, userID string) ([]*dto.QuizResponse, error) {
	quizzes, err := s.repo.GetQuizzesByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	responses := make([]*dto.QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		responses = append(responses, dto.NewQuizResponse(quiz))
	}
	return responses, nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, userID, quizID string) (*dto.QuizResponse, error) {
	quiz, err := s.ownedQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}
	return dto.NewQuizResponse(quiz), nil
}

// UpdateQuiz implements QuizService. Empty request fields keep the
// stored values.
func (s *quizService) UpdateQuiz(ctx context.Context, userID, quizID string, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error) {
	quiz, err := s.ownedQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		quiz.Title = req.Title
	}
	if len(req.Questions) > 0 {
		quiz.Questions = dto.ToDomainQuestions(req.Questions)
	}
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateQuiz(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to update quiz", err)
	}

	return dto.NewQuizResponse(quiz), nil
}

// DeleteQuiz implements QuizService
func (s *quizService) DeleteQuiz(ctx context.Context, userID, quizID string) error {
	if _, err := s.ownedQuiz(ctx, userID, quizID); err != nil {
		return err
	}

	if err := s.repo.DeleteQuiz(ctx, quizID); err != nil {
		return domain.NewInternalError("Failed to delete quiz", err)
	}

	logger.Get().Info("Quiz deleted",
		zap.String("quiz_id", quizID),
		zap.String("user_id", userID))
	return nil
}

// ownedQuiz fetches a quiz and enforces that it belongs to userID.
func (s *quizService) ownedQuiz(ctx context.Context, userID, quizID string) (*domain.Quiz, error) {
	return fetchOwnedQuiz(ctx, s.repo, userID, quizID)
}

func fetchOwnedQuiz(ctx context.Context, repo domain.QuizRepository, userID, quizID string) (*domain.Quiz, error) {
	quiz, err := repo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	if quiz.UserID != userID {
		return nil, domain.NewForbiddenError("Quiz belongs to another user")
	}
	return quiz, nil
}
