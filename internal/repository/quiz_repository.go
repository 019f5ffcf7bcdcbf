package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quill/internal/domain"
	"quill/internal/repository/models"
	"quill/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

const quizSelectColumns = `
		id "id",
		title "title",
		topic "topic",
		user_id "user_id",
		questions "questions",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"`

// SaveQuiz implements domain.QuizRepository. It assigns the ID and
// timestamps, writing them back to the domain quiz on success.
func (a *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	modelQuiz := toModelQuiz(quiz)
	if modelQuiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	modelQuiz.ID = util.NewULID()
	modelQuiz.CreatedAt = time.Now()
	modelQuiz.UpdatedAt = modelQuiz.CreatedAt

	query := `INSERT INTO quizzes (
		id, title, topic, user_id, questions, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7
	)`

	_, err := a.db.ExecContext(ctx, query,
		modelQuiz.ID,
		modelQuiz.Title,
		modelQuiz.Topic,
		modelQuiz.UserID,
		modelQuiz.Questions,
		modelQuiz.CreatedAt,
		modelQuiz.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}

	quiz.ID = modelQuiz.ID
	quiz.CreatedAt = modelQuiz.CreatedAt
	quiz.UpdatedAt = modelQuiz.UpdatedAt
	return nil
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var modelQuiz models.Quiz
	query := `SELECT ` + quizSelectColumns + `
	FROM quizzes
	WHERE id = :1
	AND deleted_at IS NULL`

	err := a.db.GetContext(ctx, &modelQuiz, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}
	return toDomainQuiz(&modelQuiz), nil
}

// GetQuizzesByUser implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizzesByUser(ctx context.Context, userID string) ([]*domain.Quiz, error) {
	var modelQuizzes []models.Quiz
	query := `SELECT ` + quizSelectColumns + `
	FROM quizzes
	WHERE user_id = :1
	AND deleted_at IS NULL
	ORDER BY created_at DESC`

	if err := a.db.SelectContext(ctx, &modelQuizzes, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get quizzes for user %s: %w", userID, err)
	}

	quizzes := make([]*domain.Quiz, 0, len(modelQuizzes))
	for i := range modelQuizzes {
		quizzes = append(quizzes, toDomainQuiz(&modelQuizzes[i]))
	}
	return quizzes, nil
}

// UpdateQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	modelQuiz := toModelQuiz(quiz)
	if modelQuiz == nil {
		return fmt.Errorf("cannot update nil quiz")
	}
	modelQuiz.UpdatedAt = time.Now()

	// go-ora reports 0 affected rows on Oracle, so absence is checked
	// by the read that precedes every update.
	query := `UPDATE quizzes SET
		title = :1,
		questions = :2,
		updated_at = :3
	WHERE id = :4
	AND deleted_at IS NULL`

	_, err := a.db.ExecContext(ctx, query,
		modelQuiz.Title,
		modelQuiz.Questions,
		modelQuiz.UpdatedAt,
		modelQuiz.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update quiz %s: %w", quiz.ID, err)
	}

	quiz.UpdatedAt = modelQuiz.UpdatedAt
	return nil
}

// DeleteQuiz implements domain.QuizRepository as a soft delete.
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id string) error {
	query := `UPDATE quizzes SET
		deleted_at = :1
	WHERE id = :2
	AND deleted_at IS NULL`

	if _, err := a.db.ExecContext(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("failed to delete quiz %s: %w", id, err)
	}
	return nil
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	questions := make([]domain.Question, 0, len(m.Questions))
	for _, q := range m.Questions {
		questions = append(questions, domain.Question{
			Type:          domain.QuestionType(q.QuestionType),
			Text:          q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Difficulty:    domain.Difficulty(q.Difficulty),
			Explanation:   q.Explanation,
		})
	}
	return &domain.Quiz{
		ID:        m.ID,
		Title:     m.Title,
		Topic:     m.Topic.String,
		UserID:    m.UserID,
		Questions: questions,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toModelQuiz(quiz *domain.Quiz) *models.Quiz {
	if quiz == nil {
		return nil
	}
	questions := make(models.QuestionSlice, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, models.Question{
			QuestionType:  string(q.Type),
			QuestionText:  q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Difficulty:    string(q.Difficulty),
			Explanation:   q.Explanation,
		})
	}
	return &models.Quiz{
		ID:        quiz.ID,
		Title:     quiz.Title,
		Topic:     util.StringToNullString(quiz.Topic),
		UserID:    quiz.UserID,
		Questions: questions,
		CreatedAt: quiz.CreatedAt,
		UpdatedAt: quiz.UpdatedAt,
	}
}
