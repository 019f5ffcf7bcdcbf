package domain

import (
	"context"
	"strings"
	"time"
)

// Quiz is a persisted, user-owned quiz.
type Quiz struct {
	ID        string
	Title     string
	Topic     string // optional
	UserID    string
	Questions []Question
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuiz creates a new Quiz instance owned by the given user.
func NewQuiz(title, topic, userID string, questions []Question) *Quiz {
	now := time.Now()
	return &Quiz{
		Title:     title,
		Topic:     topic,
		UserID:    userID,
		Questions: questions,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the quiz and every question it contains.
func (q *Quiz) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return NewValidationError("title is required")
	}
	if q.UserID == "" {
		return NewValidationError("user ID is required")
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// QuizRepository defines the interface for quiz persistence
type QuizRepository interface {
	// SaveQuiz persists a new quiz and assigns its ID
	SaveQuiz(ctx context.Context, quiz *Quiz) error

	// GetQuizByID retrieves a quiz by its ID; returns nil when absent
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)

	// GetQuizzesByUser returns all quizzes owned by a user, newest first
	GetQuizzesByUser(ctx context.Context, userID string) ([]*Quiz, error)

	// UpdateQuiz replaces the title and questions of an existing quiz
	UpdateQuiz(ctx context.Context, quiz *Quiz) error

	// DeleteQuiz soft-deletes a quiz
	DeleteQuiz(ctx context.Context, id string) error
}
