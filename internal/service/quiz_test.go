package service

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain"
	"quill/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedQuizFixture() *domain.Quiz {
	now := time.Now()
	return &domain.Quiz{
		ID:     "quiz-1",
		Title:  "Photosynthesis Basics",
		Topic:  "Photosynthesis",
		UserID: "user-1",
		Questions: []domain.Question{
			{
				Type:          domain.QuestionTypeTF,
				Text:          "Photosynthesis produces oxygen.",
				CorrectAnswer: "true",
				Difficulty:    domain.DifficultyEasy,
				Explanation:   "Oxygen is a byproduct.",
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSaveQuiz(t *testing.T) {
	repo := new(MockQuizRepository)
	repo.On("SaveQuiz", mock.Anything, mock.AnythingOfType("*domain.Quiz")).Return(nil).Once()

	svc := NewQuizService(repo)
	resp, err := svc.SaveQuiz(context.Background(), "user-1", &dto.SaveQuizRequest{
		Title: "Photosynthesis Basics",
		Topic: "Photosynthesis",
		Questions: []dto.QuestionResponse{
			{QuestionType: "tf", QuestionText: "Photosynthesis produces oxygen.", CorrectAnswer: "true", Difficulty: "easy", Explanation: "e"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Photosynthesis Basics", resp.Title)
	require.Len(t, resp.Questions, 1)
	repo.AssertExpectations(t)
}

func TestSaveQuiz_RejectsInvalidQuestions(t *testing.T) {
	repo := new(MockQuizRepository)

	svc := NewQuizService(repo)
	_, err := svc.SaveQuiz(context.Background(), "user-1", &dto.SaveQuizRequest{
		Title: "Broken",
		Questions: []dto.QuestionResponse{
			{QuestionType: "mcq", QuestionText: "Q", Options: []string{"a", "b"}, CorrectAnswer: "a", Difficulty: "easy"},
		},
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "SaveQuiz", mock.Anything, mock.Anything)
}

func TestGetQuiz_OwnershipEnforced(t *testing.T) {
	repo := new(MockQuizRepository)
	repo.On("GetQuizByID", mock.Anything, "quiz-1").Return(storedQuizFixture(), nil)

	svc := NewQuizService(repo)

	resp, err := svc.GetQuiz(context.Background(), "user-1", "quiz-1")
	require.NoError(t, err)
	assert.Equal(t, "quiz-1", resp.ID)

	_, err = svc.GetQuiz(context.Background(), "intruder", "quiz-1")
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeForbidden, domainErr.Code)
}

func TestGetQuiz_NotFound(t *testing.T) {
	repo := new(MockQuizRepository)
	repo.On("GetQuizByID", mock.Anything, "missing").Return(nil, nil).Once()

	svc := NewQuizService(repo)
	_, err := svc.GetQuiz(context.Background(), "user-1", "missing")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeQuizNotFound, domainErr.Code)
}

func TestUpdateQuiz_EmptyFieldsKeepStoredValues(t *testing.T) {
	stored := storedQuizFixture()
	repo := new(MockQuizRepository)
	repo.On("GetQuizByID", mock.Anything, "quiz-1").Return(stored, nil).Once()
	repo.On("UpdateQuiz", mock.Anything, mock.AnythingOfType("*domain.Quiz")).Return(nil).Once()

	svc := NewQuizService(repo)
	resp, err := svc.UpdateQuiz(context.Background(), "user-1", "quiz-1", &dto.UpdateQuizRequest{
		Title: "Renamed",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.Title)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "Photosynthesis produces oxygen.", resp.Questions[0].QuestionText)
	repo.AssertExpectations(t)
}

func TestDeleteQuiz(t *testing.T) {
	repo := new(MockQuizRepository)
	repo.On("GetQuizByID", mock.Anything, "quiz-1").Return(storedQuizFixture(), nil).Once()
	repo.On("DeleteQuiz", mock.Anything, "quiz-1").Return(nil).Once()

	svc := NewQuizService(repo)
	require.NoError(t, svc.DeleteQuiz(context.Background(), "user-1", "quiz-1"))
	repo.AssertExpectations(t)
}

func TestGetQuizzes(t *testing.T) {
	repo := new(MockQuizRepository)
	repo.On("GetQuizzesByUser", mock.Anything, "user-1").
		Return([]*domain.Quiz{storedQuizFixture()}, nil).Once()

	svc := NewQuizService(repo)
	resp, err := svc.GetQuizzes(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Photosynthesis Basics", resp[0].Title)
}
