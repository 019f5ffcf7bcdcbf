package handler

import (
	"fmt"

	"quill/internal/domain"
	"quill/internal/dto"
	"quill/internal/export"
	"quill/internal/logger"
	"quill/internal/middleware"
	"quill/internal/service"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	generationService service.GenerationService
	quizService       service.QuizService
	exportService     service.ExportService
	validator         *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(
	generationService service.GenerationService,
	quizService service.QuizService,
	exportService service.ExportService,
) *QuizHandler {
	return &QuizHandler{
		generationService: generationService,
		quizService:       quizService,
		exportService:     exportService,
		validator:         validation.NewValidator(),
	}
}

// currentUserID reads the authenticated user ID set by the auth middleware.
func currentUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", domain.NewUnauthorizedError("Authentication required")
	}
	return userID, nil
}

// GenerateQuiz godoc
// @Summary Generate a quiz from source material
// @Description Generates quiz questions from a topic or pasted text. The result is not persisted.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Generation Request"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/generate [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateGenerateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.generationService.GenerateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}

	logger.Get().Info("Quiz generated",
		zap.Int("requested", req.NumQuestions),
		zap.Int("delivered", len(resp.Questions)))
	return c.JSON(resp)
}

// SaveQuiz godoc
// @Summary Save a reviewed quiz
// @Description Persists a generated quiz for the authenticated user.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.SaveQuizRequest true "Save Request"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes [post]
func (h *QuizHandler) SaveQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.SaveQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateSaveQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.quizService.SaveQuiz(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetQuizzes godoc
// @Summary List the user's quizzes
// @Tags quizzes
// @Produce json
// @Success 200 {array} dto.QuizResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes [get]
func (h *QuizHandler) GetQuizzes(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.quizService.GetQuizzes(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuiz godoc
// @Summary Get one stored quiz
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.quizService.GetQuiz(c.Context(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateQuiz godoc
// @Summary Update a stored quiz
// @Description Updates title or questions; empty fields keep stored values.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body dto.UpdateQuizRequest true "Update Request"
// @Success 200 {object} dto.QuizResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.quizService.UpdateQuiz(c.Context(), userID, c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuiz godoc
// @Summary Delete a stored quiz
// @Tags quizzes
// @Param id path string true "Quiz ID"
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.quizService.DeleteQuiz(c.Context(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportQuiz godoc
// @Summary Download a stored quiz as a document
// @Description Renders the quiz as PDF or DOCX with a questions section and an answer key.
// @Tags quizzes
// @Produce application/pdf
// @Param id path string true "Quiz ID"
// @Param format path string true "Export format" Enums(pdf, docx)
// @Success 200 {file} binary
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id}/export/{format} [get]
func (h *QuizHandler) ExportQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	format, ok := c.Locals(middleware.ValidatedExportFormatKey).(export.Format)
	if !ok {
		format, err = export.ParseFormat(c.Params("format"))
		if err != nil {
			return err
		}
	}

	file, err := h.exportService.ExportQuiz(c.Context(), userID, c.Params("id"), format)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
	return c.Send(file.Data)
}
