package validation

import (
	"regexp"
	"strings"

	"quill/internal/domain"
	"quill/internal/dto"
)

const (
	maxQuestionCount = 100
	maxSourceLength  = 20000
	minPasswordLen   = 8
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest validates the quiz generation request
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	source := req.SourceContent()
	if source == "" {
		errors = append(errors, domain.NewMissingFieldError("topic or text"))
	} else if len(source) > maxSourceLength {
		errors = append(errors, domain.NewOutOfRangeError("text", len(source), 1, maxSourceLength))
	}

	if req.NumQuestions < 1 || req.NumQuestions > maxQuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("num_questions", req.NumQuestions, 1, maxQuestionCount))
	}

	if len(req.QuestionTypes) == 0 {
		errors = append(errors, domain.NewMissingFieldError("question_types"))
	}
	for _, t := range req.QuestionTypes {
		if !domain.QuestionType(t).IsValid() {
			errors = append(errors, domain.NewInvalidFormatError("question_types", t))
		}
	}

	return errors
}

// ValidateSaveQuizRequest validates the save quiz request
func (v *Validator) ValidateSaveQuizRequest(req *dto.SaveQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}
	if len(req.Questions) == 0 {
		errors = append(errors, domain.NewMissingFieldError("questions"))
	}

	return errors
}

// ValidateQuizID validates a quiz identifier path parameter
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz_id"))
	} else if !isValidULID(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("quiz_id", quizID))
	}

	return errors
}

// ValidateRegisterRequest validates the account registration request
func (v *Validator) ValidateRegisterRequest(req *dto.RegisterRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	}

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !isValidEmail(req.Email) {
		errors = append(errors, domain.NewInvalidFormatError("email", req.Email))
	}

	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	} else if len(req.Password) < minPasswordLen {
		errors = append(errors, domain.NewOutOfRangeError("password", len(req.Password), minPasswordLen, 72))
	}

	return errors
}

// ValidateLoginRequest validates the login request
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	}
	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}

	return errors
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidEmail checks the general shape of an email address.
func isValidEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	validEmail := regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	return validEmail.MatchString(s)
}
