package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/news-api/internal/apperrors"
	"github.com/news-api/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Tag     string      `json:"tag"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Validator checks request bodies before they reach the store
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New()

	// Report fields by their JSON names so messages match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("maxwords", maxWords)

	return &Validator{validate: v}
}

// Validate returns every rule s breaks, in field order
func (v *Validator) Validate(s interface{}) []ValidationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Message: err.Error()}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
			Value:   fe.Value(),
		})
	}
	return out
}

// Check validates s and converts the first failure into a bad request
func (v *Validator) Check(s interface{}) error {
	errs := v.Validate(s)
	if len(errs) == 0 {
		return nil
	}

	first := errs[0]
	if first.Tag == "required" {
		return apperrors.MissingField(first.Field)
	}
	return apperrors.BadRequest(fmt.Sprintf("%s, %s", apperrors.MsgBadRequest, first.Message))
}

// ValidateNewComment validates a comment before it is inserted
func (v *Validator) ValidateNewComment(c *models.NewComment) error {
	if c == nil {
		return apperrors.BadRequest(apperrors.MsgBadRequest)
	}
	return v.Check(c)
}

// ValidateVotePatch validates a vote delta before it is applied
func (v *Validator) ValidateVotePatch(p *models.VotePatch) error {
	if p == nil {
		return apperrors.MissingField("inc_votes")
	}
	return v.Check(p)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "max":
		return fmt.Sprintf("%s is out of range", fe.Field())
	case "maxwords":
		return fmt.Sprintf("%s exceeds maximum of %d words", fe.Field(), models.MaxCommentWords)
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

func maxWords(fl validator.FieldLevel) bool {
	return len(strings.Fields(fl.Field().String())) <= models.MaxCommentWords
}
