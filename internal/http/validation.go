package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// respondValidationError turns a binding failure into a 400 response.
// Validator errors are broken down per field so clients see exactly which
// constraint failed; other binding errors (malformed JSON, wrong types)
// get a generic message.
func respondValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]FieldError, 0, len(validationErrors))
		for _, fe := range validationErrors {
			details = append(details, FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
			})
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request body",
			Details: details,
		})
		return
	}

	respondBadRequest(c, "invalid request body")
}
