package middleware

import (
	"errors"
	"io"

	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSON binds the request body and answers with a validation error when binding fails.
// It returns false when the handler should stop.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleAPIError(c, bindingError(err))
		return false
	}
	return true
}

// BindForm binds multipart or urlencoded form values the same way
func BindForm(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		HandleAPIError(c, bindingError(err))
		return false
	}
	return true
}

func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return validation.ToAppError(verrs)
	}
	if errors.Is(err, io.EOF) {
		return apperrors.NewValidationError("Request body is required", nil)
	}
	return &apperrors.CustomError{
		Err:     apperrors.ErrMalformedPayload,
		Message: "Invalid request format",
		Details: map[string]interface{}{"reason": err.Error()},
	}
}
