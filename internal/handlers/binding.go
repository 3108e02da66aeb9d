package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/yukikurage/defect-tracker-api/internal/errors"
)

// bindJSON binds the request body into req and answers 400 on failure.
// A failed field rule is reported with the message registered for that
// field in fieldMessages; anything else is an invalid body.
func bindJSON(c *gin.Context, req interface{}, fieldMessages map[string]string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apierrors.BadRequest(c, bindingMessage(err, fieldMessages))
		return false
	}
	return true
}

func bindingMessage(err error, fieldMessages map[string]string) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			if message, ok := fieldMessages[fieldErr.Field()]; ok {
				return message
			}
		}
	}
	return "Invalid request body"
}
