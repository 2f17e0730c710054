package controller

import (
	"errors"

	"github.com/eatyapp/eaty-backend/internal/app/service"
	apperrors "github.com/eatyapp/eaty-backend/internal/errors"
	"github.com/eatyapp/eaty-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

var notFoundErrors = []error{
	service.ErrBusinessNotFound,
	service.ErrProductNotFound,
	service.ErrOrderNotFound,
	service.ErrRecipeNotFound,
	service.ErrNotebookNotFound,
	service.ErrProfileNotFound,
}

var forbiddenErrors = []error{
	service.ErrReviewForbidden,
	service.ErrNotAuthorized,
}

var badRequestErrors = []error{
	service.ErrEmailAlreadyRegistered,
	service.ErrInvalidRegisterCategory,
	service.ErrInvalidCategory,
	service.ErrBusinessNameRequired,
	service.ErrPasswordTooShort,
	service.ErrPasswordLoginUnavailable,
	service.ErrOrderNotDelivered,
	service.ErrRatingOutOfRange,
	service.ErrReviewExists,
	service.ErrRecipeTitleRequired,
	service.ErrAuthorEmailRequired,
	service.ErrUserEmailRequired,
	service.ErrCommentRequired,
	service.ErrNotebookTitleRequired,
	service.ErrEmailRequired,
	service.ErrNameRequired,
}

// respondError translates a service error into the client-facing envelope.
// Known errors carry their own message; anything else is a 500.
func respondError(c *gin.Context, err error) {
	for _, known := range notFoundErrors {
		if errors.Is(err, known) {
			apperrors.NotFound(c, known.Error())
			return
		}
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		apperrors.Unauthorized(c, service.ErrInvalidCredentials.Error())
		return
	}
	for _, known := range forbiddenErrors {
		if errors.Is(err, known) {
			apperrors.Forbidden(c, known.Error())
			return
		}
	}
	for _, known := range badRequestErrors {
		if errors.Is(err, known) {
			apperrors.BadRequest(c, known.Error())
			return
		}
	}

	logger.Error("Unhandled service error", err, map[string]interface{}{
		"path": c.Request.URL.Path,
	})
	apperrors.InternalError(c, "Internal server error")
}
