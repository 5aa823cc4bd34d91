package api

import (
	"database/sql"
	"errors"
	"net/http"

	"award-voting/internal/domain/ballot"
	"award-voting/internal/domain/category"
	"award-voting/internal/domain/user"
	"award-voting/internal/platform/apperr"
)

func errorResponse(w http.ResponseWriter, err error) {
	appErr := mapError(err)
	writeJSON(w, appErr.StatusCode(), map[string]string{
		"error":   appErr.Code,
		"message": appErr.Message,
	})
}

func mapError(err error) *apperr.AppError {
	if err == nil {
		return apperr.Internal("internal_error", "internal server error", nil)
	}

	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return apperr.NotFound("not_found", "resource not found", err)
	case errors.Is(err, category.ErrCategoryNotFound):
		return apperr.NotFound("category_not_found", "category not found", err)
	case errors.Is(err, ballot.ErrIncompleteBallot):
		return apperr.BadRequest("incomplete_ballot", "vote in every category before submitting", err)
	case errors.Is(err, ballot.ErrVotingClosed):
		return apperr.Forbidden("voting_closed", "voting is currently closed", err)
	case errors.Is(err, ballot.ErrWebhookDelivery):
		return apperr.BadGateway("webhook_failed", "could not deliver the ballot, try again", err)
	case errors.Is(err, user.ErrInvalidCredentials):
		return apperr.Unauthorized("invalid_credentials", "invalid credentials", err)
	case errors.Is(err, user.ErrNotAuthorized):
		return apperr.Forbidden("not_authorized", "identity is not authorized", err)
	default:
		return apperr.Internal("internal_error", http.StatusText(http.StatusInternalServerError), err)
	}
}
