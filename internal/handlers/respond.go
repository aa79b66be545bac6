package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/degroeneboom/school_site_app/internal/apperrors"
	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondMutationError maps sync engine errors onto HTTP statuses. Only
// validation failures, missing entities, the system-page rule and a failed
// local persist ever reach here; a failed remote write is not an error.
func respondMutationError(c *gin.Context, logger *slog.Logger, err error, what string) {
	switch {
	case errors.Is(err, apperrors.ErrSystemPage):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "System pages cannot be deleted"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: what + " not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrLocalPersist):
		logger.Error("Mutation lost durability", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Change could not be persisted"})
	default:
		logger.Error("Unexpected mutation error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to apply change"})
	}
}

// mutationResponse wraps a mutation outcome for the client, flagging whether
// the remote store confirmed it.
func mutationResponse(res portssvc.MutationResult, entity any) dto.MutationResponse {
	return dto.MutationResponse{Synced: res.Synced, Entity: entity}
}
