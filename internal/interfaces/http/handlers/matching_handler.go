package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"eventlink.backend/internal/domain/entities"
	domainerrors "eventlink.backend/internal/domain/errors"
	"eventlink.backend/internal/interfaces/http/middleware"
	"eventlink.backend/internal/interfaces/http/response"
)

type MatchingService interface {
	SuggestConnections(ctx context.Context, wallet string, eventID *uuid.UUID, limit int) ([]*entities.MatchResult, error)
}

// MatchingHandler handles match suggestion endpoints
type MatchingHandler struct {
	matchingUsecase MatchingService
}

// NewMatchingHandler creates a new matching handler
func NewMatchingHandler(matchingUsecase MatchingService) *MatchingHandler {
	return &MatchingHandler{matchingUsecase: matchingUsecase}
}

// SuggestConnections returns ranked match suggestions for the caller
// GET /api/v1/matches/suggestions
func (h *MatchingHandler) SuggestConnections(c *gin.Context) {
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var eventID *uuid.UUID
	if v := c.Query("eventId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid event ID"))
			return
		}
		eventID = &id
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	suggestions, err := h.matchingUsecase.SuggestConnections(c.Request.Context(), wallet, eventID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"suggestions": suggestions})
}
