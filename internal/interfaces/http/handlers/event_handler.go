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
	"eventlink.backend/pkg/utils"
)

type EventService interface {
	CreateEvent(ctx context.Context, organizerWallet string, input *entities.CreateEventInput) (*entities.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	ListEvents(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Event, int64, error)
	DeactivateEvent(ctx context.Context, id uuid.UUID, actingWallet string) (*entities.Event, error)
}

// EventHandler handles event endpoints
type EventHandler struct {
	eventUsecase EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventUsecase EventService) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

// CreateEvent creates a new event
// POST /api/v1/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var input entities.CreateEventInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	wallet, ok := middleware.GetWallet(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	event, err := h.eventUsecase.CreateEvent(c.Request.Context(), wallet, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"event": event})
}

// GetEvent gets an event by ID
// GET /api/v1/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event ID"))
		return
	}

	event, err := h.eventUsecase.GetEvent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"event": event})
}

// ListEvents lists active events
// GET /api/v1/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	pagination := utils.GetPaginationParams(page, limit)

	events, total, err := h.eventUsecase.ListEvents(c.Request.Context(), pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"events":     events,
		"pagination": utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}

// DeactivateEvent deactivates an event; organizer only
// POST /api/v1/events/:id/deactivate
func (h *EventHandler) DeactivateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event ID"))
		return
	}

	wallet, ok := middleware.GetWallet(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	event, err := h.eventUsecase.DeactivateEvent(c.Request.Context(), id, wallet)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"event": event})
}
