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

type ConnectionService interface {
	RequestConnection(ctx context.Context, fromWallet string, input *entities.RequestConnectionInput) (*entities.ConnectionRequest, error)
	AcceptConnection(ctx context.Context, requestID uuid.UUID, actingWallet string) (*entities.ConnectionRequest, error)
	RejectConnection(ctx context.Context, requestID uuid.UUID, actingWallet string) (*entities.ConnectionRequest, error)
	BlockConnection(ctx context.Context, actingWallet string, input *entities.BlockConnectionInput) (*entities.ConnectionRequest, error)
	ListConnections(ctx context.Context, actingWallet string, status entities.ConnectionStatus, eventID *string, pagination utils.PaginationParams) ([]*entities.ConnectionRequest, int64, error)
}

// ConnectionHandler handles connection request endpoints
type ConnectionHandler struct {
	connectionUsecase ConnectionService
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(connectionUsecase ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connectionUsecase: connectionUsecase}
}

// RequestConnection sends a connection request
// POST /api/v1/connections/requests
func (h *ConnectionHandler) RequestConnection(c *gin.Context) {
	var input entities.RequestConnectionInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	wallet, ok := middleware.GetWallet(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	req, err := h.connectionUsecase.RequestConnection(c.Request.Context(), wallet, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"request": req})
}

// AcceptConnection accepts a pending connection request
// POST /api/v1/connections/requests/:id/accept
func (h *ConnectionHandler) AcceptConnection(c *gin.Context) {
	h.respond(c, h.connectionUsecase.AcceptConnection)
}

// RejectConnection rejects a pending connection request
// POST /api/v1/connections/requests/:id/reject
func (h *ConnectionHandler) RejectConnection(c *gin.Context) {
	h.respond(c, h.connectionUsecase.RejectConnection)
}

func (h *ConnectionHandler) respond(c *gin.Context, fn func(ctx context.Context, requestID uuid.UUID, actingWallet string) (*entities.ConnectionRequest, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid request ID"))
		return
	}

	wallet, ok := middleware.GetWallet(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	req, err := fn(c.Request.Context(), id, wallet)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"request": req})
}

// BlockConnection blocks a wallet, optionally within an event scope
// POST /api/v1/connections/block
func (h *ConnectionHandler) BlockConnection(c *gin.Context) {
	var input entities.BlockConnectionInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	wallet, ok := middleware.GetWallet(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	blocked, err := h.connectionUsecase.BlockConnection(c.Request.Context(), wallet, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"request": blocked})
}

// ListConnections lists the caller's connection requests
// GET /api/v1/connections
func (h *ConnectionHandler) ListConnections(c *gin.Context) {
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	pagination := utils.GetPaginationParams(page, limit)

	status := entities.ConnectionStatus(c.Query("status"))

	var eventID *string
	if v := c.Query("eventId"); v != "" {
		eventID = &v
	}

	requests, total, err := h.connectionUsecase.ListConnections(c.Request.Context(), wallet, status, eventID, pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"requests":   requests,
		"pagination": utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}
