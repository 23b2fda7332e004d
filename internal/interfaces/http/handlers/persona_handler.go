package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"eventlink.backend/internal/domain/entities"
	domainerrors "eventlink.backend/internal/domain/errors"
	"eventlink.backend/internal/interfaces/http/middleware"
	"eventlink.backend/internal/interfaces/http/response"
)

type PersonaService interface {
	GetPersona(ctx context.Context, walletAddr string, eventID *string) (*entities.Persona, error)
	UpsertPersona(ctx context.Context, walletAddr string, input *entities.UpsertPersonaInput) (*entities.Persona, error)
}

// PersonaHandler handles persona endpoints
type PersonaHandler struct {
	personaUsecase PersonaService
}

// NewPersonaHandler creates a new persona handler
func NewPersonaHandler(personaUsecase PersonaService) *PersonaHandler {
	return &PersonaHandler{personaUsecase: personaUsecase}
}

// GetMyPersona returns the caller's persona for a scope
// GET /api/v1/personas/me
func (h *PersonaHandler) GetMyPersona(c *gin.Context) {
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var eventID *string
	if v := c.Query("eventId"); v != "" {
		eventID = &v
	}

	persona, err := h.personaUsecase.GetPersona(c.Request.Context(), wallet, eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"persona": persona})
}

// GetPersona returns a wallet's public persona for a scope
// GET /api/v1/personas/:wallet
func (h *PersonaHandler) GetPersona(c *gin.Context) {
	walletAddr := c.Param("wallet")

	var eventID *string
	if v := c.Query("eventId"); v != "" {
		eventID = &v
	}

	persona, err := h.personaUsecase.GetPersona(c.Request.Context(), walletAddr, eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"persona": persona})
}

// UpsertMyPersona creates or updates the caller's persona for a scope
// PUT /api/v1/personas/me
func (h *PersonaHandler) UpsertMyPersona(c *gin.Context) {
	var input entities.UpsertPersonaInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	wallet, ok := middleware.GetWallet(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	persona, err := h.personaUsecase.UpsertPersona(c.Request.Context(), wallet, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"persona": persona})
}
