package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"eventlink.backend/internal/domain/entities"
	domainerrors "eventlink.backend/internal/domain/errors"
	"eventlink.backend/internal/domain/repositories"
	"eventlink.backend/pkg/utils"
	"eventlink.backend/pkg/wallet"
)

// EventUsecase handles ticketed event management
type EventUsecase struct {
	eventRepo repositories.EventRepository
}

// NewEventUsecase creates a new event usecase
func NewEventUsecase(eventRepo repositories.EventRepository) *EventUsecase {
	return &EventUsecase{eventRepo: eventRepo}
}

// CreateEvent creates an event owned by the organizer wallet
func (u *EventUsecase) CreateEvent(ctx context.Context, organizerWallet string, input *entities.CreateEventInput) (*entities.Event, error) {
	organizer, ok := wallet.NormalizeValid(organizerWallet)
	if !ok {
		return nil, domainerrors.BadRequest("invalid organizer wallet address")
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, domainerrors.BadRequest("event must end after it starts")
	}
	if input.ContractAddress != "" && !wallet.IsValidAddress(input.ContractAddress) {
		return nil, domainerrors.BadRequest("invalid contract address")
	}

	if _, err := u.eventRepo.GetBySlug(ctx, input.Slug); err == nil {
		return nil, domainerrors.Conflict("an event with this slug already exists")
	} else if err != domainerrors.ErrNotFound {
		return nil, err
	}

	event := &entities.Event{
		Slug:            input.Slug,
		Name:            input.Name,
		StartsAt:        input.StartsAt,
		EndsAt:          input.EndsAt,
		OrganizerWallet: organizer,
		TicketSupply:    input.TicketSupply,
		TicketPriceWei:  input.TicketPriceWei,
		IsActive:        true,
	}
	if event.TicketPriceWei == "" {
		event.TicketPriceWei = "0"
	}
	if input.Description != "" {
		event.Description = null.StringFrom(input.Description)
	}
	if input.Venue != "" {
		event.Venue = null.StringFrom(input.Venue)
	}
	if input.ContractAddress != "" {
		event.ContractAddress = null.StringFrom(wallet.Normalize(input.ContractAddress))
	}
	if input.MetadataIPFS != "" {
		event.MetadataIPFS = null.StringFrom(input.MetadataIPFS)
	}

	if err := u.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetEvent gets an event by ID
func (u *EventUsecase) GetEvent(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("event not found")
		}
		return nil, err
	}
	return event, nil
}

// ListEvents lists active events
func (u *EventUsecase) ListEvents(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Event, int64, error) {
	return u.eventRepo.ListActive(ctx, pagination.Limit, pagination.CalculateOffset())
}

// DeactivateEvent turns an event off; only the organizer may do this
func (u *EventUsecase) DeactivateEvent(ctx context.Context, id uuid.UUID, actingWallet string) (*entities.Event, error) {
	acting, ok := wallet.NormalizeValid(actingWallet)
	if !ok {
		return nil, domainerrors.BadRequest("invalid wallet address")
	}

	event, err := u.eventRepo.GetByID(ctx, id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("event not found")
		}
		return nil, err
	}
	if event.OrganizerWallet != acting {
		return nil, domainerrors.Forbidden("only the organizer can deactivate this event")
	}

	event.IsActive = false
	if err := u.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}
