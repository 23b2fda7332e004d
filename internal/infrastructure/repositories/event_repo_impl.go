package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"eventlink.backend/internal/domain/entities"
	domainerrors "eventlink.backend/internal/domain/errors"
	"eventlink.backend/internal/infrastructure/models"
	"eventlink.backend/pkg/utils"
)

// EventRepository implements event data operations
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create persists a new event
func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	if event.ID == uuid.Nil {
		event.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	return GetDB(ctx, r.db).WithContext(ctx).Create(r.toModel(event)).Error
}

// GetByID gets an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var m models.Event
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetBySlug gets an event by slug
func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*entities.Event, error) {
	var m models.Event
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update updates the mutable fields of an event
func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	updates := map[string]interface{}{
		"name":          event.Name,
		"starts_at":     event.StartsAt,
		"ends_at":       event.EndsAt,
		"ticket_supply": event.TicketSupply,
		"is_active":     event.IsActive,
		"updated_at":    time.Now(),
	}
	if event.Description.Valid {
		updates["description"] = event.Description.String
	}
	if event.Venue.Valid {
		updates["venue"] = event.Venue.String
	}
	if event.ContractAddress.Valid {
		updates["contract_address"] = event.ContractAddress.String
	}
	if event.MetadataIPFS.Valid {
		updates["metadata_ipfs"] = event.MetadataIPFS.String
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", event.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListActive lists active events ordered by start time
func (r *EventRepository) ListActive(ctx context.Context, limit, offset int) ([]*entities.Event, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Event{}).
		Where("is_active = ?", true)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("starts_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.Event
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.Event, 0, len(ms))
	for i := range ms {
		out = append(out, r.toEntity(&ms[i]))
	}
	return out, total, nil
}

func (r *EventRepository) toModel(e *entities.Event) *models.Event {
	m := &models.Event{
		ID:              e.ID,
		Slug:            e.Slug,
		Name:            e.Name,
		StartsAt:        e.StartsAt,
		EndsAt:          e.EndsAt,
		OrganizerWallet: e.OrganizerWallet,
		TicketSupply:    e.TicketSupply,
		TicketPriceWei:  e.TicketPriceWei,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.Description.Valid {
		m.Description = &e.Description.String
	}
	if e.Venue.Valid {
		m.Venue = &e.Venue.String
	}
	if e.ContractAddress.Valid {
		m.ContractAddress = &e.ContractAddress.String
	}
	if e.MetadataIPFS.Valid {
		m.MetadataIPFS = &e.MetadataIPFS.String
	}
	return m
}

func (r *EventRepository) toEntity(m *models.Event) *entities.Event {
	e := &entities.Event{
		ID:              m.ID,
		Slug:            m.Slug,
		Name:            m.Name,
		StartsAt:        m.StartsAt,
		EndsAt:          m.EndsAt,
		OrganizerWallet: m.OrganizerWallet,
		TicketSupply:    m.TicketSupply,
		TicketPriceWei:  m.TicketPriceWei,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Description != nil {
		e.Description.SetValid(*m.Description)
	}
	if m.Venue != nil {
		e.Venue.SetValid(*m.Venue)
	}
	if m.ContractAddress != nil {
		e.ContractAddress.SetValid(*m.ContractAddress)
	}
	if m.MetadataIPFS != nil {
		e.MetadataIPFS.SetValid(*m.MetadataIPFS)
	}
	return e
}
