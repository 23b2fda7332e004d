package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"eventlink.backend/internal/domain/entities"
	domainerrors "eventlink.backend/internal/domain/errors"
	"eventlink.backend/internal/infrastructure/models"
	"eventlink.backend/pkg/utils"
)

// PersonaRepository implements persona data operations
type PersonaRepository struct {
	db *gorm.DB
}

// NewPersonaRepository creates a new persona repository
func NewPersonaRepository(db *gorm.DB) *PersonaRepository {
	return &PersonaRepository{db: db}
}

// Create persists a new persona
func (r *PersonaRepository) Create(ctx context.Context, persona *entities.Persona) error {
	if persona.ID == uuid.Nil {
		persona.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	persona.CreatedAt = now
	persona.UpdatedAt = now

	return GetDB(ctx, r.db).WithContext(ctx).Create(r.toModel(persona)).Error
}

// GetByID gets a persona by ID
func (r *PersonaRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Persona, error) {
	var m models.Persona
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByWallet gets a persona by wallet within the exact scope
func (r *PersonaRepository) GetByWallet(ctx context.Context, wallet string, eventID *uuid.UUID) (*entities.Persona, error) {
	var m models.Persona
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("wallet_address = ? AND scope_key = ?", wallet, scopeKey(eventID)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update updates the mutable fields of a persona
func (r *PersonaRepository) Update(ctx context.Context, persona *entities.Persona) error {
	updates := map[string]interface{}{
		"display_name": persona.DisplayName,
		"interests":    pq.StringArray(persona.Interests),
		"looking_for":  pq.StringArray(persona.LookingFor),
		"updated_at":   time.Now(),
	}
	if persona.Bio.Valid {
		updates["bio"] = persona.Bio.String
	}
	if persona.AvatarIPFSHash.Valid {
		updates["avatar_ipfs_hash"] = persona.AvatarIPFSHash.String
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Persona{}).
		Where("id = ?", persona.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListCandidates returns the matching candidate pool for a scope in stable
// creation order
func (r *PersonaRepository) ListCandidates(ctx context.Context, eventID *uuid.UUID) ([]*entities.Persona, error) {
	var ms []models.Persona
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("scope_key = ?", scopeKey(eventID)).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entities.Persona, 0, len(ms))
	for i := range ms {
		out = append(out, r.toEntity(&ms[i]))
	}
	return out, nil
}

func (r *PersonaRepository) toModel(e *entities.Persona) *models.Persona {
	m := &models.Persona{
		ID:            e.ID,
		WalletAddress: e.WalletAddress,
		ScopeKey:      scopeKey(e.EventID),
		EventID:       e.EventID,
		DisplayName:   e.DisplayName,
		Interests:     pq.StringArray(e.Interests),
		LookingFor:    pq.StringArray(e.LookingFor),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if e.Bio.Valid {
		m.Bio = &e.Bio.String
	}
	if e.AvatarIPFSHash.Valid {
		m.AvatarIPFSHash = &e.AvatarIPFSHash.String
	}
	return m
}

func (r *PersonaRepository) toEntity(m *models.Persona) *entities.Persona {
	e := &entities.Persona{
		ID:            m.ID,
		WalletAddress: m.WalletAddress,
		EventID:       m.EventID,
		DisplayName:   m.DisplayName,
		Interests:     []string(m.Interests),
		LookingFor:    []string(m.LookingFor),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Bio != nil {
		e.Bio.SetValid(*m.Bio)
	}
	if m.AvatarIPFSHash != nil {
		e.AvatarIPFSHash.SetValid(*m.AvatarIPFSHash)
	}
	return e
}
