package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"eventlink.backend/internal/domain/entities"
	domainerrors "eventlink.backend/internal/domain/errors"
	domainRepos "eventlink.backend/internal/domain/repositories"
	"eventlink.backend/internal/infrastructure/models"
	"eventlink.backend/pkg/utils"
	"eventlink.backend/pkg/wallet"
)

// GlobalScopeKey marks records that are not scoped to an event
const GlobalScopeKey = "global"

// ConnectionRepository implements connection request data operations
type ConnectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

func scopeKey(eventID *uuid.UUID) string {
	if eventID == nil {
		return GlobalScopeKey
	}
	return eventID.String()
}

// Create persists a new connection request
func (r *ConnectionRepository) Create(ctx context.Context, req *entities.ConnectionRequest) error {
	if req.ID == uuid.Nil {
		req.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	req.IsGlobal = req.EventID == nil

	m := r.toModel(req)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a connection request by ID
func (r *ConnectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ConnectionRequest, error) {
	var m models.ConnectionRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// FindByPairAndScope finds the record for the unordered wallet pair within
// the exact scope. Event-scoped and global records never match each other.
func (r *ConnectionRepository) FindByPairAndScope(ctx context.Context, walletA, walletB string, eventID *uuid.UUID) (*entities.ConnectionRequest, error) {
	var m models.ConnectionRequest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("pair_key = ? AND scope_key = ?", wallet.PairKey(walletA, walletB), scopeKey(eventID)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// FindBlockedBy finds a blocked record authored by blocker against target,
// in any scope
func (r *ConnectionRepository) FindBlockedBy(ctx context.Context, blocker, target string) (*entities.ConnectionRequest, error) {
	var m models.ConnectionRequest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("from_wallet = ? AND to_wallet = ? AND status = ?", blocker, target, string(entities.ConnectionBlocked)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdateStatus transitions a request to a new status and refreshes updated_at
func (r *ConnectionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConnectionStatus) (*entities.ConnectionRequest, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.ConnectionRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Reissue rewrites a record as a fresh pending request. Used when a rejected
// pair re-requests after the cooldown; reusing the row keeps the pair+scope
// unique index intact.
func (r *ConnectionRepository) Reissue(ctx context.Context, id uuid.UUID, req *entities.ConnectionRequest) error {
	now := time.Now()

	var message *string
	if req.Message.Valid {
		message = &req.Message.String
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.ConnectionRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"from_wallet": req.FromWallet,
			"to_wallet":   req.ToWallet,
			"status":      string(entities.ConnectionPending),
			"message":     message,
			"created_at":  now,
			"updated_at":  now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	req.ID = id
	req.Status = entities.ConnectionPending
	req.CreatedAt = now
	req.UpdatedAt = now
	return nil
}

// MarkBlocked turns an existing record into a blocked record authored by
// blocker, rewriting the direction so FindBlockedBy attributes the block
func (r *ConnectionRepository) MarkBlocked(ctx context.Context, id uuid.UUID, blocker, target string) (*entities.ConnectionRequest, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.ConnectionRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"from_wallet": blocker,
			"to_wallet":   target,
			"status":      string(entities.ConnectionBlocked),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// ListByWallet lists requests involving a wallet, newest first
func (r *ConnectionRepository) ListByWallet(ctx context.Context, filter domainRepos.ConnectionFilter) ([]*entities.ConnectionRequest, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.ConnectionRequest{}).
		Where("from_wallet = ? OR to_wallet = ?", filter.Wallet, filter.Wallet)

	if filter.Status != "" {
		db = db.Where("status = ?", string(filter.Status))
	}
	if filter.EventID != nil {
		db = db.Where("scope_key = ?", scopeKey(filter.EventID))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var ms []models.ConnectionRequest
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.ConnectionRequest, 0, len(ms))
	for i := range ms {
		out = append(out, r.toEntity(&ms[i]))
	}
	return out, total, nil
}

func (r *ConnectionRepository) toModel(e *entities.ConnectionRequest) *models.ConnectionRequest {
	var message *string
	if e.Message.Valid {
		message = &e.Message.String
	}
	return &models.ConnectionRequest{
		ID:         e.ID,
		FromWallet: e.FromWallet,
		ToWallet:   e.ToWallet,
		EventID:    e.EventID,
		IsGlobal:   e.IsGlobal,
		PairKey:    wallet.PairKey(e.FromWallet, e.ToWallet),
		ScopeKey:   scopeKey(e.EventID),
		Status:     string(e.Status),
		Message:    message,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (r *ConnectionRepository) toEntity(m *models.ConnectionRequest) *entities.ConnectionRequest {
	e := &entities.ConnectionRequest{
		ID:         m.ID,
		FromWallet: m.FromWallet,
		ToWallet:   m.ToWallet,
		EventID:    m.EventID,
		IsGlobal:   m.IsGlobal,
		Status:     entities.ConnectionStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Message != nil {
		e.Message.SetValid(*m.Message)
	}
	return e
}
