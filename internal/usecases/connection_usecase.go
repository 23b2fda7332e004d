package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"eventlink.backend/internal/domain/entities"
	domainerrors "eventlink.backend/internal/domain/errors"
	"eventlink.backend/internal/domain/repositories"
	"eventlink.backend/pkg/logger"
	"eventlink.backend/pkg/utils"
	"eventlink.backend/pkg/wallet"
)

// ConnectionUsecase drives the connection request state machine
type ConnectionUsecase struct {
	connRepo  repositories.ConnectionRepository
	eventRepo repositories.EventRepository
	uow       repositories.UnitOfWork
	notifier  repositories.Notifier
}

// NewConnectionUsecase creates a new connection usecase
func NewConnectionUsecase(
	connRepo repositories.ConnectionRepository,
	eventRepo repositories.EventRepository,
	uow repositories.UnitOfWork,
	notifier repositories.Notifier,
) *ConnectionUsecase {
	return &ConnectionUsecase{
		connRepo:  connRepo,
		eventRepo: eventRepo,
		uow:       uow,
		notifier:  notifier,
	}
}

// resolveScope validates the optional event id and returns the scope
func (u *ConnectionUsecase) resolveScope(ctx context.Context, eventID *string) (*uuid.UUID, error) {
	if eventID == nil || *eventID == "" {
		return nil, nil
	}

	id, err := uuid.Parse(*eventID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid event ID")
	}

	event, err := u.eventRepo.GetByID(ctx, id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("event not found")
		}
		return nil, err
	}
	if !event.IsActive {
		return nil, domainerrors.NewAppError(422, domainerrors.CodeBadRequest, "event is not active", domainerrors.ErrEventNotActive)
	}
	return &id, nil
}

// RequestConnection evaluates the request against existing records and,
// when allowed, creates (or reissues) a pending request. The check+write
// sequence runs in one transaction; the pair+scope unique index backs it up.
func (u *ConnectionUsecase) RequestConnection(ctx context.Context, fromWallet string, input *entities.RequestConnectionInput) (*entities.ConnectionRequest, error) {
	from, ok := wallet.NormalizeValid(fromWallet)
	if !ok {
		return nil, domainerrors.BadRequest("invalid sender wallet address")
	}
	to, ok := wallet.NormalizeValid(input.ToWallet)
	if !ok {
		return nil, domainerrors.BadRequest("invalid recipient wallet address")
	}
	if from == to {
		return nil, domainerrors.BadRequest("cannot send request to yourself")
	}

	eventID, err := u.resolveScope(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	req := &entities.ConnectionRequest{
		FromWallet: from,
		ToWallet:   to,
		EventID:    eventID,
		Status:     entities.ConnectionPending,
	}
	if input.Message != "" {
		req.Message = null.StringFrom(input.Message)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		// The recipient blocking the requester refuses the request no
		// matter what other records exist.
		if _, err := u.connRepo.FindBlockedBy(txCtx, to, from); err == nil {
			return domainerrors.Forbidden("cannot send request to this user")
		} else if err != domainerrors.ErrNotFound {
			return err
		}

		existing, err := u.connRepo.FindByPairAndScope(txCtx, from, to, eventID)
		if err != nil {
			if err == domainerrors.ErrNotFound {
				return u.connRepo.Create(txCtx, req)
			}
			return err
		}

		switch existing.Status {
		case entities.ConnectionBlocked:
			return domainerrors.Forbidden("cannot send request to this user")
		case entities.ConnectionPending, entities.ConnectionAccepted:
			return domainerrors.Conflict("request already exists")
		case entities.ConnectionRejected:
			if days := existing.CooldownRemainingDays(time.Now()); days > 0 {
				return domainerrors.RateLimited(days)
			}
			return u.connRepo.Reissue(txCtx, existing.ID, req)
		}
		return domainerrors.Conflict("request already exists")
	})
	if err != nil {
		return nil, err
	}

	u.notify(ctx, to, entities.NotificationConnectionRequest, map[string]interface{}{
		"requestId":  req.ID.String(),
		"fromWallet": from,
		"eventId":    input.EventID,
	})

	return req, nil
}

// AcceptConnection transitions a pending request to accepted. Only the
// recipient may accept.
func (u *ConnectionUsecase) AcceptConnection(ctx context.Context, requestID uuid.UUID, actingWallet string) (*entities.ConnectionRequest, error) {
	return u.resolve(ctx, requestID, actingWallet, entities.ConnectionAccepted, entities.NotificationConnectionAccepted)
}

// RejectConnection transitions a pending request to rejected, starting the
// cooldown. Only the recipient may reject.
func (u *ConnectionUsecase) RejectConnection(ctx context.Context, requestID uuid.UUID, actingWallet string) (*entities.ConnectionRequest, error) {
	return u.resolve(ctx, requestID, actingWallet, entities.ConnectionRejected, entities.NotificationConnectionRejected)
}

func (u *ConnectionUsecase) resolve(ctx context.Context, requestID uuid.UUID, actingWallet string, status entities.ConnectionStatus, kind entities.NotificationType) (*entities.ConnectionRequest, error) {
	acting, ok := wallet.NormalizeValid(actingWallet)
	if !ok {
		return nil, domainerrors.BadRequest("invalid wallet address")
	}

	var updated *entities.ConnectionRequest
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		req, err := u.connRepo.GetByID(txCtx, requestID)
		if err != nil {
			if err == domainerrors.ErrNotFound {
				return domainerrors.NotFound("request not found")
			}
			return err
		}
		if req.Status != entities.ConnectionPending {
			// Already handled records are indistinguishable from missing
			// ones to the caller.
			return domainerrors.NotFound("request not found")
		}
		if req.ToWallet != acting {
			return domainerrors.Forbidden("only the recipient can respond to this request")
		}

		updated, err = u.connRepo.UpdateStatus(txCtx, requestID, status)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.notify(ctx, updated.FromWallet, kind, map[string]interface{}{
		"requestId": updated.ID.String(),
		"byWallet":  acting,
	})

	return updated, nil
}

// BlockConnection puts the pair+scope into the terminal blocked state,
// authored by the acting wallet. Either party may block at any time; an
// existing record is rewritten, otherwise a blocked record is created.
func (u *ConnectionUsecase) BlockConnection(ctx context.Context, actingWallet string, input *entities.BlockConnectionInput) (*entities.ConnectionRequest, error) {
	actor, ok := wallet.NormalizeValid(actingWallet)
	if !ok {
		return nil, domainerrors.BadRequest("invalid wallet address")
	}
	target, ok := wallet.NormalizeValid(input.Wallet)
	if !ok {
		return nil, domainerrors.BadRequest("invalid wallet address")
	}
	if actor == target {
		return nil, domainerrors.BadRequest("cannot block yourself")
	}

	eventID, err := u.resolveScope(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	var blocked *entities.ConnectionRequest
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		existing, err := u.connRepo.FindByPairAndScope(txCtx, actor, target, eventID)
		if err != nil {
			if err == domainerrors.ErrNotFound {
				blocked = &entities.ConnectionRequest{
					FromWallet: actor,
					ToWallet:   target,
					EventID:    eventID,
					Status:     entities.ConnectionBlocked,
				}
				return u.connRepo.Create(txCtx, blocked)
			}
			return err
		}

		if existing.Status == entities.ConnectionBlocked {
			// Blocking is idempotent
			blocked = existing
			return nil
		}

		blocked, err = u.connRepo.MarkBlocked(txCtx, existing.ID, actor, target)
		return err
	})
	if err != nil {
		return nil, err
	}

	return blocked, nil
}

// ListConnections lists a wallet's connection requests, both directions
func (u *ConnectionUsecase) ListConnections(ctx context.Context, actingWallet string, status entities.ConnectionStatus, eventID *string, pagination utils.PaginationParams) ([]*entities.ConnectionRequest, int64, error) {
	acting, ok := wallet.NormalizeValid(actingWallet)
	if !ok {
		return nil, 0, domainerrors.BadRequest("invalid wallet address")
	}

	var scope *uuid.UUID
	if eventID != nil && *eventID != "" {
		id, err := uuid.Parse(*eventID)
		if err != nil {
			return nil, 0, domainerrors.BadRequest("invalid event ID")
		}
		scope = &id
	}

	return u.connRepo.ListByWallet(ctx, repositories.ConnectionFilter{
		Wallet:  acting,
		Status:  status,
		EventID: scope,
		Limit:   pagination.Limit,
		Offset:  pagination.CalculateOffset(),
	})
}

// notify delivers fire-and-forget: failures are logged, never surfaced
func (u *ConnectionUsecase) notify(ctx context.Context, to string, kind entities.NotificationType, payload map[string]interface{}) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, to, kind, payload); err != nil {
		logger.Warn(ctx, "notification delivery failed",
			zap.String("wallet", to),
			zap.String("type", string(kind)),
			zap.Error(err),
		)
	}
}
