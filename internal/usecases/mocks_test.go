package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"eventlink.backend/internal/domain/entities"
	"eventlink.backend/internal/domain/repositories"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock ConnectionRepository
type MockConnectionRepository struct {
	mock.Mock
}

func (m *MockConnectionRepository) Create(ctx context.Context, req *entities.ConnectionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockConnectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ConnectionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ConnectionRequest), args.Error(1)
}

func (m *MockConnectionRepository) FindByPairAndScope(ctx context.Context, walletA, walletB string, eventID *uuid.UUID) (*entities.ConnectionRequest, error) {
	args := m.Called(ctx, walletA, walletB, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ConnectionRequest), args.Error(1)
}

func (m *MockConnectionRepository) FindBlockedBy(ctx context.Context, blocker, target string) (*entities.ConnectionRequest, error) {
	args := m.Called(ctx, blocker, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ConnectionRequest), args.Error(1)
}

func (m *MockConnectionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConnectionStatus) (*entities.ConnectionRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ConnectionRequest), args.Error(1)
}

func (m *MockConnectionRepository) Reissue(ctx context.Context, id uuid.UUID, req *entities.ConnectionRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockConnectionRepository) MarkBlocked(ctx context.Context, id uuid.UUID, blocker, target string) (*entities.ConnectionRequest, error) {
	args := m.Called(ctx, id, blocker, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ConnectionRequest), args.Error(1)
}

func (m *MockConnectionRepository) ListByWallet(ctx context.Context, filter repositories.ConnectionFilter) ([]*entities.ConnectionRequest, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.ConnectionRequest), args.Get(1).(int64), args.Error(2)
}

// Mock PersonaRepository
type MockPersonaRepository struct {
	mock.Mock
}

func (m *MockPersonaRepository) Create(ctx context.Context, persona *entities.Persona) error {
	args := m.Called(ctx, persona)
	return args.Error(0)
}

func (m *MockPersonaRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Persona, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Persona), args.Error(1)
}

func (m *MockPersonaRepository) GetByWallet(ctx context.Context, wallet string, eventID *uuid.UUID) (*entities.Persona, error) {
	args := m.Called(ctx, wallet, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Persona), args.Error(1)
}

func (m *MockPersonaRepository) Update(ctx context.Context, persona *entities.Persona) error {
	args := m.Called(ctx, persona)
	return args.Error(0)
}

func (m *MockPersonaRepository) ListCandidates(ctx context.Context, eventID *uuid.UUID) ([]*entities.Persona, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Persona), args.Error(1)
}

// Mock EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *entities.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *MockEventRepository) GetBySlug(ctx context.Context, slug string) (*entities.Event, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *entities.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) ListActive(ctx context.Context, limit, offset int) ([]*entities.Event, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Event), args.Get(1).(int64), args.Error(2)
}

// Mock Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, wallet string, kind entities.NotificationType, payload map[string]interface{}) error {
	args := m.Called(ctx, wallet, kind, payload)
	return args.Error(0)
}
