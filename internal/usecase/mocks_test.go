package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/PescadorStudios/Vlado/internal/entity"
	"github.com/PescadorStudios/Vlado/internal/infra/queue"
)

// MockSessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) ReachStep(ctx context.Context, sessionID string, step entity.FunnelStep) error {
	args := m.Called(ctx, sessionID, step)
	return args.Error(0)
}

func (m *MockSessionRepository) Recent(ctx context.Context, limit int) ([]entity.Session, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Recent(ctx context.Context, limit int) ([]entity.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBienestarRepository
type MockBienestarRepository struct {
	mock.Mock
}

func (m *MockBienestarRepository) Create(ctx context.Context, user *entity.BienestarUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockBienestarRepository) FindByPhone(ctx context.Context, phone string) (*entity.BienestarUser, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BienestarUser), args.Error(1)
}

func (m *MockBienestarRepository) FindByID(ctx context.Context, id string) (*entity.BienestarUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BienestarUser), args.Error(1)
}

func (m *MockBienestarRepository) FindByReferrer(ctx context.Context, userID string) ([]entity.BienestarUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BienestarUser), args.Error(1)
}

func (m *MockBienestarRepository) Recent(ctx context.Context, limit int) ([]entity.BienestarUser, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BienestarUser), args.Error(1)
}

func (m *MockBienestarRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
