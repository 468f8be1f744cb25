package usecase

import (
	"context"

	"github.com/PescadorStudios/Vlado/internal/entity"
	"github.com/PescadorStudios/Vlado/internal/infra/queue"
)

type SessionRepositoryInterface interface {
	// ReachStep agrega la etapa al set (idempotente) y refresca
	// current_step y last_active en un solo upsert.
	ReachStep(ctx context.Context, sessionID string, step entity.FunnelStep) error
	Recent(ctx context.Context, limit int) ([]entity.Session, error)
	Count(ctx context.Context) (int64, error)
}

type LeadQueryInterface interface {
	Recent(ctx context.Context, limit int) ([]entity.Lead, error)
	Count(ctx context.Context) (int64, error)
}

type BienestarRepositoryInterface interface {
	Create(ctx context.Context, user *entity.BienestarUser) error
	// FindByPhone y FindByID devuelven entity.ErrNotFound cuando no hay doc.
	FindByPhone(ctx context.Context, phone string) (*entity.BienestarUser, error)
	FindByID(ctx context.Context, id string) (*entity.BienestarUser, error)
	// FindByReferrer devuelve los hijos directos, más reciente primero.
	FindByReferrer(ctx context.Context, userID string) ([]entity.BienestarUser, error)
	Recent(ctx context.Context, limit int) ([]entity.BienestarUser, error)
	Count(ctx context.Context) (int64, error)
}

type QueueProducerInterface interface {
	PublishNotification(ctx context.Context, payload queue.NotificationPayload) error
}
