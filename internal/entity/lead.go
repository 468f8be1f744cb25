package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Lead es un evento de conversión en la página final del embudo.
// No hay dedup: cada envío del formulario crea un registro nuevo.
type Lead struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Phone     string    `json:"phone" bson:"phone"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
}

// Factory
func NewLead(name, phone string) (*Lead, error) {
	lead := &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		Timestamp: time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}
