package entity

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NO agregar imports de usecase o infra aquí!
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone deja el celular solo con dígitos. Es la llave natural
// de dedup del registro Bienestar.
func NormalizePhone(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}

// BienestarUser es un inscrito del programa de referidos.
// ReferredBy es una referencia débil: guarda el id de otro usuario pero
// puede apuntar a un registro que ya no existe. Quien la resuelva debe
// tratar ese caso como "sin referente", nunca como error.
type BienestarUser struct {
	ID         string    `json:"id" bson:"_id"`
	Name       string    `json:"name" bson:"name"`
	Phone      string    `json:"phone" bson:"phone"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
	ReferredBy string    `json:"referred_by,omitempty" bson:"referred_by,omitempty"`
}

// Factory
func NewBienestarUser(name, rawPhone, referredBy string) (*BienestarUser, error) {
	user := &BienestarUser{
		ID:         uuid.New().String(),
		Name:       name,
		Phone:      NormalizePhone(rawPhone),
		Timestamp:  time.Now(),
		ReferredBy: referredBy,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *BienestarUser) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}
	if u.Phone == "" {
		return errors.New("phone must contain at least one digit")
	}
	return nil
}
