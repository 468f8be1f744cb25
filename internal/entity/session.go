package entity

import (
	"math"
	"time"
)

// Session es el registro de progreso de un visitante por el embudo.
// StepsReached solo crece: el tracker nunca quita una etapa ya alcanzada.
type Session struct {
	ID           string       `json:"id" bson:"_id"`
	CurrentStep  FunnelStep   `json:"current_step" bson:"current_step"`
	StepsReached []FunnelStep `json:"steps_reached" bson:"steps_reached"`
	LastActive   time.Time    `json:"last_active" bson:"last_active"`
}

func (s *Session) Reached(step FunnelStep) bool {
	for _, r := range s.StepsReached {
		if r == step {
			return true
		}
	}
	return false
}

// ConversionRate devuelve el porcentaje (redondeado) de sesiones que
// alcanzaron la etapa. Con cero sesiones devuelve 0.
func ConversionRate(sessions []Session, step FunnelStep) int {
	if len(sessions) == 0 {
		return 0
	}
	count := 0
	for i := range sessions {
		if sessions[i].Reached(step) {
			count++
		}
	}
	return int(math.Round(float64(count) / float64(len(sessions)) * 100))
}
