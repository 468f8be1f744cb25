package usecase

import (
	"context"
	"strings"

	"github.com/PescadorStudios/Vlado/internal/entity"
)

type TrackStepInput struct {
	SessionID string `json:"session_id"`
	Step      string `json:"step"`
}

type TrackStepUseCase struct {
	Sessions SessionRepositoryInterface
}

func NewTrackStepUseCase(sessions SessionRepositoryInterface) *TrackStepUseCase {
	return &TrackStepUseCase{Sessions: sessions}
}

// Execute registra que la sesión alcanzó la etapa. Repetir una etapa ya
// alcanzada solo refresca last_active; el set nunca se achica. El tracker
// no impone orden entre etapas, solo la acumulación.
func (uc *TrackStepUseCase) Execute(ctx context.Context, input TrackStepInput) error {
	if strings.TrimSpace(input.SessionID) == "" {
		return &DomainError{
			Code:    "INVALID_SESSION",
			Message: "session_id is required",
		}
	}

	step, err := entity.ParseFunnelStep(input.Step)
	if err != nil {
		return &DomainError{
			Code:    "UNKNOWN_STEP",
			Message: err.Error(),
		}
	}

	if err := uc.Sessions.ReachStep(ctx, input.SessionID, step); err != nil {
		return &TechnicalError{
			Code:    "STORE_UNAVAILABLE",
			Message: "failed to persist step: " + err.Error(),
		}
	}

	return nil
}
