package usecase

import (
	"context"
	"errors"

	"github.com/PescadorStudios/Vlado/internal/entity"
)

type ReferralDashboardOutput struct {
	User      *entity.BienestarUser  `json:"user"`
	Referrals []entity.BienestarUser `json:"referrals"`
	Status    entity.ReferralStatus  `json:"status"`
	// ReferrerName queda vacío si el usuario es orgánico o si su
	// referente ya no existe (referencia débil).
	ReferrerName string `json:"referrer_name,omitempty"`
}

type ReferralDashboardUseCase struct {
	Users BienestarRepositoryInterface
}

func NewReferralDashboardUseCase(users BienestarRepositoryInterface) *ReferralDashboardUseCase {
	return &ReferralDashboardUseCase{Users: users}
}

// Execute arma el estado de gamificación de un usuario: sus referidos
// directos (más reciente primero) y el tier derivado del conteo. El tier
// se recalcula en cada lectura, nunca se guarda.
func (uc *ReferralDashboardUseCase) Execute(ctx context.Context, userID string) (*ReferralDashboardOutput, error) {
	user, err := uc.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, &TechnicalError{
			Code:    "STORE_UNAVAILABLE",
			Message: "failed to load user: " + err.Error(),
		}
	}

	referrals, err := uc.Users.FindByReferrer(ctx, userID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_UNAVAILABLE",
			Message: "failed to load referrals: " + err.Error(),
		}
	}

	out := &ReferralDashboardOutput{
		User:      user,
		Referrals: referrals,
		Status:    entity.ReferralProgress(len(referrals)),
	}

	if user.ReferredBy != "" {
		referrer, err := uc.Users.FindByID(ctx, user.ReferredBy)
		if err == nil {
			out.ReferrerName = referrer.Name
		}
		// ErrNotFound (o cualquier falla del lookup del referente) degrada
		// a "sin referente"; nunca tumba el dashboard.
	}

	return out, nil
}
