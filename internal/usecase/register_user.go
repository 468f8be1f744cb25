package usecase

import (
	"context"
	"errors"

	"github.com/PescadorStudios/Vlado/internal/entity"
	"github.com/PescadorStudios/Vlado/internal/infra/queue"
)

type RegisterUserInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	// ReferrerID llega opaco desde el query param del link de referido.
	// No se valida que exista: es una referencia débil.
	ReferrerID string `json:"referrer_id,omitempty"`
}

type RegisterUserOutput struct {
	UserID            string `json:"user_id"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	AlreadyRegistered bool   `json:"already_registered"`
}

type RegisterUserUseCase struct {
	Users BienestarRepositoryInterface
	Queue QueueProducerInterface
}

func NewRegisterUserUseCase(users BienestarRepositoryInterface, producer QueueProducerInterface) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		Users: users,
		Queue: producer,
	}
}

// Execute resuelve o crea el usuario por celular. Si el celular ya está
// registrado se trata como login: devuelve el id existente e ignora el
// nombre y el referente enviados.
//
// El lookup-then-create no es atómico. Dos registros casi simultáneos con
// el mismo celular pueden pasar ambos el lookup y crear duplicados; se
// acepta como limitación conocida en vez de meter locking distribuido.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if validationErrors := ValidateRegisterUserInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(validationErrors),
		}
	}

	phone := entity.NormalizePhone(input.Phone)

	existing, err := uc.Users.FindByPhone(ctx, phone)
	if err == nil {
		return &RegisterUserOutput{
			UserID:            existing.ID,
			Name:              existing.Name,
			Phone:             existing.Phone,
			AlreadyRegistered: true,
		}, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, &TechnicalError{
			Code:    "STORE_UNAVAILABLE",
			Message: "failed to look up user: " + err.Error(),
		}
	}

	user, err := entity.NewBienestarUser(input.Name, phone, input.ReferrerID)
	if err != nil {
		return nil, &DomainError{
			Code:    "INVALID_USER",
			Message: err.Error(),
		}
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_UNAVAILABLE",
			Message: "failed to persist user: " + err.Error(),
		}
	}

	if uc.Queue != nil {
		go func() {
			uc.Queue.PublishNotification(context.Background(), queue.NotificationPayload{
				Kind:   queue.KindBienestarWelcome,
				Name:   user.Name,
				Phone:  user.Phone,
				UserID: user.ID,
			})
		}()
	}

	return &RegisterUserOutput{
		UserID: user.ID,
		Name:   user.Name,
		Phone:  user.Phone,
	}, nil
}
