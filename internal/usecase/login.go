package usecase

import (
	"context"
	"errors"

	"github.com/PescadorStudios/Vlado/internal/entity"
)

type LoginUseCase struct {
	Users BienestarRepositoryInterface
}

func NewLoginUseCase(users BienestarRepositoryInterface) *LoginUseCase {
	return &LoginUseCase{Users: users}
}

// Execute busca el usuario por celular normalizado. No encontrarlo es un
// resultado esperado (entity.ErrNotFound), no una falla: el handler decide
// si invita a registrarse de nuevo.
func (uc *LoginUseCase) Execute(ctx context.Context, rawPhone string) (*entity.BienestarUser, error) {
	phone := entity.NormalizePhone(rawPhone)
	if phone == "" {
		return nil, &DomainError{
			Code:    "INVALID_PHONE",
			Message: "phone must contain at least one digit",
		}
	}

	user, err := uc.Users.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, &TechnicalError{
			Code:    "STORE_UNAVAILABLE",
			Message: "failed to look up user: " + err.Error(),
		}
	}

	return user, nil
}
