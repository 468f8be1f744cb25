package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/PescadorStudios/Vlado/internal/entity"
)

func TestRegisterUserCreatesNewUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBienestarRepository)
	repo.On("FindByPhone", ctx, "3001234567").Return(nil, entity.ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewRegisterUserUseCase(repo, nil)

	output, err := uc.Execute(ctx, RegisterUserInput{Name: "Ana", Phone: "300 123 4567"})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.UserID)
	assert.False(t, output.AlreadyRegistered)
	assert.Equal(t, "3001234567", output.Phone)

	created := repo.Calls[1].Arguments.Get(1).(*entity.BienestarUser)
	assert.Empty(t, created.ReferredBy)
}

func TestRegisterUserExistingPhoneResolvesAsLogin(t *testing.T) {
	ctx := context.Background()
	existing := &entity.BienestarUser{ID: "user-ana", Name: "Ana", Phone: "3001234567"}

	repo := new(MockBienestarRepository)
	repo.On("FindByPhone", ctx, "3001234567").Return(existing, nil)

	uc := NewRegisterUserUseCase(repo, nil)

	// Mismo celular, otro nombre y un referente: ambos se ignoran.
	output, err := uc.Execute(ctx, RegisterUserInput{
		Name:       "Ana Duplicada",
		Phone:      "3001234567",
		ReferrerID: "user-bob",
	})

	assert.NoError(t, err)
	assert.Equal(t, "user-ana", output.UserID)
	assert.True(t, output.AlreadyRegistered)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUserLinksReferrer(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBienestarRepository)
	repo.On("FindByPhone", ctx, "3009999999").Return(nil, entity.ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewRegisterUserUseCase(repo, nil)

	_, err := uc.Execute(ctx, RegisterUserInput{
		Name:       "Bob",
		Phone:      "3009999999",
		ReferrerID: "user-ana",
	})

	assert.NoError(t, err)
	created := repo.Calls[1].Arguments.Get(1).(*entity.BienestarUser)
	assert.Equal(t, "user-ana", created.ReferredBy)
}

func TestRegisterUserRejectsMalformedInputBeforeStore(t *testing.T) {
	repo := new(MockBienestarRepository)
	uc := NewRegisterUserUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), RegisterUserInput{Name: "", Phone: "3001234567"})
	assert.True(t, IsDomainError(err))

	_, err = uc.Execute(context.Background(), RegisterUserInput{Name: "Ana", Phone: "sin digitos"})
	assert.True(t, IsDomainError(err))

	repo.AssertNotCalled(t, "FindByPhone", mock.Anything, mock.Anything)
}

func TestRegisterUserStoreFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBienestarRepository)
	repo.On("FindByPhone", ctx, "3001234567").Return(nil, errors.New("network down"))

	uc := NewRegisterUserUseCase(repo, nil)

	_, err := uc.Execute(ctx, RegisterUserInput{Name: "Ana", Phone: "3001234567"})
	assert.True(t, IsTechnicalError(err))
}

func TestLoginFound(t *testing.T) {
	ctx := context.Background()
	existing := &entity.BienestarUser{ID: "user-ana", Name: "Ana", Phone: "3001234567"}

	repo := new(MockBienestarRepository)
	repo.On("FindByPhone", ctx, "3001234567").Return(existing, nil)

	uc := NewLoginUseCase(repo)

	user, err := uc.Execute(ctx, "(300) 123-4567")
	assert.NoError(t, err)
	assert.Equal(t, "user-ana", user.ID)
}

func TestLoginNotFoundIsANormalOutcome(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBienestarRepository)
	repo.On("FindByPhone", ctx, "3000000000").Return(nil, entity.ErrNotFound)

	uc := NewLoginUseCase(repo)

	_, err := uc.Execute(ctx, "3000000000")
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.False(t, IsTechnicalError(err))
}

func TestLoginRejectsDigitlessPhone(t *testing.T) {
	repo := new(MockBienestarRepository)
	uc := NewLoginUseCase(repo)

	_, err := uc.Execute(context.Background(), "---")
	assert.True(t, IsDomainError(err))
	repo.AssertNotCalled(t, "FindByPhone", mock.Anything, mock.Anything)
}
