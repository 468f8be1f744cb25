package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCaptureLeadSuccess(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewCaptureLeadUseCase(repo, nil)

	output, err := uc.Execute(ctx, CaptureLeadInput{Name: "Carlos", Phone: "3005550000"})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.ID)
	repo.AssertExpectations(t)
}

func TestCaptureLeadNoDedup(t *testing.T) {
	// Dos envíos con el mismo celular son dos eventos de conversión
	// distintos, no una identidad repetida.
	ctx := context.Background()
	repo := new(MockLeadRepository)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewCaptureLeadUseCase(repo, nil)

	first, err := uc.Execute(ctx, CaptureLeadInput{Name: "Carlos", Phone: "3005550000"})
	assert.NoError(t, err)
	second, err := uc.Execute(ctx, CaptureLeadInput{Name: "Carlos", Phone: "3005550000"})
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestCaptureLeadRejectsMalformedInput(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewCaptureLeadUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), CaptureLeadInput{Name: "", Phone: "3005550000"})
	assert.True(t, IsDomainError(err))

	_, err = uc.Execute(context.Background(), CaptureLeadInput{Name: "Carlos", Phone: ""})
	assert.True(t, IsDomainError(err))

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCaptureLeadStoreFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	repo.On("Create", ctx, mock.Anything).Return(errors.New("write concern error"))

	uc := NewCaptureLeadUseCase(repo, nil)

	_, err := uc.Execute(ctx, CaptureLeadInput{Name: "Carlos", Phone: "3005550000"})
	assert.True(t, IsTechnicalError(err))
}
