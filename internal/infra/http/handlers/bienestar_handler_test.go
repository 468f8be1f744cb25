package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/PescadorStudios/Vlado/internal/entity"
	"github.com/PescadorStudios/Vlado/internal/usecase"
)

type MockBienestarRepository struct {
	mock.Mock
}

func (m *MockBienestarRepository) Create(ctx context.Context, user *entity.BienestarUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockBienestarRepository) FindByPhone(ctx context.Context, phone string) (*entity.BienestarUser, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BienestarUser), args.Error(1)
}

func (m *MockBienestarRepository) FindByID(ctx context.Context, id string) (*entity.BienestarUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BienestarUser), args.Error(1)
}

func (m *MockBienestarRepository) FindByReferrer(ctx context.Context, userID string) ([]entity.BienestarUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BienestarUser), args.Error(1)
}

func (m *MockBienestarRepository) Recent(ctx context.Context, limit int) ([]entity.BienestarUser, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BienestarUser), args.Error(1)
}

func (m *MockBienestarRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestHandler(repo usecase.BienestarRepositoryInterface) *BienestarHandler {
	return NewBienestarHandler(
		usecase.NewRegisterUserUseCase(repo, nil),
		usecase.NewLoginUseCase(repo),
		usecase.NewReferralDashboardUseCase(repo),
		nil,
	)
}

func TestRegisterHandlerCreatesUserWithReferrerFromQuery(t *testing.T) {
	repo := new(MockBienestarRepository)
	repo.On("FindByPhone", mock.Anything, "3009999999").Return(nil, entity.ErrNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := newTestHandler(repo)

	body, _ := json.Marshal(map[string]string{"name": "Bob", "phone": "300 999 9999"})
	req := httptest.NewRequest(http.MethodPost, "/api/bienestar/register?ref=user-ana", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var output usecase.RegisterUserOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &output))
	assert.NotEmpty(t, output.UserID)
	assert.False(t, output.AlreadyRegistered)

	created := repo.Calls[1].Arguments.Get(1).(*entity.BienestarUser)
	assert.Equal(t, "user-ana", created.ReferredBy)
}

func TestRegisterHandlerExistingPhoneReturnsOK(t *testing.T) {
	existing := &entity.BienestarUser{ID: "user-ana", Name: "Ana", Phone: "3001234567"}

	repo := new(MockBienestarRepository)
	repo.On("FindByPhone", mock.Anything, "3001234567").Return(existing, nil)

	h := newTestHandler(repo)

	body, _ := json.Marshal(map[string]string{"name": "Ana", "phone": "3001234567"})
	req := httptest.NewRequest(http.MethodPost, "/api/bienestar/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterHandlerInvalidJSON(t *testing.T) {
	h := newTestHandler(new(MockBienestarRepository))

	req := httptest.NewRequest(http.MethodPost, "/api/bienestar/register", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandlerNotFoundIs404(t *testing.T) {
	repo := new(MockBienestarRepository)
	repo.On("FindByPhone", mock.Anything, "3000000000").Return(nil, entity.ErrNotFound)

	h := newTestHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/bienestar/login?phone=3000000000", nil)
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no encontrado")
}

func TestReferralsHandlerReturnsDashboard(t *testing.T) {
	ana := &entity.BienestarUser{ID: "user-ana", Name: "Ana", Phone: "3001234567"}
	bob := entity.BienestarUser{ID: "user-bob", Name: "Bob", Phone: "3009999999", ReferredBy: "user-ana"}

	repo := new(MockBienestarRepository)
	repo.On("FindByID", mock.Anything, "user-ana").Return(ana, nil)
	repo.On("FindByReferrer", mock.Anything, "user-ana").Return([]entity.BienestarUser{bob}, nil)

	h := newTestHandler(repo)

	r := chi.NewRouter()
	r.Get("/api/bienestar/users/{id}/referrals", h.Referrals)

	req := httptest.NewRequest(http.MethodGet, "/api/bienestar/users/user-ana/referrals", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var output usecase.ReferralDashboardOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &output))
	assert.Equal(t, 1, output.Status.Count)
	assert.Equal(t, entity.TierInProgress, output.Status.Tier)
	assert.Equal(t, 9, output.Status.Remaining)
}
