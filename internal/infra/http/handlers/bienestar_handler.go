package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PescadorStudios/Vlado/internal/entity"
	"github.com/PescadorStudios/Vlado/internal/infra/database"
	"github.com/PescadorStudios/Vlado/internal/infra/http/middleware"
	"github.com/PescadorStudios/Vlado/internal/infra/http/ws"
	"github.com/PescadorStudios/Vlado/internal/usecase"
)

type BienestarHandler struct {
	RegisterUC  *usecase.RegisterUserUseCase
	LoginUC     *usecase.LoginUseCase
	DashboardUC *usecase.ReferralDashboardUseCase
	Repo        *database.BienestarRepository
}

func NewBienestarHandler(
	registerUC *usecase.RegisterUserUseCase,
	loginUC *usecase.LoginUseCase,
	dashboardUC *usecase.ReferralDashboardUseCase,
	repo *database.BienestarRepository,
) *BienestarHandler {
	return &BienestarHandler{
		RegisterUC:  registerUC,
		LoginUC:     loginUC,
		DashboardUC: dashboardUC,
		Repo:        repo,
	}
}

// Register inscribe (o resuelve) un usuario por celular. El id del
// referente viene del query param `ref` del link de embajador y se pasa
// opaco: si no apunta a nadie real, simplemente queda colgando.
func (h *BienestarHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if ref := r.URL.Query().Get("ref"); ref != "" {
		input.ReferrerID = ref
	}

	output, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSONError(w, http.StatusServiceUnavailable, "Hubo un error al registrarte. Intenta de nuevo.")
		return
	}

	if !output.AlreadyRegistered {
		middleware.RecordRegistration(input.ReferrerID != "")
	}

	w.Header().Set("Content-Type", "application/json")
	if output.AlreadyRegistered {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(output)
}

// Login resuelve un usuario por el celular del query param. Es el mismo
// atajo de baja fricción del producto original (?phone=...): aceptable
// porque el panel no expone nada más sensible que nombre y celular.
func (h *BienestarHandler) Login(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")

	user, err := h.LoginUC.Execute(r.Context(), phone)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "Número no encontrado. Verifica o regístrate en la página principal.")
			return
		}
		if usecase.IsDomainError(err) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSONError(w, http.StatusServiceUnavailable, "Error al conectar con el servidor.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// Referrals arma el dashboard de gamificación de un embajador.
func (h *BienestarHandler) Referrals(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeJSONError(w, http.StatusBadRequest, "ID is required")
		return
	}

	output, err := h.DashboardUC.Execute(r.Context(), userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "Usuario no encontrado.")
			return
		}
		writeJSONError(w, http.StatusServiceUnavailable, "Error al conectar con el servidor.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(output)
}

// LiveReferrals mantiene un websocket con las altas de referidos del
// usuario en tiempo real. El cancel del watch corre en todo camino de
// salida: cerrar la pestaña no deja suscripciones colgadas.
func (h *BienestarHandler) LiveReferrals(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeJSONError(w, http.StatusBadRequest, "ID is required")
		return
	}

	events, cancel, err := h.Repo.WatchReferrals(userID)
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Error al conectar con el servidor.")
		return
	}
	defer cancel()

	ws.StreamTo(w, r, events)
}
