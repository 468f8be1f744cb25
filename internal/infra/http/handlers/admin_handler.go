package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/PescadorStudios/Vlado/internal/usecase"
)

type AdminHandler struct {
	MetricsUC *usecase.DashboardMetricsUseCase
	Sessions  usecase.SessionRepositoryInterface
	Leads     usecase.LeadQueryInterface
	Users     usecase.BienestarRepositoryInterface
	Window    int
}

func NewAdminHandler(
	metricsUC *usecase.DashboardMetricsUseCase,
	sessions usecase.SessionRepositoryInterface,
	leads usecase.LeadQueryInterface,
	users usecase.BienestarRepositoryInterface,
	window int,
) *AdminHandler {
	if window <= 0 {
		window = usecase.DefaultSessionWindow
	}
	return &AdminHandler{
		MetricsUC: metricsUC,
		Sessions:  sessions,
		Leads:     leads,
		Users:     users,
		Window:    window,
	}
}

// Overview son los KPIs del panel: totales completos y conversión sobre la
// ventana reciente. Se consulta al entrar y con el botón de refresh; los
// conteos no se streamean porque salen caros en vivo.
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	output, err := h.MetricsUC.Execute(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Error al conectar con el servidor.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(output)
}

func (h *AdminHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Sessions.Recent(r.Context(), h.Window)
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Error al conectar con el servidor.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessions)
}

func (h *AdminHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.Recent(r.Context(), h.Window)
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Error al conectar con el servidor.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(leads)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.Recent(r.Context(), h.Window)
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Error al conectar con el servidor.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}
