package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/PescadorStudios/Vlado/internal/infra/http/middleware"
	"github.com/PescadorStudios/Vlado/internal/usecase"
)

type TrackHandler struct {
	UC *usecase.TrackStepUseCase
}

func NewTrackHandler(uc *usecase.TrackStepUseCase) *TrackHandler {
	return &TrackHandler{UC: uc}
}

// Handle registra una transición de etapa. Si el Store falla el visitante
// recibe un error y puede reintentar la misma etapa: nunca se traba el flujo.
func (h *TrackHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.TrackStepInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if err := h.UC.Execute(r.Context(), input); err != nil {
		if usecase.IsDomainError(err) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSONError(w, http.StatusServiceUnavailable, "No pudimos guardar tu progreso. Intenta de nuevo.")
		return
	}

	middleware.RecordStepTracked(input.Step)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": msg,
	})
}
