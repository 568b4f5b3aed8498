package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/domain"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/service"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	Agenda service.AgendaServiceInterface
	Log    *slog.Logger
}

func NewHandler(agenda service.AgendaServiceInterface, log *slog.Logger) *Handler {
	return &Handler{Agenda: agenda, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/agenda/{data}", h.getAgenda).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "agenda-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) getAgenda(w http.ResponseWriter, r *http.Request) {
	agenda, err := h.Agenda.Agenda(r.Context(), mux.Vars(r)["data"])
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrDataInvalida) {
			status = http.StatusBadRequest
		} else if h.Log != nil {
			h.Log.Error("agenda_failed", "request_id", logger.RequestID(r.Context()), "error", err)
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, agenda)
}
