package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/logger"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/service"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

var errIDInvalido = errors.New("id inválido")

type Handler struct {
	Clientes   service.ClienteServiceInterface
	Cardapio   service.CardapioServiceInterface
	Pedidos    service.PedidoServiceInterface
	Relatorios service.RelatorioServiceInterface
	Log        *slog.Logger
}

func NewHandler(
	clientes service.ClienteServiceInterface,
	cardapio service.CardapioServiceInterface,
	pedidos service.PedidoServiceInterface,
	relatorios service.RelatorioServiceInterface,
	log *slog.Logger,
) *Handler {
	return &Handler{
		Clientes:   clientes,
		Cardapio:   cardapio,
		Pedidos:    pedidos,
		Relatorios: relatorios,
		Log:        log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/clientes", h.getClientes).Methods("GET")
	r.HandleFunc("/clientes", h.createCliente).Methods("POST")
	r.HandleFunc("/clientes/{id}", h.updateCliente).Methods("PUT")
	r.HandleFunc("/clientes/{id}", h.deleteCliente).Methods("DELETE")

	r.HandleFunc("/cardapio", h.getCardapio).Methods("GET")
	r.HandleFunc("/cardapio", h.createItemCardapio).Methods("POST")
	r.HandleFunc("/cardapio/{id}", h.updateItemCardapio).Methods("PUT")
	r.HandleFunc("/cardapio/{id}", h.deleteItemCardapio).Methods("DELETE")

	r.HandleFunc("/pedidos", h.getPedidos).Methods("GET")
	r.HandleFunc("/pedidos", h.createPedido).Methods("POST")
	r.HandleFunc("/pedidos/{id}", h.getPedido).Methods("GET")
	r.HandleFunc("/pedidos/{id}", h.updatePedido).Methods("PUT")
	r.HandleFunc("/pedidos/{id}", h.deletePedido).Methods("DELETE")
	r.HandleFunc("/pedidos/{id}/qrcode", h.getPedidoQRCode).Methods("GET")

	r.HandleFunc("/relatorios/producao", h.getResumoProducao).Methods("GET")
	r.HandleFunc("/relatorios/financeiro", h.getResumoFinanceiro).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pedido-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidacao), errors.Is(err, errIDInvalido):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPedidoNotFound),
		errors.Is(err, domain.ErrClienteNotFound),
		errors.Is(err, domain.ErrItemCardapioNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPedidoDuplicado),
		errors.Is(err, domain.ErrClienteEmUso),
		errors.Is(err, domain.ErrItemEmUso):
		return http.StatusConflict
	case errors.Is(err, service.ErrQRCodeDesabilitado):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail maps err to its status code. Unexpected errors are logged with the
// request id before being reported.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError && h.Log != nil {
		h.Log.Error("request_failed",
			"request_id", logger.RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeError(w, status, err.Error())
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido: "+err.Error())
		return false
	}
	return true
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, errIDInvalido
	}
	return id, nil
}

func (h *Handler) getClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Clientes.List()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clientes)
}

func (h *Handler) createCliente(w http.ResponseWriter, r *http.Request) {
	var cliente domain.Cliente
	if !decodeBody(w, r, &cliente) {
		return
	}
	if err := h.Clientes.Create(&cliente); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cliente)
}

func (h *Handler) updateCliente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var cliente domain.Cliente
	if !decodeBody(w, r, &cliente) {
		return
	}
	cliente.ID = id
	if err := h.Clientes.Update(&cliente); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cliente)
}

func (h *Handler) deleteCliente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.Clientes.Delete(id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cliente removido com sucesso"})
}

func (h *Handler) getCardapio(w http.ResponseWriter, r *http.Request) {
	itens, err := h.Cardapio.List()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itens)
}

func (h *Handler) createItemCardapio(w http.ResponseWriter, r *http.Request) {
	var item domain.ItemCardapio
	if !decodeBody(w, r, &item) {
		return
	}
	if err := h.Cardapio.Create(&item); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateItemCardapio(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var item domain.ItemCardapio
	if !decodeBody(w, r, &item) {
		return
	}
	item.ID = id
	if err := h.Cardapio.Update(&item); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteItemCardapio(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.Cardapio.Delete(id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item removido com sucesso"})
}
