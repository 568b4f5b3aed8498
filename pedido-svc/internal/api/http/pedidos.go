package httpapi

import (
	"net/http"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"
)

const IdempotencyKeyHeader = "Idempotency-Key"

func filtroFromQuery(r *http.Request) domain.FiltroPedidos {
	return domain.FiltroPedidos{ClientePrefixo: r.URL.Query().Get("cliente")}
}

func (h *Handler) getPedidos(w http.ResponseWriter, r *http.Request) {
	pedidos, err := h.Pedidos.List(r.Context(), filtroFromQuery(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pedidos)
}

func (h *Handler) getPedido(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	pedido, err := h.Pedidos.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pedido)
}

func (h *Handler) createPedido(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePedidoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pedido, err := h.Pedidos.Create(r.Context(), req, r.Header.Get(IdempotencyKeyHeader))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      pedido.ID,
		"message": "Pedido criado com sucesso",
	})
}

func (h *Handler) updatePedido(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req domain.UpdatePedidoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pedido, err := h.Pedidos.Update(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pedido)
}

func (h *Handler) deletePedido(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.Pedidos.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Pedido removido com sucesso"})
}

func (h *Handler) getPedidoQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	png, err := h.Pedidos.QRCode(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) getResumoProducao(w http.ResponseWriter, r *http.Request) {
	resumo, err := h.Relatorios.Producao(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resumo)
}

func (h *Handler) getResumoFinanceiro(w http.ResponseWriter, r *http.Request) {
	resumo, err := h.Relatorios.Financeiro(r.Context(), filtroFromQuery(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resumo)
}
