package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/api-gateway/internal/gateway"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PEDIDO_SVC_URL", "http://pedidos:9000")
	t.Setenv("AGENDA_SVC_URL", "")
	t.Setenv("FRONTEND_DIR", "")

	cfg := loadConfig()
	assert.Equal(t, "http://pedidos:9000", cfg.PedidoSvcURL)
	assert.Equal(t, "http://localhost:8082", cfg.AgendaSvcURL)
	assert.Equal(t, "./frontend", cfg.FrontendDir)
}

func TestNewHandler_ProxiesWithRequestID(t *testing.T) {
	var backendPath, backendRequestID string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendPath = r.URL.Path
		backendRequestID = r.Header.Get(logger.RequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	gw := gateway.NewGateway(gateway.Config{PedidoSvcURL: backend.URL, AgendaSvcURL: backend.URL}, backend.Client(), logger.Discard())
	handler := newHandler(gw, logger.Discard())

	req := httptest.NewRequest(http.MethodGet, "/api/pedidos", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "/pedidos", backendPath)
	assert.NotEmpty(t, backendRequestID)
	assert.Equal(t, backendRequestID, rr.Header().Get(logger.RequestIDHeader))
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
