package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/logger"

	"github.com/gorilla/mux"
)

const apiPrefix = "/api"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	PedidoSvcURL string
	AgendaSvcURL string
	FrontendDir  string
}

type Gateway struct {
	config Config
	client HTTPClient
	log    *slog.Logger
}

func NewGateway(config Config, client HTTPClient, log *slog.Logger) *Gateway {
	if log == nil {
		log = logger.Discard()
	}
	return &Gateway{
		config: config,
		client: client,
		log:    log,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ProxyRequest forwards r to targetURL+path, copying headers both ways. The
// request id assigned by the logging middleware is passed on so that the
// backend logs the same id.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL, path string) {
	url := targetURL + path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.log.Error("proxy_request_invalid", "url", url, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	if id := logger.RequestID(r.Context()); id != "" {
		req.Header.Set(logger.RequestIDHeader, id)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Error("proxy_failed",
			"request_id", logger.RequestID(r.Context()),
			"target", targetURL,
			"path", path,
			"error", err,
		)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "serviço indisponível"})
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.log.Warn("proxy_copy_failed", "path", path, "error", err)
	}
}

// pedidoRoots are the first path segments served by pedido-svc.
var pedidoRoots = map[string]bool{
	"clientes":   true,
	"cardapio":   true,
	"pedidos":    true,
	"relatorios": true,
}

// RouteHandler strips /api and picks the backend from the first remaining
// segment.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, apiPrefix)
	root := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]

	switch {
	case root == "agenda":
		g.ProxyRequest(w, r, g.config.AgendaSvcURL, path)
	case pedidoRoots[root]:
		g.ProxyRequest(w, r, g.config.PedidoSvcURL, path)
	default:
		g.log.Debug("route_not_found", "path", r.URL.Path)
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "rota não encontrada"})
	}
}

func (g *Gateway) serveFrontend(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
}

func (g *Gateway) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix(apiPrefix + "/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	r.PathPrefix("/").HandlerFunc(g.serveFrontend)
	return r
}
