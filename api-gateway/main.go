package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/api-gateway/internal/gateway"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/config"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/logger"

	"github.com/rs/cors"
)

const serviceName = "api-gateway"

func loadConfig() gateway.Config {
	return gateway.Config{
		PedidoSvcURL: config.GetEnv("PEDIDO_SVC_URL", "http://localhost:8081"),
		AgendaSvcURL: config.GetEnv("AGENDA_SVC_URL", "http://localhost:8082"),
		FrontendDir:  config.GetEnv("FRONTEND_DIR", "./frontend"),
	}
}

func newHandler(gw *gateway.Gateway, log *slog.Logger) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(logger.Middleware(log)(gw.SetupRoutes()))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(serviceName)
	cfg := loadConfig()
	gw := gateway.NewGateway(cfg, &http.Client{Timeout: 30 * time.Second}, log)

	port := config.GetEnv("PORT", "8080")
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           newHandler(gw, log),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server_starting", "port", port, "pedido_svc", cfg.PedidoSvcURL, "agenda_svc", cfg.AgendaSvcURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server_failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown_failed", "error", err)
	}
}
