package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/config"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/logger"
	httpapi "github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/api/http"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/service"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/storage"

	"github.com/spf13/cobra"
)

const serviceName = "pedido-svc"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Orders, customers and menu API for the restaurant back office",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var port string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}
	serve.Flags().StringVarP(&port, "port", "p", config.GetEnv("PORT", "8081"), "HTTP port (overrides PORT)")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context())
		},
	}

	root.AddCommand(serve, migrate)
	return root
}

func runMigrate(ctx context.Context) error {
	log := logger.New(serviceName)

	db, err := config.InitPostgres(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewPostgresRepository(db).EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	log.Info("schema_ready")
	return nil
}

func idempotencyTTL(log *slog.Logger) time.Duration {
	raw := config.GetEnv("IDEMPOTENCY_TTL", "24h")
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Warn("invalid_idempotency_ttl", "value", raw)
		return 24 * time.Hour
	}
	return ttl
}

func runServe(ctx context.Context, port string) error {
	log := logger.New(serviceName)

	db, err := config.InitPostgres(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	var cache service.IdempotencyCache
	if config.RedisEnabled() {
		rdb, err := config.InitRedis(ctx)
		if err != nil {
			log.Warn("redis_unavailable", "error", err)
		} else {
			defer rdb.Close()
			cache = storage.NewRedisIdempotency(rdb, idempotencyTTL(log))
		}
	}

	var publisher service.EventPublisher
	if config.KafkaEnabled() {
		writer := config.NewKafkaWriter(config.TopicPedidos)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("QR_BASE_URL", "http://localhost:8080")}

	handler := httpapi.NewHandler(
		service.NewClienteService(repo),
		service.NewCardapioService(repo),
		service.NewPedidoService(repo, repo, cache, publisher, qr, log),
		service.NewRelatorioService(repo),
		log,
	)
	server := httpapi.NewServer(":"+port, httpapi.NewRouter(handler, log))

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_starting", "port", port, "redis", cache != nil, "kafka", publisher != nil)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
