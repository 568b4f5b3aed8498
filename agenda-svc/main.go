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

	httpapi "github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/api/http"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/service"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/storage"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/config"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/logger"

	"golang.org/x/sync/errgroup"
)

const (
	serviceName   = "agenda-svc"
	consumerGroup = "agenda-svc-consumer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	log := logger.New(serviceName)

	db, err := config.InitPostgres(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	var agenda *storage.RedisAgenda
	if config.RedisEnabled() {
		rdb, err := config.InitRedis(ctx)
		if err != nil {
			log.Warn("redis_unavailable", "error", err)
		} else {
			defer rdb.Close()
			agenda = storage.NewRedisAgenda(rdb, storage.DefaultTTL)
		}
	}

	var cache service.AgendaCache
	if agenda != nil {
		cache = agenda
	}

	port := config.GetEnv("PORT", "8082")
	handler := httpapi.NewHandler(service.NewAgendaService(cache, repo, log), log)
	server := httpapi.NewServer(":"+port, httpapi.NewRouter(handler, log))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server_starting", "port", port, "redis", agenda != nil)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("server_stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if shouldConsume(log, agenda != nil) {
		g.Go(func() error {
			reader := config.NewKafkaReader(config.TopicPedidos, consumerGroup)
			defer reader.Close()
			return service.NewConsumer(reader, agenda, log.With("component", "consumer")).Start(gctx)
		})
	}

	return g.Wait()
}

// shouldConsume requires both Kafka and Redis: without Redis there is nowhere
// to file the events.
func shouldConsume(log *slog.Logger, redisReady bool) bool {
	if !config.KafkaEnabled() {
		log.Info("consumer_disabled", "reason", "KAFKA_BROKER not set")
		return false
	}
	if !redisReady {
		log.Warn("consumer_disabled", "reason", "redis unavailable")
		return false
	}
	return true
}
