package service

import (
	"context"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/domain"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	Agendar(ctx context.Context, pedidoID int64, data string, minutos int) error
	Remover(ctx context.Context, pedidoID int64) error
}

type AgendaCache interface {
	IDsDoDia(ctx context.Context, data string) ([]int64, error)
}

type AgendaRepository interface {
	Retiradas(ctx context.Context, data string, ids []int64) ([]domain.Retirada, error)
	ContarDoDia(ctx context.Context, data string) (int, error)
	RetiradasDoDia(ctx context.Context, data string) ([]domain.Retirada, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	ProcessEvento(ctx context.Context, evento domain.EventoPedido) error
}

type AgendaServiceInterface interface {
	Agenda(ctx context.Context, data string) (*domain.Agenda, error)
}

var (
	_ StoreInterface   = (*storage.RedisAgenda)(nil)
	_ AgendaCache      = (*storage.RedisAgenda)(nil)
	_ AgendaRepository = (*storage.PostgresRepository)(nil)
	_ MessageReader    = (*kafka.Reader)(nil)
)
