package service

import (
	"context"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/storage"
)

type ClienteRepository interface {
	CreateCliente(cliente *domain.Cliente) error
	ListClientes() ([]domain.Cliente, error)
	UpdateCliente(cliente *domain.Cliente) error
	DeleteCliente(id int64) (int64, error)
}

type CardapioRepository interface {
	CreateItemCardapio(item *domain.ItemCardapio) error
	ListCardapio() ([]domain.ItemCardapio, error)
	UpdateItemCardapio(item *domain.ItemCardapio) error
	DeleteItemCardapio(id int64) (int64, error)
	GetItensCardapio(ctx context.Context, ids []int64) (map[int64]domain.ItemCardapio, error)
}

type PedidoRepository interface {
	CreatePedido(ctx context.Context, pedido *domain.Pedido) error
	ListPedidos(ctx context.Context, filtro domain.FiltroPedidos) ([]domain.Pedido, error)
	GetPedido(ctx context.Context, id int64) (*domain.Pedido, error)
	UpdatePedido(ctx context.Context, id int64, atualizacao domain.AtualizacaoPedido) (*domain.Pedido, error)
	DeletePedido(ctx context.Context, id int64) error
}

type IdempotencyCache interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type EventPublisher interface {
	PublishPedido(ctx context.Context, evento domain.EventoPedido) error
}

type ClienteServiceInterface interface {
	Create(cliente *domain.Cliente) error
	List() ([]domain.Cliente, error)
	Update(cliente *domain.Cliente) error
	Delete(id int64) error
}

type CardapioServiceInterface interface {
	Create(item *domain.ItemCardapio) error
	List() ([]domain.ItemCardapio, error)
	Update(item *domain.ItemCardapio) error
	Delete(id int64) error
}

type PedidoServiceInterface interface {
	Create(ctx context.Context, req domain.CreatePedidoRequest, idempotencyKey string) (*domain.Pedido, error)
	List(ctx context.Context, filtro domain.FiltroPedidos) ([]domain.Pedido, error)
	Get(ctx context.Context, id int64) (*domain.Pedido, error)
	Update(ctx context.Context, id int64, req domain.UpdatePedidoRequest) (*domain.Pedido, error)
	Delete(ctx context.Context, id int64) error
	QRCode(ctx context.Context, id int64) ([]byte, error)
}

type RelatorioServiceInterface interface {
	Producao(ctx context.Context) (domain.ResumoProducao, error)
	Financeiro(ctx context.Context, filtro domain.FiltroPedidos) (domain.ResumoFinanceiro, error)
}

var (
	_ ClienteRepository  = (*storage.PostgresRepository)(nil)
	_ CardapioRepository = (*storage.PostgresRepository)(nil)
	_ PedidoRepository   = (*storage.PostgresRepository)(nil)
	_ IdempotencyCache   = (*storage.RedisIdempotency)(nil)
	_ EventPublisher     = (*storage.KafkaPublisher)(nil)
)
