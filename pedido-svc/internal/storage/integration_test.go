//go:build integration

package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *storage.PostgresRepository {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("restaurante"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := storage.NewPostgresRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))
	return repo
}

type fixture struct {
	cliente    domain.Cliente
	brigadeiro domain.ItemCardapio
	feijoada   domain.ItemCardapio
}

func seed(t *testing.T, repo *storage.PostgresRepository) fixture {
	t.Helper()
	f := fixture{
		cliente: domain.Cliente{Nome: "Ana Paula", Telefone: "11988887777"},
		brigadeiro: domain.ItemCardapio{Nome: "Brigadeiro", Preco: decimal.RequireFromString("3.50"),
			Unidade: domain.UnidadeUnitaria, Categoria: domain.CategoriaConfeitaria},
		feijoada: domain.ItemCardapio{Nome: "Feijoada", Preco: decimal.RequireFromString("42.90"),
			Unidade: domain.UnidadeKg, Categoria: domain.CategoriaCozinha},
	}
	require.NoError(t, repo.CreateCliente(&f.cliente))
	require.NoError(t, repo.CreateItemCardapio(&f.brigadeiro))
	require.NoError(t, repo.CreateItemCardapio(&f.feijoada))
	return f
}

func novoPedido(f fixture) *domain.Pedido {
	return &domain.Pedido{
		ClienteID:      f.cliente.ID,
		DataRetirada:   "2024-12-24",
		HoraRetirada:   "10:30",
		ValorAdiantado: decimal.RequireFromString("20.00"),
		ValorTotal:     decimal.RequireFromString("71.36"),
		Itens: []domain.ItemPedido{
			{CardapioID: f.brigadeiro.ID, Quantidade: decimal.RequireFromString("4"),
				ValorUnitario: decimal.RequireFromString("3.50"), ValorTotal: decimal.RequireFromString("14.00")},
			{CardapioID: f.feijoada.ID, Quantidade: decimal.RequireFromString("1.337"),
				ValorUnitario: decimal.RequireFromString("42.90"), ValorTotal: decimal.RequireFromString("57.36")},
		},
	}
}

func TestOrderStore_RoundTrip(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()
	f := seed(t, repo)

	pedido := novoPedido(f)
	require.NoError(t, repo.CreatePedido(ctx, pedido))

	pedidos, err := repo.ListPedidos(ctx, domain.FiltroPedidos{})
	require.NoError(t, err)
	require.Len(t, pedidos, 1)

	got := pedidos[0]
	assert.Equal(t, pedido.ID, got.ID)
	assert.Equal(t, "Ana Paula", got.ClienteNome)
	assert.Equal(t, "2024-12-24", got.DataRetirada)
	assert.Equal(t, "10:30", got.HoraRetirada)
	assert.True(t, got.ValorTotal.Equal(pedido.ValorTotal))
	assert.True(t, got.ValorAdiantado.Equal(pedido.ValorAdiantado))
	require.Len(t, got.Itens, 2)

	soma := decimal.Zero
	for i, item := range got.Itens {
		assert.Equal(t, pedido.Itens[i].ID, item.ID)
		assert.True(t, item.Quantidade.Equal(pedido.Itens[i].Quantidade))
		assert.True(t, item.ValorUnitario.Equal(pedido.Itens[i].ValorUnitario))
		assert.True(t, item.ValorTotal.Equal(domain.TotalLinha(item.Quantidade, item.ValorUnitario)))
		soma = soma.Add(item.ValorTotal)
	}
	assert.True(t, soma.Equal(got.ValorTotal))
	assert.Equal(t, domain.UnidadeKg, got.Itens[1].Unidade)
}

func TestOrderStore_UpdateWithoutLinesKeepsThem(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()
	f := seed(t, repo)

	pedido := novoPedido(f)
	require.NoError(t, repo.CreatePedido(ctx, pedido))
	antes, err := repo.GetPedido(ctx, pedido.ID)
	require.NoError(t, err)

	atualizado, err := repo.UpdatePedido(ctx, pedido.ID, domain.AtualizacaoPedido{
		DataRetirada:   "2024-12-25",
		HoraRetirada:   "09:00",
		ValorAdiantado: decimal.RequireFromString("71.36"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-12-25", atualizado.DataRetirada)
	assert.True(t, atualizado.ValorTotal.Equal(antes.ValorTotal))

	depois, err := repo.GetPedido(ctx, pedido.ID)
	require.NoError(t, err)
	assert.Equal(t, antes.Itens, depois.Itens)
}

func TestOrderStore_UpdateReplacesLines(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()
	f := seed(t, repo)

	pedido := novoPedido(f)
	require.NoError(t, repo.CreatePedido(ctx, pedido))

	atualizado, err := repo.UpdatePedido(ctx, pedido.ID, domain.AtualizacaoPedido{
		DataRetirada:   "2024-12-24",
		HoraRetirada:   "10:30",
		ValorAdiantado: decimal.Zero,
		Itens: []domain.ItemPedido{
			{CardapioID: f.brigadeiro.ID, Quantidade: decimal.RequireFromString("10"),
				ValorUnitario: decimal.RequireFromString("3.00"), ValorTotal: decimal.RequireFromString("30.00")},
		},
	})
	require.NoError(t, err)
	assert.True(t, atualizado.ValorTotal.Equal(decimal.RequireFromString("30")))

	depois, err := repo.GetPedido(ctx, pedido.ID)
	require.NoError(t, err)
	require.Len(t, depois.Itens, 1)
	for _, antigo := range pedido.Itens {
		assert.NotEqual(t, antigo.ID, depois.Itens[0].ID)
	}
}

func TestOrderStore_UpdateMissingOrderChangesNothing(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()
	f := seed(t, repo)

	pedido := novoPedido(f)
	require.NoError(t, repo.CreatePedido(ctx, pedido))
	antes, err := repo.ListPedidos(ctx, domain.FiltroPedidos{})
	require.NoError(t, err)

	_, err = repo.UpdatePedido(ctx, pedido.ID+1000, domain.AtualizacaoPedido{
		DataRetirada: "2025-01-01",
		HoraRetirada: "08:00",
		Itens:        []domain.ItemPedido{},
	})
	assert.ErrorIs(t, err, domain.ErrPedidoNotFound)

	depois, err := repo.ListPedidos(ctx, domain.FiltroPedidos{})
	require.NoError(t, err)
	assert.Equal(t, antes, depois)
}

func TestOrderStore_FailedLineRollsBackOrder(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()
	f := seed(t, repo)

	pedido := novoPedido(f)
	pedido.Itens[1].CardapioID = f.feijoada.ID + 1000

	err := repo.CreatePedido(ctx, pedido)
	assert.ErrorIs(t, err, domain.ErrItemCardapioNotFound)

	pedidos, err := repo.ListPedidos(ctx, domain.FiltroPedidos{})
	require.NoError(t, err)
	assert.Empty(t, pedidos)

	semCliente := novoPedido(f)
	semCliente.ClienteID = f.cliente.ID + 1000
	assert.ErrorIs(t, repo.CreatePedido(ctx, semCliente), domain.ErrClienteNotFound)
}

func TestOrderStore_DeleteCascades(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()
	f := seed(t, repo)

	pedido := novoPedido(f)
	require.NoError(t, repo.CreatePedido(ctx, pedido))

	_, err := repo.DeleteCliente(f.cliente.ID)
	assert.ErrorIs(t, err, domain.ErrClienteEmUso)
	_, err = repo.DeleteItemCardapio(f.feijoada.ID)
	assert.ErrorIs(t, err, domain.ErrItemEmUso)

	require.NoError(t, repo.DeletePedido(ctx, pedido.ID))
	assert.ErrorIs(t, repo.DeletePedido(ctx, pedido.ID), domain.ErrPedidoNotFound)

	var restantes int
	require.NoError(t, repo.DB.QueryRow("SELECT COUNT(*) FROM itens_pedido WHERE pedido_id = $1", pedido.ID).Scan(&restantes))
	assert.Zero(t, restantes)

	rows, err := repo.DeleteCliente(f.cliente.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestOrderStore_PrefixFilterAndOrdering(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()
	f := seed(t, repo)

	outro := domain.Cliente{Nome: "Bruno"}
	require.NoError(t, repo.CreateCliente(&outro))

	primeiro := novoPedido(f)
	require.NoError(t, repo.CreatePedido(ctx, primeiro))
	segundo := novoPedido(f)
	segundo.ClienteID = outro.ID
	segundo.DataRetirada = "2024-12-31"
	require.NoError(t, repo.CreatePedido(ctx, segundo))

	todos, err := repo.ListPedidos(ctx, domain.FiltroPedidos{})
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, segundo.ID, todos[0].ID)

	filtrados, err := repo.ListPedidos(ctx, domain.FiltroPedidos{ClientePrefixo: "ana"})
	require.NoError(t, err)
	require.Len(t, filtrados, 1)
	assert.Equal(t, primeiro.ID, filtrados[0].ID)

	nenhum, err := repo.ListPedidos(ctx, domain.FiltroPedidos{ClientePrefixo: "%"})
	require.NoError(t, err)
	assert.Empty(t, nenhum)
}
