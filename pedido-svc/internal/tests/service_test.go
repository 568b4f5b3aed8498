package tests

import (
	"context"
	"testing"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/mocks"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClienteService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     *domain.Cliente
		callsRepo bool
		mockError error
		wantErr   error
	}{
		{
			name:      "valid cliente",
			input:     &domain.Cliente{Nome: "  Ana  ", Telefone: "1188"},
			callsRepo: true,
		},
		{
			name:      "database error",
			input:     &domain.Cliente{Nome: "Ana"},
			callsRepo: true,
			mockError: assert.AnError,
			wantErr:   assert.AnError,
		},
		{
			name:    "empty name",
			input:   &domain.Cliente{Nome: "   "},
			wantErr: domain.ErrNomeObrigatorio,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.ClienteRepository)
			svc := service.NewClienteService(mockRepo)

			if testCase.callsRepo {
				mockRepo.On("CreateCliente", testCase.input).Return(testCase.mockError).Once()
			}

			err := svc.Create(testCase.input)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Ana", testCase.input.Nome)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestClienteService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		rows     int64
		repoErr  error
		expected error
	}{
		{name: "deleted", rows: 1},
		{name: "not found", rows: 0, expected: domain.ErrClienteNotFound},
		{name: "in use", repoErr: domain.ErrClienteEmUso, expected: domain.ErrClienteEmUso},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewClienteRepository(t)
			svc := service.NewClienteService(mockRepo)

			mockRepo.On("DeleteCliente", int64(3)).Return(testCase.rows, testCase.repoErr).Once()

			err := svc.Delete(3)
			if testCase.expected != nil {
				assert.ErrorIs(t, err, testCase.expected)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCardapioService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.ItemCardapio
		wantErr error
		check   func(t *testing.T, item *domain.ItemCardapio)
	}{
		{
			name:  "defaults unit and category",
			input: domain.ItemCardapio{Nome: "Coxinha", Preco: decimal.RequireFromString("6.5")},
			check: func(t *testing.T, item *domain.ItemCardapio) {
				assert.Equal(t, domain.UnidadeUnitaria, item.Unidade)
				assert.Equal(t, domain.CategoriaCozinha, item.Categoria)
				assert.True(t, item.Preco.Equal(decimal.RequireFromString("6.50")))
			},
		},
		{
			name:    "invalid unit",
			input:   domain.ItemCardapio{Nome: "Suco", Unidade: "litro"},
			wantErr: domain.ErrUnidadeInvalida,
		},
		{
			name:    "invalid category",
			input:   domain.ItemCardapio{Nome: "Suco", Categoria: "bar"},
			wantErr: domain.ErrCategoriaInvalida,
		},
		{
			name:    "negative price",
			input:   domain.ItemCardapio{Nome: "Suco", Preco: decimal.NewFromInt(-1)},
			wantErr: domain.ErrValorNegativo,
		},
		{
			name:    "price with three decimals",
			input:   domain.ItemCardapio{Nome: "Suco", Preco: decimal.RequireFromString("6.499")},
			wantErr: domain.ErrPrecisaoValor,
		},
		{
			name:    "price above column limit",
			input:   domain.ItemCardapio{Nome: "Suco", Preco: decimal.RequireFromString("100000000")},
			wantErr: domain.ErrValorForaDoLimite,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewCardapioRepository(t)
			svc := service.NewCardapioService(mockRepo)
			item := testCase.input

			if testCase.wantErr == nil {
				mockRepo.On("CreateItemCardapio", &item).Return(nil).Once()
			}

			err := svc.Create(&item)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.ErrorIs(t, err, domain.ErrValidacao)
				return
			}
			require.NoError(t, err)
			testCase.check(t, &item)
		})
	}
}

func TestCardapioService_UpdateNotFound(t *testing.T) {
	mockRepo := mocks.NewCardapioRepository(t)
	svc := service.NewCardapioService(mockRepo)

	mockRepo.On("UpdateItemCardapio", mock.Anything).Return(domain.ErrItemCardapioNotFound).Once()

	err := svc.Update(&domain.ItemCardapio{ID: 9, Nome: "Pudim", Categoria: domain.CategoriaConfeitaria})
	assert.ErrorIs(t, err, domain.ErrItemCardapioNotFound)
}

func TestRelatorioService(t *testing.T) {
	repo := mocks.NewPedidoRepository(t)
	svc := service.NewRelatorioService(repo)
	ctx := context.Background()

	pedidos := []domain.Pedido{
		{
			ID: 1, ClienteNome: "Ana", ValorTotal: decimal.NewFromInt(30), ValorAdiantado: decimal.NewFromInt(50),
			Itens: []domain.ItemPedido{{CardapioID: 7, ItemNome: "Brigadeiro", Unidade: domain.UnidadeUnitaria,
				Categoria: domain.CategoriaConfeitaria, Quantidade: decimal.NewFromInt(2)}},
		},
		{
			ID: 2, ClienteNome: "Bruna", ValorTotal: decimal.NewFromInt(100), ValorAdiantado: decimal.Zero,
			Itens: []domain.ItemPedido{{CardapioID: 7, ItemNome: "Brigadeiro", Unidade: domain.UnidadeUnitaria,
				Categoria: domain.CategoriaConfeitaria, Quantidade: decimal.NewFromInt(2)}},
		},
	}

	repo.On("ListPedidos", mock.Anything, domain.FiltroPedidos{}).Return(pedidos, nil).Once()
	repo.On("ListPedidos", mock.Anything, domain.FiltroPedidos{ClientePrefixo: "an"}).Return(pedidos[:1], nil).Once()

	producao, err := svc.Producao(ctx)
	require.NoError(t, err)
	require.Len(t, producao.Confeitaria, 1)
	assert.True(t, producao.Confeitaria[0].Quantidade.Equal(decimal.NewFromInt(4)))

	financeiro, err := svc.Financeiro(ctx, domain.FiltroPedidos{ClientePrefixo: "an"})
	require.NoError(t, err)
	assert.Len(t, financeiro.Pedidos, 1)
	assert.True(t, financeiro.TotalAReceber.Equal(decimal.NewFromInt(-20)))
}
