package service

import (
	"testing"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func pedidoValores(id int64, total, adiantado string) domain.Pedido {
	return domain.Pedido{
		ID:             id,
		ValorTotal:     decimal.RequireFromString(total),
		ValorAdiantado: decimal.RequireFromString(adiantado),
	}
}

func TestCalcularSaldo(t *testing.T) {
	tests := []struct {
		name          string
		pedido        domain.Pedido
		wantSaldo     string
		wantSituacao  string
		wantFalta     string
		wantDescricao string
	}{
		{
			name:          "saldo devedor",
			pedido:        pedidoValores(1, "80.00", "30.00"),
			wantSaldo:     "50",
			wantSituacao:  domain.SituacaoSaldoDevedor,
			wantFalta:     "50",
			wantDescricao: "Falta R$ 50,00",
		},
		{
			name:          "quitado",
			pedido:        pedidoValores(2, "45.50", "45.50"),
			wantSaldo:     "0",
			wantSituacao:  domain.SituacaoPago,
			wantFalta:     "0",
			wantDescricao: "Pago",
		},
		{
			name:          "pago a mais",
			pedido:        pedidoValores(3, "30.00", "50.00"),
			wantSaldo:     "-20",
			wantSituacao:  domain.SituacaoPago,
			wantFalta:     "0",
			wantDescricao: "Pago",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			saldo := CalcularSaldo(testCase.pedido)
			assert.True(t, saldo.Saldo.Equal(decimal.RequireFromString(testCase.wantSaldo)), "saldo %s", saldo.Saldo)
			assert.Equal(t, testCase.wantSituacao, saldo.Situacao)
			assert.True(t, saldo.Falta.Equal(decimal.RequireFromString(testCase.wantFalta)))
			assert.Equal(t, testCase.wantDescricao, saldo.Descricao)
		})
	}
}

func TestResumirFinanceiro_PagamentoAMaisReduzTotalAReceber(t *testing.T) {
	pedidos := []domain.Pedido{
		pedidoValores(1, "100.00", "40.00"),
		pedidoValores(2, "30.00", "50.00"),
	}

	resumo := ResumirFinanceiro(pedidos)

	assert.Len(t, resumo.Pedidos, 2)
	assert.True(t, resumo.TotalGeral.Equal(decimal.RequireFromString("130")))
	assert.True(t, resumo.TotalAdiantado.Equal(decimal.RequireFromString("90")))
	assert.True(t, resumo.TotalAReceber.Equal(decimal.RequireFromString("40")), "got %s", resumo.TotalAReceber)
}

func TestResumirFinanceiro_Idempotente(t *testing.T) {
	pedidos := []domain.Pedido{
		pedidoValores(1, "10.10", "0.10"),
		pedidoValores(2, "0.20", "0.00"),
		pedidoValores(3, "99.99", "100.00"),
	}

	primeiro := ResumirFinanceiro(pedidos)
	segundo := ResumirFinanceiro(pedidos)

	assert.Equal(t, primeiro, segundo)
	assert.True(t, primeiro.TotalAReceber.Equal(decimal.RequireFromString("10.19")))
}

func TestResumirFinanceiro_Vazio(t *testing.T) {
	resumo := ResumirFinanceiro(nil)
	assert.NotNil(t, resumo.Pedidos)
	assert.True(t, resumo.TotalAReceber.IsZero())
}
