package service

import (
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// CalcularSaldo derives what is still owed on one order. A zero or negative
// balance means paid; overpayment keeps its negative saldo.
func CalcularSaldo(pedido domain.Pedido) domain.SaldoPedido {
	saldo := pedido.ValorTotal.Sub(pedido.ValorAdiantado)

	resultado := domain.SaldoPedido{
		PedidoID:       pedido.ID,
		ClienteNome:    pedido.ClienteNome,
		DataRetirada:   pedido.DataRetirada,
		HoraRetirada:   pedido.HoraRetirada,
		ValorTotal:     pedido.ValorTotal,
		ValorAdiantado: pedido.ValorAdiantado,
		Saldo:          saldo,
		Situacao:       domain.SituacaoPago,
		Falta:          decimal.Zero,
		Descricao:      "Pago",
	}
	if saldo.IsPositive() {
		resultado.Situacao = domain.SituacaoSaldoDevedor
		resultado.Falta = saldo
		resultado.Descricao = "Falta " + domain.FormatarReais(saldo)
	}
	return resultado
}

// ResumirFinanceiro totals a set of orders. total_a_receber is the plain sum
// of every saldo, so overpaid orders reduce it.
func ResumirFinanceiro(pedidos []domain.Pedido) domain.ResumoFinanceiro {
	resumo := domain.ResumoFinanceiro{
		Pedidos:        make([]domain.SaldoPedido, 0, len(pedidos)),
		TotalGeral:     decimal.Zero,
		TotalAdiantado: decimal.Zero,
		TotalAReceber:  decimal.Zero,
	}
	for _, pedido := range pedidos {
		saldo := CalcularSaldo(pedido)
		resumo.Pedidos = append(resumo.Pedidos, saldo)
		resumo.TotalGeral = resumo.TotalGeral.Add(pedido.ValorTotal)
		resumo.TotalAdiantado = resumo.TotalAdiantado.Add(pedido.ValorAdiantado)
		resumo.TotalAReceber = resumo.TotalAReceber.Add(saldo.Saldo)
	}
	return resumo
}
