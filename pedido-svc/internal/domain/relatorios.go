package domain

import "github.com/shopspring/decimal"

type ItemProducao struct {
	CardapioID int64           `json:"cardapio_id"`
	Nome       string          `json:"nome"`
	Unidade    Unidade         `json:"unidade"`
	Categoria  Categoria       `json:"categoria"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

type ResumoProducao struct {
	Cozinha     []ItemProducao `json:"cozinha"`
	Confeitaria []ItemProducao `json:"confeitaria"`
}

const (
	SituacaoPago         = "pago"
	SituacaoSaldoDevedor = "saldo_devedor"
)

type SaldoPedido struct {
	PedidoID       int64           `json:"pedido_id"`
	ClienteNome    string          `json:"cliente_nome"`
	DataRetirada   string          `json:"data_retirada"`
	HoraRetirada   string          `json:"hora_retirada"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
	ValorAdiantado decimal.Decimal `json:"valor_adiantado"`
	Saldo          decimal.Decimal `json:"saldo"`
	Situacao       string          `json:"situacao"`
	Falta          decimal.Decimal `json:"falta"`
	Descricao      string          `json:"descricao"`
}

type ResumoFinanceiro struct {
	Pedidos        []SaldoPedido   `json:"pedidos"`
	TotalGeral     decimal.Decimal `json:"total_geral"`
	TotalAdiantado decimal.Decimal `json:"total_adiantado"`
	TotalAReceber  decimal.Decimal `json:"total_a_receber"`
}
