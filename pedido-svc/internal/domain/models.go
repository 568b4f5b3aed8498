package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type Unidade string

const (
	UnidadeUnitaria Unidade = "un"
	UnidadeKg       Unidade = "kg"
)

func (u Unidade) Valida() bool {
	return u == UnidadeUnitaria || u == UnidadeKg
}

type Categoria string

const (
	CategoriaCozinha     Categoria = "cozinha"
	CategoriaConfeitaria Categoria = "confeitaria"
)

func (c Categoria) Valida() bool {
	return c == CategoriaCozinha || c == CategoriaConfeitaria
}

type Cliente struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

type ItemCardapio struct {
	ID        int64           `json:"id"`
	Nome      string          `json:"nome"`
	Preco     decimal.Decimal `json:"preco"`
	Unidade   Unidade         `json:"unidade"`
	Categoria Categoria       `json:"categoria"`
}

type Pedido struct {
	ID              int64           `json:"id"`
	ClienteID       int64           `json:"cliente_id"`
	ClienteNome     string          `json:"cliente_nome,omitempty"`
	ClienteTelefone string          `json:"cliente_telefone,omitempty"`
	DataRetirada    string          `json:"data_retirada"`
	HoraRetirada    string          `json:"hora_retirada"`
	ValorAdiantado  decimal.Decimal `json:"valor_adiantado"`
	ValorTotal      decimal.Decimal `json:"valor_total"`
	CreatedAt       time.Time       `json:"created_at"`
	Itens           []ItemPedido    `json:"itens,omitempty"`
}

type ItemPedido struct {
	ID            int64           `json:"id"`
	PedidoID      int64           `json:"pedido_id"`
	CardapioID    int64           `json:"cardapio_id"`
	ItemNome      string          `json:"item_nome"`
	Unidade       Unidade         `json:"unidade"`
	Categoria     Categoria       `json:"categoria"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
}

// CreatePedidoRequest is the body of POST /pedidos.
type CreatePedidoRequest struct {
	ClienteID      int64               `json:"clienteId"`
	DataRetirada   string              `json:"dataRetirada"`
	HoraRetirada   string              `json:"horaRetirada"`
	ValorAdiantado decimal.Decimal     `json:"valorAdiantado"`
	ValorTotal     decimal.NullDecimal `json:"valorTotal"`
	Itens          []ItemPedidoInput   `json:"itens"`
}

type ItemPedidoInput struct {
	ItemID        int64               `json:"itemId"`
	Quantidade    decimal.Decimal     `json:"quantidade"`
	ValorUnitario decimal.NullDecimal `json:"valorUnitario"`
	ValorTotal    decimal.NullDecimal `json:"valorTotal"`
}

// UpdatePedidoRequest is the body of PUT /pedidos/{id}. A nil Itens keeps the
// current lines; a non-nil one replaces them all.
type UpdatePedidoRequest struct {
	DataRetirada   string              `json:"dataRetirada"`
	HoraRetirada   string              `json:"horaRetirada"`
	ValorAdiantado decimal.Decimal     `json:"valorAdiantado"`
	ValorTotal     decimal.NullDecimal `json:"valorTotal"`
	Itens          *[]ItemPedidoInput  `json:"itens"`
}

// AtualizacaoPedido is what the store writes on update, already validated and
// priced. Itens is nil when the line set must stay untouched.
type AtualizacaoPedido struct {
	DataRetirada   string
	HoraRetirada   string
	ValorAdiantado decimal.Decimal
	Itens          []ItemPedido
}

type FiltroPedidos struct {
	ClientePrefixo string
}

const (
	EventoPedidoCriado     = "pedido_criado"
	EventoPedidoAtualizado = "pedido_atualizado"
	EventoPedidoRemovido   = "pedido_removido"
)

type EventoPedido struct {
	Tipo         string    `json:"tipo"`
	PedidoID     int64     `json:"pedido_id"`
	ClienteID    int64     `json:"cliente_id,omitempty"`
	DataRetirada string    `json:"data_retirada,omitempty"`
	HoraRetirada string    `json:"hora_retirada,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
