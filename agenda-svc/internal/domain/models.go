package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	EventoPedidoCriado     = "pedido_criado"
	EventoPedidoAtualizado = "pedido_atualizado"
	EventoPedidoRemovido   = "pedido_removido"
)

// EventoPedido mirrors the payload pedido-svc writes to the pedidos topic.
type EventoPedido struct {
	Tipo         string    `json:"tipo"`
	PedidoID     int64     `json:"pedido_id"`
	ClienteID    int64     `json:"cliente_id,omitempty"`
	DataRetirada string    `json:"data_retirada,omitempty"`
	HoraRetirada string    `json:"hora_retirada,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type Retirada struct {
	PedidoID        int64           `json:"pedido_id"`
	DataRetirada    string          `json:"data_retirada"`
	HoraRetirada    string          `json:"hora_retirada"`
	ClienteNome     string          `json:"cliente_nome"`
	ClienteTelefone string          `json:"cliente_telefone"`
	ValorTotal      decimal.Decimal `json:"valor_total"`
	ValorAdiantado  decimal.Decimal `json:"valor_adiantado"`
}

const (
	FonteRedis    = "redis"
	FontePostgres = "postgres"
)

type Agenda struct {
	Data      string     `json:"data"`
	Fonte     string     `json:"fonte"`
	Retiradas []Retirada `json:"retiradas"`
}

var (
	ErrDataInvalida = errors.New("data inválida, use AAAA-MM-DD")
	ErrHoraInvalida = errors.New("hora inválida, use HH:MM")
	ErrEventoSemID  = errors.New("evento sem pedido_id")
)

const (
	LayoutData = "2006-01-02"
	LayoutHora = "15:04"
)

func ValidarData(data string) error {
	if _, err := time.Parse(LayoutData, data); err != nil {
		return fmt.Errorf("%w: %q", ErrDataInvalida, data)
	}
	return nil
}

// MinutosDoDia converts a pickup time to its offset from midnight. Seconds,
// when present, are ignored.
func MinutosDoDia(hora string) (int, error) {
	if len(hora) > len(LayoutHora) {
		hora = hora[:len(LayoutHora)]
	}
	t, err := time.Parse(LayoutHora, hora)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrHoraInvalida, hora)
	}
	return t.Hour()*60 + t.Minute(), nil
}
