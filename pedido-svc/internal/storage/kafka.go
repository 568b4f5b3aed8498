package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer messageWriter
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishPedido keys every event by order id so that all events of one order
// land on the same partition in order.
func (p *KafkaPublisher) PublishPedido(ctx context.Context, evento domain.EventoPedido) error {
	payload, err := json.Marshal(evento)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(evento.PedidoID, 10)),
		Value: payload,
	})
}
