package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishPedido(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &KafkaPublisher{Writer: writer}

	evento := domain.EventoPedido{
		Tipo:         domain.EventoPedidoCriado,
		PedidoID:     42,
		ClienteID:    3,
		DataRetirada: "2024-12-24",
		HoraRetirada: "10:30",
		Timestamp:    time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.PublishPedido(context.Background(), evento))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "42", string(writer.messages[0].Key))

	var decoded domain.EventoPedido
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, evento, decoded)
}

func TestKafkaPublisher_PropagatesWriterError(t *testing.T) {
	publisher := &KafkaPublisher{Writer: &fakeWriter{err: errors.New("broker down")}}

	err := publisher.PublishPedido(context.Background(), domain.EventoPedido{PedidoID: 1})
	assert.EqualError(t, err, "broker down")
}
