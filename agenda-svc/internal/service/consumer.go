package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/domain"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/logger"
)

const retryDelay = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    *slog.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, log *slog.Logger) *Consumer {
	if log == nil {
		log = logger.Discard()
	}
	return &Consumer{Reader: reader, Store: store, Log: log}
}

// Start reads order events until ctx is cancelled or the reader is closed.
// Every message is committed after handling, failed or not.
func (c *Consumer) Start(ctx context.Context) error {
	c.Log.Info("consumer_starting")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.Log.Info("consumer_stopped")
				return nil
			}
			c.Log.Error("kafka_read_failed", "error", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryDelay):
			}
			continue
		}

		var evento domain.EventoPedido
		if err := json.Unmarshal(message.Value, &evento); err != nil {
			c.Log.Warn("evento_invalido", "offset", message.Offset, "error", err)
		} else if err := c.ProcessEvento(ctx, evento); err != nil {
			c.Log.Error("evento_nao_processado",
				"tipo", evento.Tipo,
				"pedido_id", evento.PedidoID,
				"error", err,
			)
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil && ctx.Err() == nil {
			c.Log.Error("kafka_commit_failed", "offset", message.Offset, "error", err)
		}
	}
}

func (c *Consumer) ProcessEvento(ctx context.Context, evento domain.EventoPedido) error {
	if evento.PedidoID <= 0 {
		return domain.ErrEventoSemID
	}

	switch evento.Tipo {
	case domain.EventoPedidoCriado, domain.EventoPedidoAtualizado:
		if err := domain.ValidarData(evento.DataRetirada); err != nil {
			return err
		}
		minutos, err := domain.MinutosDoDia(evento.HoraRetirada)
		if err != nil {
			return err
		}
		if err := c.Store.Agendar(ctx, evento.PedidoID, evento.DataRetirada, minutos); err != nil {
			return err
		}
		c.Log.Debug("pedido_agendado", "pedido_id", evento.PedidoID, "data", evento.DataRetirada)
	case domain.EventoPedidoRemovido:
		if err := c.Store.Remover(ctx, evento.PedidoID); err != nil {
			return err
		}
		c.Log.Debug("pedido_desagendado", "pedido_id", evento.PedidoID)
	default:
		c.Log.Debug("evento_ignorado", "tipo", evento.Tipo)
	}
	return nil
}
