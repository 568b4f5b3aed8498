package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 30 * 24 * time.Hour

// RedisAgenda keeps one sorted set per pickup day (agenda:<data>) scored by
// minutes since midnight, plus agenda:pedido:<id> holding the day an order is
// currently filed under.
type RedisAgenda struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisAgenda(client *redis.Client, ttl time.Duration) *RedisAgenda {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisAgenda{Client: client, TTL: ttl}
}

func chaveDia(data string) string {
	return "agenda:" + data
}

func chavePedido(pedidoID int64) string {
	return fmt.Sprintf("agenda:pedido:%d", pedidoID)
}

func (a *RedisAgenda) diaAtual(ctx context.Context, pedidoID int64) (string, error) {
	data, err := a.Client.Get(ctx, chavePedido(pedidoID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("ler dia do pedido %d: %w", pedidoID, err)
	}
	return data, nil
}

// Agendar files the order under data, moving it out of the previous day when
// the pickup date changed.
func (a *RedisAgenda) Agendar(ctx context.Context, pedidoID int64, data string, minutos int) error {
	anterior, err := a.diaAtual(ctx, pedidoID)
	if err != nil {
		return err
	}

	membro := strconv.FormatInt(pedidoID, 10)
	_, err = a.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if anterior != "" && anterior != data {
			pipe.ZRem(ctx, chaveDia(anterior), membro)
		}
		pipe.ZAdd(ctx, chaveDia(data), redis.Z{Score: float64(minutos), Member: membro})
		pipe.Expire(ctx, chaveDia(data), a.TTL)
		pipe.Set(ctx, chavePedido(pedidoID), data, a.TTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("agendar pedido %d: %w", pedidoID, err)
	}
	return nil
}

func (a *RedisAgenda) Remover(ctx context.Context, pedidoID int64) error {
	data, err := a.diaAtual(ctx, pedidoID)
	if err != nil {
		return err
	}
	if data == "" {
		return nil
	}

	_, err = a.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, chaveDia(data), strconv.FormatInt(pedidoID, 10))
		pipe.Del(ctx, chavePedido(pedidoID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("remover pedido %d: %w", pedidoID, err)
	}
	return nil
}

// IDsDoDia returns the order ids filed under data, earliest pickup first.
func (a *RedisAgenda) IDsDoDia(ctx context.Context, data string) ([]int64, error) {
	membros, err := a.Client.ZRange(ctx, chaveDia(data), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("ler agenda %s: %w", data, err)
	}

	ids := make([]int64, 0, len(membros))
	for _, membro := range membros {
		id, err := strconv.ParseInt(membro, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
