package service

import (
	"context"
	"log/slog"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/domain"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/logger"
)

type AgendaService struct {
	cache AgendaCache
	repo  AgendaRepository
	log   *slog.Logger
}

// NewAgendaService accepts a nil cache, in which case every read goes to
// Postgres.
func NewAgendaService(cache AgendaCache, repo AgendaRepository, log *slog.Logger) *AgendaService {
	if log == nil {
		log = logger.Discard()
	}
	return &AgendaService{cache: cache, repo: repo, log: log}
}

func (s *AgendaService) Agenda(ctx context.Context, data string) (*domain.Agenda, error) {
	if err := domain.ValidarData(data); err != nil {
		return nil, err
	}

	if retiradas, ok := s.doCache(ctx, data); ok {
		return &domain.Agenda{Data: data, Fonte: domain.FonteRedis, Retiradas: retiradas}, nil
	}

	retiradas, err := s.repo.RetiradasDoDia(ctx, data)
	if err != nil {
		return nil, err
	}
	return &domain.Agenda{Data: data, Fonte: domain.FontePostgres, Retiradas: retiradas}, nil
}

// doCache reports false when the day is missing from Redis, Redis failed, or
// the cached ids no longer match the orders Postgres has for that day.
func (s *AgendaService) doCache(ctx context.Context, data string) ([]domain.Retirada, bool) {
	if s.cache == nil {
		return nil, false
	}

	ids, err := s.cache.IDsDoDia(ctx, data)
	if err != nil {
		s.log.Warn("agenda_cache_indisponivel", "data", data, "error", err)
		return nil, false
	}
	if len(ids) == 0 {
		return nil, false
	}

	encontradas, err := s.repo.Retiradas(ctx, data, ids)
	if err != nil {
		s.log.Warn("agenda_enriquecimento_falhou", "data", data, "error", err)
		return nil, false
	}
	retiradas := make([]domain.Retirada, 0, len(encontradas))
	for _, r := range encontradas {
		if r.DataRetirada == data {
			retiradas = append(retiradas, r)
		}
	}
	total, err := s.repo.ContarDoDia(ctx, data)
	if err != nil {
		s.log.Warn("agenda_contagem_falhou", "data", data, "error", err)
		return nil, false
	}
	if len(retiradas) != total {
		s.log.Info("agenda_cache_desatualizado", "data", data, "cache", len(ids), "postgres", total)
		return nil, false
	}
	return retiradas, true
}
