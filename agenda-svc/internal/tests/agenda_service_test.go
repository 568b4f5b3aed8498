package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/domain"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/mocks"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/service"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAgendaService_Agenda(t *testing.T) {
	const dia = "2024-12-24"
	doCache := []domain.Retirada{
		{PedidoID: 2, DataRetirada: dia, HoraRetirada: "08:00"},
		{PedidoID: 1, DataRetirada: dia, HoraRetirada: "10:30"},
	}
	doBanco := []domain.Retirada{{PedidoID: 1, DataRetirada: dia, HoraRetirada: "10:30"}}

	tests := []struct {
		name       string
		data       string
		semCache   bool
		setupMocks func(*mocks.AgendaCache, *mocks.AgendaRepository)
		wantFonte  string
		wantLen    int
		wantIDs    []int64
		wantErr    error
	}{
		{
			name: "served from redis",
			data: dia,
			setupMocks: func(cache *mocks.AgendaCache, repo *mocks.AgendaRepository) {
				cache.On("IDsDoDia", mock.Anything, dia).Return([]int64{2, 1}, nil)
				repo.On("Retiradas", mock.Anything, dia, []int64{2, 1}).Return(doCache, nil)
				repo.On("ContarDoDia", mock.Anything, dia).Return(2, nil)
			},
			wantFonte: domain.FonteRedis,
			wantLen:   2,
			wantIDs:   []int64{2, 1},
		},
		{
			name: "order missing from redis falls back to postgres",
			data: dia,
			setupMocks: func(cache *mocks.AgendaCache, repo *mocks.AgendaRepository) {
				cache.On("IDsDoDia", mock.Anything, dia).Return([]int64{1}, nil)
				repo.On("Retiradas", mock.Anything, dia, []int64{1}).Return(doBanco, nil)
				repo.On("ContarDoDia", mock.Anything, dia).Return(2, nil)
				repo.On("RetiradasDoDia", mock.Anything, dia).Return(doCache, nil)
			},
			wantFonte: domain.FontePostgres,
			wantLen:   2,
			wantIDs:   []int64{2, 1},
		},
		{
			name: "order moved to another day is not listed",
			data: dia,
			setupMocks: func(cache *mocks.AgendaCache, repo *mocks.AgendaRepository) {
				cache.On("IDsDoDia", mock.Anything, dia).Return([]int64{7, 1}, nil)
				repo.On("Retiradas", mock.Anything, dia, []int64{7, 1}).Return([]domain.Retirada{
					{PedidoID: 7, DataRetirada: "2024-12-26", HoraRetirada: "09:00"},
					{PedidoID: 1, DataRetirada: dia, HoraRetirada: "10:30"},
				}, nil)
				repo.On("ContarDoDia", mock.Anything, dia).Return(1, nil)
			},
			wantFonte: domain.FonteRedis,
			wantLen:   1,
			wantIDs:   []int64{1},
		},
		{
			name: "count error falls back to postgres",
			data: dia,
			setupMocks: func(cache *mocks.AgendaCache, repo *mocks.AgendaRepository) {
				cache.On("IDsDoDia", mock.Anything, dia).Return([]int64{1}, nil)
				repo.On("Retiradas", mock.Anything, dia, []int64{1}).Return(doBanco, nil)
				repo.On("ContarDoDia", mock.Anything, dia).Return(0, errors.New("timeout"))
				repo.On("RetiradasDoDia", mock.Anything, dia).Return(doBanco, nil)
			},
			wantFonte: domain.FontePostgres,
			wantLen:   1,
		},
		{
			name: "empty day falls back to postgres",
			data: dia,
			setupMocks: func(cache *mocks.AgendaCache, repo *mocks.AgendaRepository) {
				cache.On("IDsDoDia", mock.Anything, dia).Return([]int64{}, nil)
				repo.On("RetiradasDoDia", mock.Anything, dia).Return(doBanco, nil)
			},
			wantFonte: domain.FontePostgres,
			wantLen:   1,
		},
		{
			name: "redis error falls back to postgres",
			data: dia,
			setupMocks: func(cache *mocks.AgendaCache, repo *mocks.AgendaRepository) {
				cache.On("IDsDoDia", mock.Anything, dia).Return(nil, errors.New("connection refused"))
				repo.On("RetiradasDoDia", mock.Anything, dia).Return(doBanco, nil)
			},
			wantFonte: domain.FontePostgres,
			wantLen:   1,
		},
		{
			name: "stale ids fall back to postgres",
			data: dia,
			setupMocks: func(cache *mocks.AgendaCache, repo *mocks.AgendaRepository) {
				cache.On("IDsDoDia", mock.Anything, dia).Return([]int64{99}, nil)
				repo.On("Retiradas", mock.Anything, dia, []int64{99}).Return([]domain.Retirada{}, nil)
				repo.On("ContarDoDia", mock.Anything, dia).Return(1, nil)
				repo.On("RetiradasDoDia", mock.Anything, dia).Return(doBanco, nil)
			},
			wantFonte: domain.FontePostgres,
			wantLen:   1,
		},
		{
			name:     "without cache",
			data:     dia,
			semCache: true,
			setupMocks: func(cache *mocks.AgendaCache, repo *mocks.AgendaRepository) {
				repo.On("RetiradasDoDia", mock.Anything, dia).Return(doBanco, nil)
			},
			wantFonte: domain.FontePostgres,
			wantLen:   1,
		},
		{
			name:       "invalid date",
			data:       "amanha",
			setupMocks: func(cache *mocks.AgendaCache, repo *mocks.AgendaRepository) {},
			wantErr:    domain.ErrDataInvalida,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cache := mocks.NewAgendaCache(t)
			repo := mocks.NewAgendaRepository(t)
			testCase.setupMocks(cache, repo)

			var c service.AgendaCache = cache
			if testCase.semCache {
				c = nil
			}
			svc := service.NewAgendaService(c, repo, logger.Discard())

			agenda, err := svc.Agenda(context.Background(), testCase.data)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.data, agenda.Data)
			assert.Equal(t, testCase.wantFonte, agenda.Fonte)
			assert.Len(t, agenda.Retiradas, testCase.wantLen)
			for i, id := range testCase.wantIDs {
				assert.Equal(t, id, agenda.Retiradas[i].PedidoID)
			}
			for _, r := range agenda.Retiradas {
				assert.Equal(t, testCase.data, r.DataRetirada)
			}
		})
	}
}

func TestAgendaService_PostgresError(t *testing.T) {
	repo := mocks.NewAgendaRepository(t)
	repo.On("RetiradasDoDia", mock.Anything, "2024-12-24").Return(nil, errors.New("db down"))

	svc := service.NewAgendaService(nil, repo, nil)
	_, err := svc.Agenda(context.Background(), "2024-12-24")
	assert.EqualError(t, err, "db down")
}
