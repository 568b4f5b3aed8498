package service

import (
	"context"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"
)

// RelatorioService computes reports from the current order set on every call.
type RelatorioService struct {
	pedidos PedidoRepository
}

func NewRelatorioService(pedidos PedidoRepository) *RelatorioService {
	return &RelatorioService{pedidos: pedidos}
}

func (s *RelatorioService) Producao(ctx context.Context) (domain.ResumoProducao, error) {
	pedidos, err := s.pedidos.ListPedidos(ctx, domain.FiltroPedidos{})
	if err != nil {
		return domain.ResumoProducao{}, err
	}
	return ResumirProducao(pedidos), nil
}

func (s *RelatorioService) Financeiro(ctx context.Context, filtro domain.FiltroPedidos) (domain.ResumoFinanceiro, error) {
	pedidos, err := s.pedidos.ListPedidos(ctx, filtro)
	if err != nil {
		return domain.ResumoFinanceiro{}, err
	}
	return ResumirFinanceiro(pedidos), nil
}

var _ RelatorioServiceInterface = (*RelatorioService)(nil)
