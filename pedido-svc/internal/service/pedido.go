package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/logger"
	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type PedidoService struct {
	pedidos   PedidoRepository
	cardapio  CardapioRepository
	cache     IdempotencyCache
	publisher EventPublisher
	qrEncoder QRGenerator
	log       *slog.Logger
	now       func() time.Time
}

// NewPedidoService wires the order use cases. cache, publisher and qr may be
// nil, which disables idempotency keys, events and QR codes respectively.
func NewPedidoService(
	pedidos PedidoRepository,
	cardapio CardapioRepository,
	cache IdempotencyCache,
	publisher EventPublisher,
	qr QRGenerator,
	log *slog.Logger,
) *PedidoService {
	if log == nil {
		log = logger.Discard()
	}
	return &PedidoService{
		pedidos:   pedidos,
		cardapio:  cardapio,
		cache:     cache,
		publisher: publisher,
		qrEncoder: qr,
		log:       log.With("component", "pedido_service"),
		now:       time.Now,
	}
}

func (s *PedidoService) Create(ctx context.Context, req domain.CreatePedidoRequest, idempotencyKey string) (*domain.Pedido, error) {
	if req.ClienteID <= 0 {
		return nil, domain.ErrClienteInvalido
	}
	data, hora, err := validarRetirada(req.DataRetirada, req.HoraRetirada, req.ValorAdiantado)
	if err != nil {
		return nil, err
	}
	itens, total, err := s.precificarItens(ctx, req.Itens)
	if err != nil {
		return nil, err
	}
	if req.ValorTotal.Valid && !domain.Confere(req.ValorTotal.Decimal, total) {
		return nil, domain.ErrTotalInconsistente
	}

	pedido := &domain.Pedido{
		ClienteID:      req.ClienteID,
		DataRetirada:   data,
		HoraRetirada:   hora,
		ValorAdiantado: domain.Dinheiro(req.ValorAdiantado),
		ValorTotal:     total,
		Itens:          itens,
	}

	reserved, err := s.reservar(ctx, idempotencyKey)
	if err != nil {
		return nil, err
	}

	if err := s.pedidos.CreatePedido(ctx, pedido); err != nil {
		if reserved {
			s.liberar(ctx, idempotencyKey)
		}
		return nil, err
	}

	s.log.Info("pedido_criado", "pedido_id", pedido.ID, "cliente_id", pedido.ClienteID, "itens", len(pedido.Itens))
	s.publicar(ctx, domain.EventoPedidoCriado, pedido)
	return pedido, nil
}

func (s *PedidoService) List(ctx context.Context, filtro domain.FiltroPedidos) ([]domain.Pedido, error) {
	return s.pedidos.ListPedidos(ctx, filtro)
}

func (s *PedidoService) Get(ctx context.Context, id int64) (*domain.Pedido, error) {
	return s.pedidos.GetPedido(ctx, id)
}

// Update overwrites pickup date, time and advance. Lines are replaced only
// when req.Itens is present; the stored total is always derived from the
// lines, so a valorTotal sent without itens is ignored.
func (s *PedidoService) Update(ctx context.Context, id int64, req domain.UpdatePedidoRequest) (*domain.Pedido, error) {
	data, hora, err := validarRetirada(req.DataRetirada, req.HoraRetirada, req.ValorAdiantado)
	if err != nil {
		return nil, err
	}

	atualizacao := domain.AtualizacaoPedido{
		DataRetirada:   data,
		HoraRetirada:   hora,
		ValorAdiantado: domain.Dinheiro(req.ValorAdiantado),
	}

	if req.Itens != nil {
		itens, total, err := s.precificarItens(ctx, *req.Itens)
		if err != nil {
			return nil, err
		}
		if req.ValorTotal.Valid && !domain.Confere(req.ValorTotal.Decimal, total) {
			return nil, domain.ErrTotalInconsistente
		}
		atualizacao.Itens = itens
	}

	pedido, err := s.pedidos.UpdatePedido(ctx, id, atualizacao)
	if err != nil {
		return nil, err
	}

	s.log.Info("pedido_atualizado", "pedido_id", id, "itens_substituidos", req.Itens != nil)
	s.publicar(ctx, domain.EventoPedidoAtualizado, pedido)
	return pedido, nil
}

func (s *PedidoService) Delete(ctx context.Context, id int64) error {
	if err := s.pedidos.DeletePedido(ctx, id); err != nil {
		return err
	}
	s.log.Info("pedido_removido", "pedido_id", id)
	s.publicar(ctx, domain.EventoPedidoRemovido, &domain.Pedido{ID: id})
	return nil
}

func (s *PedidoService) QRCode(ctx context.Context, id int64) ([]byte, error) {
	if s.qrEncoder == nil {
		return nil, ErrQRCodeDesabilitado
	}
	if _, err := s.pedidos.GetPedido(ctx, id); err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(id)
}

func validarRetirada(dataRetirada, horaRetirada string, adiantado decimal.Decimal) (string, string, error) {
	data, err := domain.NormalizarData(dataRetirada)
	if err != nil {
		return "", "", err
	}
	hora, err := domain.NormalizarHora(horaRetirada)
	if err != nil {
		return "", "", err
	}
	if err := domain.ValidarDinheiro(adiantado); err != nil {
		return "", "", err
	}
	return data, hora, nil
}

// precificarItens validates the submitted lines, resolves every menu item in
// one lookup and returns the priced lines with their total.
func (s *PedidoService) precificarItens(ctx context.Context, entradas []domain.ItemPedidoInput) ([]domain.ItemPedido, decimal.Decimal, error) {
	if len(entradas) == 0 {
		return nil, decimal.Zero, domain.ErrPedidoSemItens
	}

	ids := make([]int64, 0, len(entradas))
	vistos := make(map[int64]bool, len(entradas))
	for _, entrada := range entradas {
		if entrada.ItemID <= 0 {
			return nil, decimal.Zero, domain.ErrItemInvalido
		}
		if err := domain.ValidarQuantidade(entrada.Quantidade); err != nil {
			return nil, decimal.Zero, err
		}
		if entrada.ValorUnitario.Valid {
			if err := domain.ValidarDinheiro(entrada.ValorUnitario.Decimal); err != nil {
				return nil, decimal.Zero, err
			}
		}
		if !vistos[entrada.ItemID] {
			vistos[entrada.ItemID] = true
			ids = append(ids, entrada.ItemID)
		}
	}

	catalogo, err := s.cardapio.GetItensCardapio(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}

	itens := make([]domain.ItemPedido, 0, len(entradas))
	total := decimal.Zero
	for _, entrada := range entradas {
		item, ok := catalogo[entrada.ItemID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: id %d", domain.ErrItemCardapioNotFound, entrada.ItemID)
		}

		preco := item.Preco
		if entrada.ValorUnitario.Valid {
			preco = entrada.ValorUnitario.Decimal
		}

		linha := domain.ItemPedido{
			CardapioID:    item.ID,
			ItemNome:      item.Nome,
			Unidade:       item.Unidade,
			Categoria:     item.Categoria,
			Quantidade:    domain.Quantidade(entrada.Quantidade),
			ValorUnitario: domain.Dinheiro(preco),
		}
		linha.ValorTotal = domain.TotalLinha(linha.Quantidade, linha.ValorUnitario)
		if entrada.ValorTotal.Valid && !domain.Confere(entrada.ValorTotal.Decimal, linha.ValorTotal) {
			return nil, decimal.Zero, domain.ErrTotalInconsistente
		}

		itens = append(itens, linha)
		total = total.Add(linha.ValorTotal)
		if total.GreaterThan(domain.MaxDinheiro) {
			return nil, decimal.Zero, domain.ErrValorForaDoLimite
		}
	}

	return itens, total, nil
}

// reservar returns true only when a key was actually reserved. Redis being
// unavailable does not block order submission.
func (s *PedidoService) reservar(ctx context.Context, key string) (bool, error) {
	if key == "" || s.cache == nil {
		return false, nil
	}
	ok, err := s.cache.Reserve(ctx, key)
	if err != nil {
		s.log.Warn("idempotency_reserve_failed", "key", key, "error", err)
		return false, nil
	}
	if !ok {
		return false, domain.ErrPedidoDuplicado
	}
	return true, nil
}

func (s *PedidoService) liberar(ctx context.Context, key string) {
	if err := s.cache.Release(ctx, key); err != nil {
		s.log.Warn("idempotency_release_failed", "key", key, "error", err)
	}
}

func (s *PedidoService) publicar(ctx context.Context, tipo string, pedido *domain.Pedido) {
	if s.publisher == nil {
		return
	}
	evento := domain.EventoPedido{
		Tipo:         tipo,
		PedidoID:     pedido.ID,
		ClienteID:    pedido.ClienteID,
		DataRetirada: pedido.DataRetirada,
		HoraRetirada: pedido.HoraRetirada,
		Timestamp:    s.now().UTC(),
	}
	if err := s.publisher.PublishPedido(ctx, evento); err != nil {
		s.log.Warn("event_publish_failed", "tipo", tipo, "pedido_id", pedido.ID, "error", err)
	}
}

var _ PedidoServiceInterface = (*PedidoService)(nil)
