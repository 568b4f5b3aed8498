package service

import (
	"strings"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"
)

type ClienteService struct {
	repo ClienteRepository
}

func NewClienteService(repo ClienteRepository) *ClienteService {
	return &ClienteService{repo: repo}
}

func validarCliente(cliente *domain.Cliente) error {
	cliente.Nome = strings.TrimSpace(cliente.Nome)
	cliente.Telefone = strings.TrimSpace(cliente.Telefone)
	if cliente.Nome == "" {
		return domain.ErrNomeObrigatorio
	}
	return nil
}

func (s *ClienteService) Create(cliente *domain.Cliente) error {
	if err := validarCliente(cliente); err != nil {
		return err
	}
	return s.repo.CreateCliente(cliente)
}

func (s *ClienteService) List() ([]domain.Cliente, error) {
	return s.repo.ListClientes()
}

func (s *ClienteService) Update(cliente *domain.Cliente) error {
	if err := validarCliente(cliente); err != nil {
		return err
	}
	return s.repo.UpdateCliente(cliente)
}

func (s *ClienteService) Delete(id int64) error {
	rows, err := s.repo.DeleteCliente(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrClienteNotFound
	}
	return nil
}

var _ ClienteServiceInterface = (*ClienteService)(nil)

type CardapioService struct {
	repo CardapioRepository
}

func NewCardapioService(repo CardapioRepository) *CardapioService {
	return &CardapioService{repo: repo}
}

// validarItem fills the same defaults the schema uses for unit and category.
func validarItem(item *domain.ItemCardapio) error {
	item.Nome = strings.TrimSpace(item.Nome)
	if item.Nome == "" {
		return domain.ErrNomeObrigatorio
	}
	if item.Unidade == "" {
		item.Unidade = domain.UnidadeUnitaria
	}
	if !item.Unidade.Valida() {
		return domain.ErrUnidadeInvalida
	}
	if item.Categoria == "" {
		item.Categoria = domain.CategoriaCozinha
	}
	if !item.Categoria.Valida() {
		return domain.ErrCategoriaInvalida
	}
	if err := domain.ValidarDinheiro(item.Preco); err != nil {
		return err
	}
	item.Preco = domain.Dinheiro(item.Preco)
	return nil
}

func (s *CardapioService) Create(item *domain.ItemCardapio) error {
	if err := validarItem(item); err != nil {
		return err
	}
	return s.repo.CreateItemCardapio(item)
}

func (s *CardapioService) List() ([]domain.ItemCardapio, error) {
	return s.repo.ListCardapio()
}

func (s *CardapioService) Update(item *domain.ItemCardapio) error {
	if err := validarItem(item); err != nil {
		return err
	}
	return s.repo.UpdateItemCardapio(item)
}

func (s *CardapioService) Delete(id int64) error {
	rows, err := s.repo.DeleteItemCardapio(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrItemCardapioNotFound
	}
	return nil
}

var _ CardapioServiceInterface = (*CardapioService)(nil)
