package domain

import (
	"errors"
	"fmt"
)

var ErrValidacao = errors.New("dados inválidos")

var (
	ErrClienteInvalido    = fmt.Errorf("%w: clienteId deve ser positivo", ErrValidacao)
	ErrDataInvalida       = fmt.Errorf("%w: dataRetirada deve estar no formato AAAA-MM-DD", ErrValidacao)
	ErrHoraInvalida       = fmt.Errorf("%w: horaRetirada deve estar no formato HH:MM", ErrValidacao)
	ErrValorNegativo      = fmt.Errorf("%w: valores monetários não podem ser negativos", ErrValidacao)
	ErrPedidoSemItens     = fmt.Errorf("%w: o pedido precisa de ao menos um item", ErrValidacao)
	ErrItemInvalido       = fmt.Errorf("%w: itemId deve ser positivo", ErrValidacao)
	ErrQuantidadeInvalida = fmt.Errorf("%w: quantidade deve ser maior que zero", ErrValidacao)
	ErrTotalInconsistente = fmt.Errorf("%w: valorTotal não confere com os itens", ErrValidacao)
	ErrNomeObrigatorio    = fmt.Errorf("%w: nome é obrigatório", ErrValidacao)
	ErrUnidadeInvalida    = fmt.Errorf("%w: unidade deve ser 'un' ou 'kg'", ErrValidacao)
	ErrCategoriaInvalida  = fmt.Errorf("%w: categoria deve ser 'cozinha' ou 'confeitaria'", ErrValidacao)
	ErrPrecisaoValor      = fmt.Errorf("%w: valores monetários aceitam no máximo 2 casas decimais", ErrValidacao)
	ErrPrecisaoQuantidade = fmt.Errorf("%w: quantidade aceita no máximo 3 casas decimais", ErrValidacao)
	ErrValorForaDoLimite  = fmt.Errorf("%w: valor acima do limite permitido", ErrValidacao)
)

var (
	ErrPedidoNotFound       = errors.New("Pedido não encontrado")
	ErrClienteNotFound      = errors.New("Cliente não encontrado")
	ErrItemCardapioNotFound = errors.New("Item do cardápio não encontrado")
	ErrClienteEmUso         = errors.New("cliente possui pedidos e não pode ser removido")
	ErrItemEmUso            = errors.New("item do cardápio está em pedidos e não pode ser removido")
	ErrPedidoDuplicado      = errors.New("pedido já enviado com esta Idempotency-Key")
)
