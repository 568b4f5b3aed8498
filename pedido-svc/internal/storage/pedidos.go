package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"

	"github.com/lib/pq"
)

const selectPedidos = `
	SELECT p.id, p.cliente_id, c.nome, COALESCE(c.telefone, ''),
		to_char(p.data_retirada, 'YYYY-MM-DD'), to_char(p.hora_retirada, 'HH24:MI'),
		p.valor_adiantado, p.valor_total, p.created_at
	FROM pedidos p
	JOIN clientes c ON c.id = p.cliente_id`

const ordemPedidos = `
	ORDER BY p.data_retirada DESC, p.hora_retirada DESC, p.id DESC`

const selectItensPorPedidos = `
	SELECT i.id, i.pedido_id, i.cardapio_id, m.nome, m.unidade, m.categoria,
		i.quantidade, i.valor_unitario, i.valor_total
	FROM itens_pedido i
	JOIN cardapio m ON m.id = i.cardapio_id
	WHERE i.pedido_id = ANY($1)
	ORDER BY i.pedido_id, i.id`

var leituraConsistente = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func mapearErroEscrita(err error) error {
	if constraint, ok := violacaoFK(err); ok {
		switch {
		case strings.Contains(constraint, "cliente"):
			return domain.ErrClienteNotFound
		case strings.Contains(constraint, "cardapio"):
			return domain.ErrItemCardapioNotFound
		}
	}
	return err
}

// escaparLike neutralizes the LIKE wildcards of a user supplied prefix.
func escaparLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// CreatePedido writes the order and all its lines in one transaction.
func (r *PostgresRepository) CreatePedido(ctx context.Context, pedido *domain.Pedido) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("iniciar transação: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO pedidos (cliente_id, data_retirada, hora_retirada, valor_adiantado, valor_total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		pedido.ClienteID, pedido.DataRetirada, pedido.HoraRetirada, pedido.ValorAdiantado, pedido.ValorTotal,
	).Scan(&pedido.ID, &pedido.CreatedAt)
	if err != nil {
		return mapearErroEscrita(err)
	}

	if err := inserirItens(ctx, tx, pedido.ID, pedido.Itens); err != nil {
		return err
	}

	return tx.Commit()
}

func inserirItens(ctx context.Context, tx *sql.Tx, pedidoID int64, itens []domain.ItemPedido) error {
	for i := range itens {
		item := &itens[i]
		item.PedidoID = pedidoID
		err := tx.QueryRowContext(ctx, `
			INSERT INTO itens_pedido (pedido_id, cardapio_id, quantidade, valor_unitario, valor_total)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			pedidoID, item.CardapioID, item.Quantidade, item.ValorUnitario, item.ValorTotal,
		).Scan(&item.ID)
		if err != nil {
			return mapearErroEscrita(err)
		}
	}
	return nil
}

// ListPedidos reads orders and their lines from a single snapshot: one query
// for the orders, one batch query for every line of those orders.
func (r *PostgresRepository) ListPedidos(ctx context.Context, filtro domain.FiltroPedidos) ([]domain.Pedido, error) {
	tx, err := r.DB.BeginTx(ctx, leituraConsistente)
	if err != nil {
		return nil, fmt.Errorf("iniciar transação: %w", err)
	}
	defer tx.Rollback()

	query := selectPedidos
	var args []interface{}
	if prefixo := strings.TrimSpace(filtro.ClientePrefixo); prefixo != "" {
		query += ` WHERE c.nome ILIKE $1`
		args = append(args, escaparLike(prefixo)+"%")
	}
	query += ordemPedidos

	pedidos, err := carregarPedidos(ctx, tx, query, args...)
	if err != nil {
		return nil, err
	}
	return pedidos, tx.Commit()
}

// GetPedido returns one order with its lines, or domain.ErrPedidoNotFound.
func (r *PostgresRepository) GetPedido(ctx context.Context, id int64) (*domain.Pedido, error) {
	tx, err := r.DB.BeginTx(ctx, leituraConsistente)
	if err != nil {
		return nil, fmt.Errorf("iniciar transação: %w", err)
	}
	defer tx.Rollback()

	pedidos, err := carregarPedidos(ctx, tx, selectPedidos+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(pedidos) == 0 {
		return nil, domain.ErrPedidoNotFound
	}
	return &pedidos[0], tx.Commit()
}

func carregarPedidos(ctx context.Context, q queryer, query string, args ...interface{}) ([]domain.Pedido, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("consultar pedidos: %w", err)
	}
	defer rows.Close()

	pedidos := []domain.Pedido{}
	for rows.Next() {
		var p domain.Pedido
		if err := rows.Scan(&p.ID, &p.ClienteID, &p.ClienteNome, &p.ClienteTelefone,
			&p.DataRetirada, &p.HoraRetirada, &p.ValorAdiantado, &p.ValorTotal, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Itens = []domain.ItemPedido{}
		pedidos = append(pedidos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(pedidos) == 0 {
		return pedidos, nil
	}

	ids := make([]int64, len(pedidos))
	posicao := make(map[int64]int, len(pedidos))
	for i, p := range pedidos {
		ids[i] = p.ID
		posicao[p.ID] = i
	}

	itemRows, err := q.QueryContext(ctx, selectItensPorPedidos, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("consultar itens: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.ItemPedido
		if err := itemRows.Scan(&item.ID, &item.PedidoID, &item.CardapioID, &item.ItemNome, &item.Unidade,
			&item.Categoria, &item.Quantidade, &item.ValorUnitario, &item.ValorTotal); err != nil {
			return nil, err
		}
		if i, ok := posicao[item.PedidoID]; ok {
			pedidos[i].Itens = append(pedidos[i].Itens, item)
		}
	}
	return pedidos, itemRows.Err()
}

// UpdatePedido overwrites the scalar fields and, when atualizacao.Itens is not
// nil, replaces the whole line set. valor_total is recomputed from the lines
// before commit.
func (r *PostgresRepository) UpdatePedido(ctx context.Context, id int64, atualizacao domain.AtualizacaoPedido) (*domain.Pedido, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("iniciar transação: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE pedidos SET data_retirada=$1, hora_retirada=$2, valor_adiantado=$3
		WHERE id=$4`,
		atualizacao.DataRetirada, atualizacao.HoraRetirada, atualizacao.ValorAdiantado, id)
	if err != nil {
		return nil, err
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrPedidoNotFound
	}

	if atualizacao.Itens != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM itens_pedido WHERE pedido_id=$1", id); err != nil {
			return nil, err
		}
		if err := inserirItens(ctx, tx, id, atualizacao.Itens); err != nil {
			return nil, err
		}
	}

	var pedido domain.Pedido
	err = tx.QueryRowContext(ctx, `
		UPDATE pedidos
		SET valor_total = (SELECT COALESCE(SUM(valor_total), 0) FROM itens_pedido WHERE pedido_id = $1)
		WHERE id = $1
		RETURNING id, cliente_id, to_char(data_retirada, 'YYYY-MM-DD'), to_char(hora_retirada, 'HH24:MI'),
			valor_adiantado, valor_total, created_at`, id).
		Scan(&pedido.ID, &pedido.ClienteID, &pedido.DataRetirada, &pedido.HoraRetirada,
			&pedido.ValorAdiantado, &pedido.ValorTotal, &pedido.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPedidoNotFound
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &pedido, nil
}

// DeletePedido removes the lines and then the order in one transaction.
func (r *PostgresRepository) DeletePedido(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("iniciar transação: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM itens_pedido WHERE pedido_id=$1", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM pedidos WHERE id=$1", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPedidoNotFound
	}

	return tx.Commit()
}
