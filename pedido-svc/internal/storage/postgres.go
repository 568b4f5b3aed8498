package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"

	"github.com/lib/pq"
)

const codigoViolacaoFK = "23503"

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// violacaoFK reports the constraint name when err is a foreign key violation.
func violacaoFK(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == codigoViolacaoFK {
		return pqErr.Constraint, true
	}
	return "", false
}

func (r *PostgresRepository) CreateCliente(cliente *domain.Cliente) error {
	return r.DB.QueryRow(
		"INSERT INTO clientes (nome, telefone) VALUES ($1, $2) RETURNING id",
		cliente.Nome, cliente.Telefone,
	).Scan(&cliente.ID)
}

func (r *PostgresRepository) ListClientes() ([]domain.Cliente, error) {
	rows, err := r.DB.Query(`
		SELECT id, nome, COALESCE(telefone, '')
		FROM clientes
		ORDER BY nome, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clientes := []domain.Cliente{}
	for rows.Next() {
		var cliente domain.Cliente
		if err := rows.Scan(&cliente.ID, &cliente.Nome, &cliente.Telefone); err != nil {
			return nil, err
		}
		clientes = append(clientes, cliente)
	}
	return clientes, rows.Err()
}

func (r *PostgresRepository) UpdateCliente(cliente *domain.Cliente) error {
	err := r.DB.QueryRow(
		"UPDATE clientes SET nome=$1, telefone=$2 WHERE id=$3 RETURNING id, nome, COALESCE(telefone, '')",
		cliente.Nome, cliente.Telefone, cliente.ID).
		Scan(&cliente.ID, &cliente.Nome, &cliente.Telefone)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrClienteNotFound
	}
	return err
}

func (r *PostgresRepository) DeleteCliente(id int64) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM clientes WHERE id=$1", id)
	if err != nil {
		if _, ok := violacaoFK(err); ok {
			return 0, domain.ErrClienteEmUso
		}
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateItemCardapio(item *domain.ItemCardapio) error {
	return r.DB.QueryRow(
		"INSERT INTO cardapio (nome, preco, unidade, categoria) VALUES ($1, $2, $3, $4) RETURNING id",
		item.Nome, item.Preco, item.Unidade, item.Categoria,
	).Scan(&item.ID)
}

func (r *PostgresRepository) ListCardapio() ([]domain.ItemCardapio, error) {
	rows, err := r.DB.Query(`
		SELECT id, nome, preco, unidade, categoria
		FROM cardapio
		ORDER BY nome, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itens := []domain.ItemCardapio{}
	for rows.Next() {
		var item domain.ItemCardapio
		if err := rows.Scan(&item.ID, &item.Nome, &item.Preco, &item.Unidade, &item.Categoria); err != nil {
			return nil, err
		}
		itens = append(itens, item)
	}
	return itens, rows.Err()
}

func (r *PostgresRepository) UpdateItemCardapio(item *domain.ItemCardapio) error {
	err := r.DB.QueryRow(
		"UPDATE cardapio SET nome=$1, preco=$2, unidade=$3, categoria=$4 WHERE id=$5 RETURNING id, nome, preco, unidade, categoria",
		item.Nome, item.Preco, item.Unidade, item.Categoria, item.ID).
		Scan(&item.ID, &item.Nome, &item.Preco, &item.Unidade, &item.Categoria)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrItemCardapioNotFound
	}
	return err
}

func (r *PostgresRepository) DeleteItemCardapio(id int64) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM cardapio WHERE id=$1", id)
	if err != nil {
		if _, ok := violacaoFK(err); ok {
			return 0, domain.ErrItemEmUso
		}
		return 0, err
	}
	return result.RowsAffected()
}

// GetItensCardapio resolves a set of menu ids in a single query. Ids that do
// not exist are simply missing from the result.
func (r *PostgresRepository) GetItensCardapio(ctx context.Context, ids []int64) (map[int64]domain.ItemCardapio, error) {
	itens := make(map[int64]domain.ItemCardapio, len(ids))
	if len(ids) == 0 {
		return itens, nil
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, nome, preco, unidade, categoria
		FROM cardapio
		WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("consultar cardápio: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.ItemCardapio
		if err := rows.Scan(&item.ID, &item.Nome, &item.Preco, &item.Unidade, &item.Categoria); err != nil {
			return nil, err
		}
		itens[item.ID] = item
	}
	return itens, rows.Err()
}
