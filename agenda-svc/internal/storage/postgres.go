package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/agenda-svc/internal/domain"

	"github.com/lib/pq"
)

const selectRetiradas = `
	SELECT p.id, to_char(p.data_retirada, 'YYYY-MM-DD'), to_char(p.hora_retirada, 'HH24:MI'),
		c.nome, c.telefone, p.valor_total, p.valor_adiantado
	FROM pedidos p
	JOIN clientes c ON c.id = p.cliente_id`

// PostgresRepository reads the order tables owned by pedido-svc.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func scanRetiradas(rows *sql.Rows) ([]domain.Retirada, error) {
	defer rows.Close()

	retiradas := []domain.Retirada{}
	for rows.Next() {
		var r domain.Retirada
		if err := rows.Scan(&r.PedidoID, &r.DataRetirada, &r.HoraRetirada,
			&r.ClienteNome, &r.ClienteTelefone, &r.ValorTotal, &r.ValorAdiantado); err != nil {
			return nil, err
		}
		retiradas = append(retiradas, r)
	}
	return retiradas, rows.Err()
}

// Retiradas loads the given orders and returns them in the order of ids.
// Ids that no longer exist or whose pickup is no longer on data are dropped.
func (r *PostgresRepository) Retiradas(ctx context.Context, data string, ids []int64) ([]domain.Retirada, error) {
	if len(ids) == 0 {
		return []domain.Retirada{}, nil
	}

	rows, err := r.DB.QueryContext(ctx,
		selectRetiradas+` WHERE p.id = ANY($1) AND p.data_retirada = $2`, pq.Array(ids), data)
	if err != nil {
		return nil, fmt.Errorf("consultar retiradas: %w", err)
	}
	encontradas, err := scanRetiradas(rows)
	if err != nil {
		return nil, err
	}

	porID := make(map[int64]domain.Retirada, len(encontradas))
	for _, ret := range encontradas {
		porID[ret.PedidoID] = ret
	}

	ordenadas := make([]domain.Retirada, 0, len(encontradas))
	for _, id := range ids {
		if ret, ok := porID[id]; ok {
			ordenadas = append(ordenadas, ret)
		}
	}
	return ordenadas, nil
}

func (r *PostgresRepository) ContarDoDia(ctx context.Context, data string) (int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pedidos WHERE data_retirada = $1`, data).Scan(&total); err != nil {
		return 0, fmt.Errorf("contar retiradas do dia: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) RetiradasDoDia(ctx context.Context, data string) ([]domain.Retirada, error) {
	rows, err := r.DB.QueryContext(ctx,
		selectRetiradas+` WHERE p.data_retirada = $1 ORDER BY p.hora_retirada, p.id`, data)
	if err != nil {
		return nil, fmt.Errorf("consultar retiradas do dia: %w", err)
	}
	return scanRetiradas(rows)
}
