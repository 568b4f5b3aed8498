package storage

import "context"

const schema = `
CREATE TABLE IF NOT EXISTS clientes (
	id BIGSERIAL PRIMARY KEY,
	nome TEXT NOT NULL,
	telefone TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS cardapio (
	id BIGSERIAL PRIMARY KEY,
	nome TEXT NOT NULL,
	preco NUMERIC(10,2) NOT NULL CHECK (preco >= 0),
	unidade TEXT NOT NULL DEFAULT 'un' CHECK (unidade IN ('un', 'kg')),
	categoria TEXT NOT NULL DEFAULT 'cozinha' CHECK (categoria IN ('cozinha', 'confeitaria'))
);

CREATE TABLE IF NOT EXISTS pedidos (
	id BIGSERIAL PRIMARY KEY,
	cliente_id BIGINT NOT NULL REFERENCES clientes(id) ON DELETE RESTRICT,
	data_retirada DATE NOT NULL,
	hora_retirada TIME NOT NULL,
	valor_adiantado NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (valor_adiantado >= 0),
	valor_total NUMERIC(10,2) NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS itens_pedido (
	id BIGSERIAL PRIMARY KEY,
	pedido_id BIGINT NOT NULL REFERENCES pedidos(id) ON DELETE CASCADE,
	cardapio_id BIGINT NOT NULL REFERENCES cardapio(id) ON DELETE RESTRICT,
	quantidade NUMERIC(10,3) NOT NULL CHECK (quantidade > 0),
	valor_unitario NUMERIC(10,2) NOT NULL CHECK (valor_unitario >= 0),
	valor_total NUMERIC(10,2) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_pedidos_retirada ON pedidos (data_retirada DESC, hora_retirada DESC);
CREATE INDEX IF NOT EXISTS idx_itens_pedido_pedido ON itens_pedido (pedido_id);
`

// EnsureSchema creates the tables and indexes when missing. Safe to run on
// every start.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, schema)
	return err
}
