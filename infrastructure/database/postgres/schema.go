package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements cria as tabelas que substituem as chaves do localStorage da versão web
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		lastname TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT FALSE,
		role_id INTEGER NOT NULL DEFAULT 3,
		avatar_url TEXT,
		deleted BOOLEAN NOT NULL DEFAULT FALSE,
		deleted_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		document TEXT,
		address TEXT,
		phone TEXT,
		email TEXT,
		tax_rate NUMERIC(6,4) NOT NULL DEFAULT 0.06,
		card_fee_rate NUMERIC(6,4) NOT NULL DEFAULT 0.03,
		target_cmv_percentage NUMERIC(6,2) NOT NULL DEFAULT 35,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS restaurant_members (
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		user_id INTEGER NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		role INTEGER NOT NULL DEFAULT 3,
		PRIMARY KEY (restaurant_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS cash_flow (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		description TEXT NOT NULL,
		amount NUMERIC(14,2) NOT NULL,
		type TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		payment_method TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'completed',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cash_flow_restaurant_date ON cash_flow (restaurant_id, date)`,
	`CREATE TABLE IF NOT EXISTS promotions (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		days_of_week JSONB NOT NULL DEFAULT '[]',
		start_time TEXT,
		end_time TEXT,
		original_price NUMERIC(14,2) NOT NULL DEFAULT 0,
		promotional_price NUMERIC(14,2) NOT NULL DEFAULT 0,
		discount_percentage NUMERIC(6,2) NOT NULL DEFAULT 0,
		products JSONB NOT NULL DEFAULT '[]',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		target_value NUMERIC(14,2) NOT NULL,
		current_value NUMERIC(14,2) NOT NULL DEFAULT 0,
		unit TEXT NOT NULL DEFAULT '',
		deadline DATE,
		reward TEXT,
		metric TEXT,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		completed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS achievements (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		code TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		points INTEGER NOT NULL DEFAULT 0,
		unlocked BOOLEAN NOT NULL DEFAULT FALSE,
		unlocked_at TIMESTAMPTZ,
		UNIQUE (restaurant_id, code)
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		unit TEXT NOT NULL DEFAULT 'un',
		quantity NUMERIC(14,4) NOT NULL DEFAULT 0,
		min_quantity NUMERIC(14,4) NOT NULL DEFAULT 0,
		unit_cost NUMERIC(14,4) NOT NULL DEFAULT 0,
		supplier TEXT,
		expiry_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS recipes (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		yield NUMERIC(10,2) NOT NULL DEFAULT 1,
		preparation_time INTEGER NOT NULL DEFAULT 0,
		instructions TEXT NOT NULL DEFAULT '',
		markup_factor NUMERIC(6,2),
		selling_price NUMERIC(14,2),
		total_cost NUMERIC(14,4) NOT NULL DEFAULT 0,
		cost_per_portion NUMERIC(14,4) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS recipe_ingredients (
		id TEXT PRIMARY KEY,
		recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		inventory_item_id TEXT REFERENCES inventory(id) ON DELETE SET NULL,
		name TEXT NOT NULL,
		quantity NUMERIC(14,4) NOT NULL,
		unit TEXT NOT NULL DEFAULT '',
		unit_cost NUMERIC(14,4) NOT NULL DEFAULT 0,
		correction_factor NUMERIC(6,3) NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		price NUMERIC(14,2) NOT NULL,
		cost NUMERIC(14,4) NOT NULL DEFAULT 0,
		technical_sheet_id TEXT REFERENCES recipes(id) ON DELETE SET NULL,
		available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		kind TEXT NOT NULL,
		amount NUMERIC(14,2) NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		counterparty TEXT,
		due_date DATE NOT NULL,
		paid_at TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'pending',
		cash_flow_entry_id TEXT REFERENCES cash_flow(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS system_alerts (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		severity TEXT NOT NULL DEFAULT 'info',
		title TEXT NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		reference_id TEXT,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_system_alerts_unread ON system_alerts (restaurant_id, read)`,
}

// Migrate cria o schema em uma única transação. É idempotente.
func Migrate(ctx context.Context, conn Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range schemaStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao executar statement %d do schema: %w", i+1, err)
			}
		}
		return nil
	})
}

// Tables retorna a quantidade de statements do schema, usada pelo CLI de migração
func Tables() int {
	return len(schemaStatements)
}
