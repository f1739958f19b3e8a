package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
)

const inventoryTable = "inventory"

var inventoryColumns = []string{
	"id", "restaurant_id", "name", "category", "unit", "quantity", "min_quantity",
	"unit_cost", "supplier", "expiry_date", "created_at", "updated_at",
}

//go:generate mockgen -source=inventory.go -destination=mocks/inventory_mock.go -package=mocks
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, restaurantID string, id string) error
	GetByID(ctx context.Context, restaurantID string, id string) (*domain.InventoryItem, error)
	List(ctx context.Context, restaurantID string) ([]*domain.InventoryItem, error)
	AdjustQuantity(ctx context.Context, restaurantID string, id string, delta float64) (*domain.InventoryItem, error)
	Upsert(ctx context.Context, items []*domain.InventoryItem) (*UpsertResult, error)
}

type inventoryRepository struct {
	conn *postgres.Connection
}

func NewInventoryRepository(conn *postgres.Connection) InventoryRepository {
	return &inventoryRepository{
		conn: conn,
	}
}

func (r *inventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	query, args, err := squirrel.
		Insert(inventoryTable).
		Columns(inventoryColumns...).
		Values(item.ID, item.RestaurantID, item.Name, item.Category, item.Unit, item.Quantity, item.MinQuantity,
			item.UnitCost, item.Supplier, item.ExpiryDate, item.CreatedAt, item.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir item de estoque: %w", err)
	}

	return nil
}

func (r *inventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	item.UpdatedAt = time.Now()

	query, args, err := squirrel.
		Update(inventoryTable).
		Set("name", item.Name).
		Set("category", item.Category).
		Set("unit", item.Unit).
		Set("quantity", item.Quantity).
		Set("min_quantity", item.MinQuantity).
		Set("unit_cost", item.UnitCost).
		Set("supplier", item.Supplier).
		Set("expiry_date", item.ExpiryDate).
		Set("updated_at", item.UpdatedAt).
		Where(squirrel.Eq{"id": item.ID, "restaurant_id": item.RestaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar item de estoque: %w", err)
	}

	return ensureAffected(res)
}

func (r *inventoryRepository) Delete(ctx context.Context, restaurantID string, id string) error {
	query, args, err := squirrel.
		Delete(inventoryTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover item de estoque: %w", err)
	}

	return ensureAffected(res)
}

func (r *inventoryRepository) GetByID(ctx context.Context, restaurantID string, id string) (*domain.InventoryItem, error) {
	query, args, err := squirrel.
		Select(inventoryColumns...).
		From(inventoryTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	item, err := deserializeInventoryItem(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return item, nil
}

func (r *inventoryRepository) List(ctx context.Context, restaurantID string) ([]*domain.InventoryItem, error) {
	query, args, err := squirrel.
		Select(inventoryColumns...).
		From(inventoryTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar estoque: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.InventoryItem, 0)
	for rows.Next() {
		item, err := deserializeInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return items, nil
}

// AdjustQuantity soma delta à quantidade atual sem deixá-la negativa.
// Retorna ErrNotFound quando o item não existe ou o saldo ficaria negativo.
func (r *inventoryRepository) AdjustQuantity(ctx context.Context, restaurantID string, id string, delta float64) (*domain.InventoryItem, error) {
	query, args, err := squirrel.
		Update(inventoryTable).
		Set("quantity", squirrel.Expr("quantity + ?", delta)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		Where(squirrel.Expr("quantity + ? >= 0", delta)).
		Suffix("RETURNING " + joinColumns(inventoryColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	item, err := deserializeInventoryItem(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao ajustar quantidade: %w", err)
	}

	return item, nil
}

func (r *inventoryRepository) Upsert(ctx context.Context, items []*domain.InventoryItem) (*UpsertResult, error) {
	result := &UpsertResult{}
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, item := range items {
			query, args, err := squirrel.
				Insert(inventoryTable).
				Columns(inventoryColumns...).
				Values(item.ID, item.RestaurantID, item.Name, item.Category, item.Unit, item.Quantity, item.MinQuantity,
					item.UnitCost, item.Supplier, item.ExpiryDate, item.CreatedAt, item.UpdatedAt).
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					name = EXCLUDED.name,
					category = EXCLUDED.category,
					unit = EXCLUDED.unit,
					quantity = EXCLUDED.quantity,
					min_quantity = EXCLUDED.min_quantity,
					unit_cost = EXCLUDED.unit_cost,
					supplier = EXCLUDED.supplier,
					expiry_date = EXCLUDED.expiry_date,
					updated_at = EXCLUDED.updated_at
					WHERE inventory.restaurant_id = EXCLUDED.restaurant_id`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir consulta: %w", err)
			}

			if _, err := result.exec(ctx, tx, item.ID, query, args); err != nil {
				return fmt.Errorf("erro ao gravar item %s: %w", item.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func deserializeInventoryItem(row rowScanner) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}

	if err := row.Scan(
		&item.ID,
		&item.RestaurantID,
		&item.Name,
		&item.Category,
		&item.Unit,
		&item.Quantity,
		&item.MinQuantity,
		&item.UnitCost,
		&item.Supplier,
		&item.ExpiryDate,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return item, nil
}
