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

const menuItemsTable = "menu_items"

var menuItemColumns = []string{
	"id", "restaurant_id", "name", "description", "category", "price", "cost",
	"technical_sheet_id", "available", "created_at", "updated_at",
}

//go:generate mockgen -source=menu_item.go -destination=mocks/menu_item_mock.go -package=mocks
type MenuItemRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, restaurantID string, id string) error
	GetByID(ctx context.Context, restaurantID string, id string) (*domain.MenuItem, error)
	List(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error)
	UpdateCostBySheet(ctx context.Context, restaurantID string, sheetID string, cost float64) (int64, error)
	Upsert(ctx context.Context, items []*domain.MenuItem) (*UpsertResult, error)
}

type menuItemRepository struct {
	conn *postgres.Connection
}

func NewMenuItemRepository(conn *postgres.Connection) MenuItemRepository {
	return &menuItemRepository{
		conn: conn,
	}
}

func menuItemValues(item *domain.MenuItem) []interface{} {
	return []interface{}{
		item.ID, item.RestaurantID, item.Name, item.Description, item.Category, item.Price, item.Cost,
		item.TechnicalSheetID, item.Available, item.CreatedAt, item.UpdatedAt,
	}
}

func (r *menuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	query, args, err := squirrel.
		Insert(menuItemsTable).
		Columns(menuItemColumns...).
		Values(menuItemValues(item)...).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir item do cardápio: %w", err)
	}

	return nil
}

func (r *menuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	item.UpdatedAt = time.Now()

	query, args, err := squirrel.
		Update(menuItemsTable).
		Set("name", item.Name).
		Set("description", item.Description).
		Set("category", item.Category).
		Set("price", item.Price).
		Set("cost", item.Cost).
		Set("technical_sheet_id", item.TechnicalSheetID).
		Set("available", item.Available).
		Set("updated_at", item.UpdatedAt).
		Where(squirrel.Eq{"id": item.ID, "restaurant_id": item.RestaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar item do cardápio: %w", err)
	}

	return ensureAffected(res)
}

func (r *menuItemRepository) Delete(ctx context.Context, restaurantID string, id string) error {
	query, args, err := squirrel.
		Delete(menuItemsTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover item do cardápio: %w", err)
	}

	return ensureAffected(res)
}

func (r *menuItemRepository) GetByID(ctx context.Context, restaurantID string, id string) (*domain.MenuItem, error) {
	query, args, err := squirrel.
		Select(menuItemColumns...).
		From(menuItemsTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	item, err := deserializeMenuItem(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return item, nil
}

func (r *menuItemRepository) List(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	query, args, err := squirrel.
		Select(menuItemColumns...).
		From(menuItemsTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("category ASC", "name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar cardápio: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.MenuItem, 0)
	for rows.Next() {
		item, err := deserializeMenuItem(rows)
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

// UpdateCostBySheet propaga o custo por porção de uma ficha técnica para os itens vinculados
func (r *menuItemRepository) UpdateCostBySheet(ctx context.Context, restaurantID string, sheetID string, cost float64) (int64, error) {
	query, args, err := squirrel.
		Update(menuItemsTable).
		Set("cost", cost).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"restaurant_id": restaurantID, "technical_sheet_id": sheetID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar custo dos itens: %w", err)
	}

	return res.RowsAffected()
}

func (r *menuItemRepository) Upsert(ctx context.Context, items []*domain.MenuItem) (*UpsertResult, error) {
	result := &UpsertResult{}
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, item := range items {
			query, args, err := squirrel.
				Insert(menuItemsTable).
				Columns(menuItemColumns...).
				Values(menuItemValues(item)...).
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					name = EXCLUDED.name,
					description = EXCLUDED.description,
					category = EXCLUDED.category,
					price = EXCLUDED.price,
					cost = EXCLUDED.cost,
					available = EXCLUDED.available,
					updated_at = EXCLUDED.updated_at
					WHERE menu_items.restaurant_id = EXCLUDED.restaurant_id`).
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

func deserializeMenuItem(row rowScanner) (*domain.MenuItem, error) {
	item := &domain.MenuItem{}

	if err := row.Scan(
		&item.ID,
		&item.RestaurantID,
		&item.Name,
		&item.Description,
		&item.Category,
		&item.Price,
		&item.Cost,
		&item.TechnicalSheetID,
		&item.Available,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return item, nil
}
