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

const (
	recipesTable           = "recipes"
	recipeIngredientsTable = "recipe_ingredients"
)

var recipeColumns = []string{
	"id", "restaurant_id", "name", "category", "yield", "preparation_time", "instructions",
	"markup_factor", "selling_price", "total_cost", "cost_per_portion", "created_at", "updated_at",
}

var recipeIngredientColumns = []string{
	"id", "recipe_id", "inventory_item_id", "name", "quantity", "unit", "unit_cost", "correction_factor",
}

//go:generate mockgen -source=technical_sheet.go -destination=mocks/technical_sheet_mock.go -package=mocks
type TechnicalSheetRepository interface {
	Create(ctx context.Context, sheet *domain.TechnicalSheet) error
	Update(ctx context.Context, sheet *domain.TechnicalSheet) error
	Delete(ctx context.Context, restaurantID string, id string) error
	GetByID(ctx context.Context, restaurantID string, id string) (*domain.TechnicalSheet, error)
	List(ctx context.Context, restaurantID string) ([]*domain.TechnicalSheet, error)
	Upsert(ctx context.Context, sheets []*domain.TechnicalSheet) (*UpsertResult, error)
}

type technicalSheetRepository struct {
	conn *postgres.Connection
}

func NewTechnicalSheetRepository(conn *postgres.Connection) TechnicalSheetRepository {
	return &technicalSheetRepository{
		conn: conn,
	}
}

func recipeValues(sheet *domain.TechnicalSheet) []interface{} {
	return []interface{}{
		sheet.ID, sheet.RestaurantID, sheet.Name, sheet.Category, sheet.Yield, sheet.PreparationTime,
		sheet.Instructions, sheet.MarkupFactor, sheet.SellingPrice, sheet.TotalCost, sheet.CostPerPortion,
		sheet.CreatedAt, sheet.UpdatedAt,
	}
}

// Create grava a receita e seus ingredientes na mesma transação
func (r *technicalSheetRepository) Create(ctx context.Context, sheet *domain.TechnicalSheet) error {
	now := time.Now()
	sheet.CreatedAt = now
	sheet.UpdatedAt = now

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert(recipesTable).
			Columns(recipeColumns...).
			Values(recipeValues(sheet)...).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir consulta: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir ficha técnica: %w", err)
		}

		return insertIngredients(ctx, tx, sheet)
	})
}

// Update substitui os ingredientes da ficha
func (r *technicalSheetRepository) Update(ctx context.Context, sheet *domain.TechnicalSheet) error {
	sheet.UpdatedAt = time.Now()

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Update(recipesTable).
			Set("name", sheet.Name).
			Set("category", sheet.Category).
			Set("yield", sheet.Yield).
			Set("preparation_time", sheet.PreparationTime).
			Set("instructions", sheet.Instructions).
			Set("markup_factor", sheet.MarkupFactor).
			Set("selling_price", sheet.SellingPrice).
			Set("total_cost", sheet.TotalCost).
			Set("cost_per_portion", sheet.CostPerPortion).
			Set("updated_at", sheet.UpdatedAt).
			Where(squirrel.Eq{"id": sheet.ID, "restaurant_id": sheet.RestaurantID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir consulta: %w", err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("erro ao atualizar ficha técnica: %w", err)
		}
		if err := ensureAffected(res); err != nil {
			return err
		}

		return replaceIngredients(ctx, tx, sheet)
	})
}

func (r *technicalSheetRepository) Delete(ctx context.Context, restaurantID string, id string) error {
	query, args, err := squirrel.
		Delete(recipesTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover ficha técnica: %w", err)
	}

	return ensureAffected(res)
}

func (r *technicalSheetRepository) GetByID(ctx context.Context, restaurantID string, id string) (*domain.TechnicalSheet, error) {
	query, args, err := squirrel.
		Select(recipeColumns...).
		From(recipesTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	sheet, err := deserializeRecipe(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	ingredients, err := r.listIngredients(ctx, []string{sheet.ID})
	if err != nil {
		return nil, err
	}
	sheet.Ingredients = ingredients[sheet.ID]

	return sheet, nil
}

func (r *technicalSheetRepository) List(ctx context.Context, restaurantID string) ([]*domain.TechnicalSheet, error) {
	query, args, err := squirrel.
		Select(recipeColumns...).
		From(recipesTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar fichas técnicas: %w", err)
	}
	defer rows.Close()

	sheets := make([]*domain.TechnicalSheet, 0)
	ids := make([]string, 0)
	for rows.Next() {
		sheet, err := deserializeRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		sheets = append(sheets, sheet)
		ids = append(ids, sheet.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	if len(ids) == 0 {
		return sheets, nil
	}

	ingredients, err := r.listIngredients(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, sheet := range sheets {
		sheet.Ingredients = ingredients[sheet.ID]
	}

	return sheets, nil
}

func (r *technicalSheetRepository) Upsert(ctx context.Context, sheets []*domain.TechnicalSheet) (*UpsertResult, error) {
	result := &UpsertResult{}
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, sheet := range sheets {
			query, args, err := squirrel.
				Insert(recipesTable).
				Columns(recipeColumns...).
				Values(recipeValues(sheet)...).
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					name = EXCLUDED.name,
					category = EXCLUDED.category,
					yield = EXCLUDED.yield,
					preparation_time = EXCLUDED.preparation_time,
					instructions = EXCLUDED.instructions,
					markup_factor = EXCLUDED.markup_factor,
					selling_price = EXCLUDED.selling_price,
					total_cost = EXCLUDED.total_cost,
					cost_per_portion = EXCLUDED.cost_per_portion,
					updated_at = EXCLUDED.updated_at
					WHERE recipes.restaurant_id = EXCLUDED.restaurant_id`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir consulta: %w", err)
			}

			written, err := result.exec(ctx, tx, sheet.ID, query, args)
			if err != nil {
				return fmt.Errorf("erro ao gravar ficha técnica %s: %w", sheet.ID, err)
			}
			if !written {
				continue
			}

			if err := replaceIngredients(ctx, tx, sheet); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *technicalSheetRepository) listIngredients(ctx context.Context, recipeIDs []string) (map[string][]domain.TechnicalSheetIngredient, error) {
	query, args, err := squirrel.
		Select(recipeIngredientColumns...).
		From(recipeIngredientsTable).
		Where(squirrel.Eq{"recipe_id": recipeIDs}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar ingredientes: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.TechnicalSheetIngredient)
	for rows.Next() {
		var recipeID string
		var ingredient domain.TechnicalSheetIngredient
		if err := rows.Scan(
			&ingredient.ID,
			&recipeID,
			&ingredient.InventoryItemID,
			&ingredient.Name,
			&ingredient.Quantity,
			&ingredient.Unit,
			&ingredient.UnitCost,
			&ingredient.CorrectionFactor,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		result[recipeID] = append(result[recipeID], ingredient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return result, nil
}

func replaceIngredients(ctx context.Context, q postgres.Queryer, sheet *domain.TechnicalSheet) error {
	query, args, err := squirrel.
		Delete(recipeIngredientsTable).
		Where(squirrel.Eq{"recipe_id": sheet.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover ingredientes: %w", err)
	}

	return insertIngredients(ctx, q, sheet)
}

func insertIngredients(ctx context.Context, q postgres.Queryer, sheet *domain.TechnicalSheet) error {
	if len(sheet.Ingredients) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(recipeIngredientsTable).
		Columns(recipeIngredientColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, ing := range sheet.Ingredients {
		queryBuilder = queryBuilder.Values(ing.ID, sheet.ID, ing.InventoryItemID, ing.Name, ing.Quantity,
			ing.Unit, ing.UnitCost, ing.CorrectionFactor)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir ingredientes: %w", err)
	}

	return nil
}

func deserializeRecipe(row rowScanner) (*domain.TechnicalSheet, error) {
	sheet := &domain.TechnicalSheet{}

	if err := row.Scan(
		&sheet.ID,
		&sheet.RestaurantID,
		&sheet.Name,
		&sheet.Category,
		&sheet.Yield,
		&sheet.PreparationTime,
		&sheet.Instructions,
		&sheet.MarkupFactor,
		&sheet.SellingPrice,
		&sheet.TotalCost,
		&sheet.CostPerPortion,
		&sheet.CreatedAt,
		&sheet.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return sheet, nil
}
