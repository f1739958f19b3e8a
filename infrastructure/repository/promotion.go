package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
)

const promotionsTable = "promotions"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var promotionColumns = []string{
	"id", "restaurant_id", "name", "description", "type", "start_date", "end_date",
	"days_of_week", "start_time", "end_time", "original_price", "promotional_price",
	"discount_percentage", "products", "active", "created_at", "updated_at",
}

//go:generate mockgen -source=promotion.go -destination=mocks/promotion_mock.go -package=mocks
type PromotionRepository interface {
	Create(ctx context.Context, promotion *domain.Promotion) error
	Update(ctx context.Context, promotion *domain.Promotion) error
	Delete(ctx context.Context, restaurantID string, id string) error
	GetByID(ctx context.Context, restaurantID string, id string) (*domain.Promotion, error)
	List(ctx context.Context, restaurantID string) ([]*domain.Promotion, error)
	Upsert(ctx context.Context, promotions []*domain.Promotion) (*UpsertResult, error)
}

type promotionRepository struct {
	conn *postgres.Connection
}

func NewPromotionRepository(conn *postgres.Connection) PromotionRepository {
	return &promotionRepository{
		conn: conn,
	}
}

func (r *promotionRepository) Create(ctx context.Context, promotion *domain.Promotion) error {
	now := time.Now()
	promotion.CreatedAt = now
	promotion.UpdatedAt = now

	values, err := promotionValues(promotion)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Insert(promotionsTable).
		Columns(promotionColumns...).
		Values(values...).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir promoção: %w", err)
	}

	return nil
}

func (r *promotionRepository) Update(ctx context.Context, promotion *domain.Promotion) error {
	promotion.UpdatedAt = time.Now()

	days, products, err := encodePromotionLists(promotion)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Update(promotionsTable).
		Set("name", promotion.Name).
		Set("description", promotion.Description).
		Set("type", promotion.Type).
		Set("start_date", promotion.StartDate).
		Set("end_date", promotion.EndDate).
		Set("days_of_week", days).
		Set("start_time", promotion.StartTime).
		Set("end_time", promotion.EndTime).
		Set("original_price", promotion.OriginalPrice).
		Set("promotional_price", promotion.PromotionalPrice).
		Set("discount_percentage", promotion.DiscountPercentage).
		Set("products", products).
		Set("active", promotion.Active).
		Set("updated_at", promotion.UpdatedAt).
		Where(squirrel.Eq{"id": promotion.ID, "restaurant_id": promotion.RestaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar promoção: %w", err)
	}

	return ensureAffected(res)
}

func (r *promotionRepository) Delete(ctx context.Context, restaurantID string, id string) error {
	query, args, err := squirrel.
		Delete(promotionsTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover promoção: %w", err)
	}

	return ensureAffected(res)
}

func (r *promotionRepository) GetByID(ctx context.Context, restaurantID string, id string) (*domain.Promotion, error) {
	query, args, err := squirrel.
		Select(promotionColumns...).
		From(promotionsTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	promotion, err := deserializePromotion(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return promotion, nil
}

func (r *promotionRepository) List(ctx context.Context, restaurantID string) ([]*domain.Promotion, error) {
	query, args, err := squirrel.
		Select(promotionColumns...).
		From(promotionsTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("start_date DESC", "name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar promoções: %w", err)
	}
	defer rows.Close()

	promotions := make([]*domain.Promotion, 0)
	for rows.Next() {
		promotion, err := deserializePromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		promotions = append(promotions, promotion)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return promotions, nil
}

func (r *promotionRepository) Upsert(ctx context.Context, promotions []*domain.Promotion) (*UpsertResult, error) {
	result := &UpsertResult{}
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, promotion := range promotions {
			values, err := promotionValues(promotion)
			if err != nil {
				return err
			}

			query, args, err := squirrel.
				Insert(promotionsTable).
				Columns(promotionColumns...).
				Values(values...).
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					name = EXCLUDED.name,
					description = EXCLUDED.description,
					type = EXCLUDED.type,
					start_date = EXCLUDED.start_date,
					end_date = EXCLUDED.end_date,
					days_of_week = EXCLUDED.days_of_week,
					start_time = EXCLUDED.start_time,
					end_time = EXCLUDED.end_time,
					original_price = EXCLUDED.original_price,
					promotional_price = EXCLUDED.promotional_price,
					discount_percentage = EXCLUDED.discount_percentage,
					products = EXCLUDED.products,
					active = EXCLUDED.active,
					updated_at = EXCLUDED.updated_at
					WHERE promotions.restaurant_id = EXCLUDED.restaurant_id`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir consulta: %w", err)
			}

			if _, err := result.exec(ctx, tx, promotion.ID, query, args); err != nil {
				return fmt.Errorf("erro ao gravar promoção %s: %w", promotion.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// encodePromotionLists serializa as listas aninhadas para as colunas JSONB.
// São enviadas como texto porque o lib/pq codifica []byte como bytea.
func encodePromotionLists(promotion *domain.Promotion) (string, string, error) {
	days := promotion.DaysOfWeek
	if days == nil {
		days = []int{}
	}
	products := promotion.Products
	if products == nil {
		products = []domain.PromotionProduct{}
	}

	daysJSON, err := json.Marshal(days)
	if err != nil {
		return "", "", fmt.Errorf("erro ao serializar dias da semana: %w", err)
	}

	productsJSON, err := json.Marshal(products)
	if err != nil {
		return "", "", fmt.Errorf("erro ao serializar produtos: %w", err)
	}

	return string(daysJSON), string(productsJSON), nil
}

func promotionValues(promotion *domain.Promotion) ([]interface{}, error) {
	days, products, err := encodePromotionLists(promotion)
	if err != nil {
		return nil, err
	}

	return []interface{}{
		promotion.ID, promotion.RestaurantID, promotion.Name, promotion.Description, promotion.Type,
		promotion.StartDate, promotion.EndDate, days, promotion.StartTime, promotion.EndTime,
		promotion.OriginalPrice, promotion.PromotionalPrice, promotion.DiscountPercentage, products,
		promotion.Active, promotion.CreatedAt, promotion.UpdatedAt,
	}, nil
}

func deserializePromotion(row rowScanner) (*domain.Promotion, error) {
	promotion := &domain.Promotion{}
	var days, products []byte

	if err := row.Scan(
		&promotion.ID,
		&promotion.RestaurantID,
		&promotion.Name,
		&promotion.Description,
		&promotion.Type,
		&promotion.StartDate,
		&promotion.EndDate,
		&days,
		&promotion.StartTime,
		&promotion.EndTime,
		&promotion.OriginalPrice,
		&promotion.PromotionalPrice,
		&promotion.DiscountPercentage,
		&products,
		&promotion.Active,
		&promotion.CreatedAt,
		&promotion.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(days, &promotion.DaysOfWeek); err != nil {
		return nil, fmt.Errorf("erro ao decodificar dias da semana: %w", err)
	}

	if err := json.Unmarshal(products, &promotion.Products); err != nil {
		return nil, fmt.Errorf("erro ao decodificar produtos: %w", err)
	}

	return promotion, nil
}
