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
	restaurantsTable       = "restaurants"
	restaurantMembersTable = "restaurant_members"
)

var restaurantColumns = []string{
	"id", "code", "name", "document", "address", "phone", "email", "tax_rate",
	"card_fee_rate", "target_cmv_percentage", "created_at", "updated_at",
}

//go:generate mockgen -source=restaurant.go -destination=mocks/restaurant_mock.go -package=mocks
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant, ownerID int) error
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Restaurant, error)
	ListIDs(ctx context.Context) ([]string, error)
	AddMember(ctx context.Context, member *domain.RestaurantMember) error
	RemoveMember(ctx context.Context, restaurantID string, userID int) error
	ListMembers(ctx context.Context, restaurantID string) ([]*domain.RestaurantMember, error)
	Upsert(ctx context.Context, restaurant *domain.Restaurant) error
}

type restaurantRepository struct {
	conn *postgres.Connection
}

func NewRestaurantRepository(conn *postgres.Connection) RestaurantRepository {
	return &restaurantRepository{
		conn: conn,
	}
}

func restaurantValues(r *domain.Restaurant) []interface{} {
	return []interface{}{
		r.ID, r.Code, r.Name, r.Document, r.Address, r.Phone, r.Email, r.TaxRate,
		r.CardFeeRate, r.TargetCMVPercentage, r.CreatedAt, r.UpdatedAt,
	}
}

// Create grava o restaurante e vincula o criador como proprietário
func (r *restaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant, ownerID int) error {
	now := time.Now()
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert(restaurantsTable).
			Columns(restaurantColumns...).
			Values(restaurantValues(restaurant)...).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir consulta: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir restaurante: %w", err)
		}

		return insertMember(ctx, tx, &domain.RestaurantMember{
			RestaurantID: restaurant.ID,
			UserID:       ownerID,
			Role:         domain.RoleOwner,
		})
	})
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	restaurant.UpdatedAt = time.Now()

	query, args, err := squirrel.
		Update(restaurantsTable).
		Set("name", restaurant.Name).
		Set("document", restaurant.Document).
		Set("address", restaurant.Address).
		Set("phone", restaurant.Phone).
		Set("email", restaurant.Email).
		Set("tax_rate", restaurant.TaxRate).
		Set("card_fee_rate", restaurant.CardFeeRate).
		Set("target_cmv_percentage", restaurant.TargetCMVPercentage).
		Set("updated_at", restaurant.UpdatedAt).
		Where(squirrel.Eq{"id": restaurant.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar restaurante: %w", err)
	}

	return ensureAffected(res)
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	query, args, err := squirrel.
		Select(restaurantColumns...).
		From(restaurantsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	restaurant, err := deserializeRestaurant(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return restaurant, nil
}

func (r *restaurantRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Restaurant, error) {
	columns := make([]string, 0, len(restaurantColumns))
	for _, c := range restaurantColumns {
		columns = append(columns, "r."+c)
	}

	query, args, err := squirrel.
		Select(columns...).
		From(restaurantsTable + " r").
		Join(restaurantMembersTable + " m ON m.restaurant_id = r.id").
		Where(squirrel.Eq{"m.user_id": userID}).
		OrderBy("r.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar restaurantes: %w", err)
	}
	defer rows.Close()

	restaurants := make([]*domain.Restaurant, 0)
	for rows.Next() {
		restaurant, err := deserializeRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return restaurants, nil
}

// ListIDs retorna todos os restaurantes, usado pelas rotinas agendadas
func (r *restaurantRepository) ListIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("id").
		From(restaurantsTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar restaurantes: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return ids, nil
}

func (r *restaurantRepository) AddMember(ctx context.Context, member *domain.RestaurantMember) error {
	return insertMember(ctx, r.conn, member)
}

func insertMember(ctx context.Context, q postgres.Queryer, member *domain.RestaurantMember) error {
	query, args, err := squirrel.
		Insert(restaurantMembersTable).
		Columns("restaurant_id", "user_id", "role").
		Values(member.RestaurantID, member.UserID, member.Role).
		Suffix("ON CONFLICT (restaurant_id, user_id) DO UPDATE SET role = EXCLUDED.role").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao vincular membro: %w", err)
	}

	return nil
}

func (r *restaurantRepository) RemoveMember(ctx context.Context, restaurantID string, userID int) error {
	query, args, err := squirrel.
		Delete(restaurantMembersTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao desvincular membro: %w", err)
	}

	return ensureAffected(res)
}

func (r *restaurantRepository) ListMembers(ctx context.Context, restaurantID string) ([]*domain.RestaurantMember, error) {
	query, args, err := squirrel.
		Select("m.restaurant_id", "m.user_id", "m.role", "p.name", "p.email").
		From(restaurantMembersTable + " m").
		Join(usersTable + " p ON p.id = m.user_id").
		Where(squirrel.Eq{"m.restaurant_id": restaurantID}).
		OrderBy("m.role ASC", "p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar membros: %w", err)
	}
	defer rows.Close()

	members := make([]*domain.RestaurantMember, 0)
	for rows.Next() {
		member := &domain.RestaurantMember{}
		if err := rows.Scan(&member.RestaurantID, &member.UserID, &member.Role, &member.UserName, &member.UserEmail); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return members, nil
}

// Upsert grava os dados cadastrais importados
func (r *restaurantRepository) Upsert(ctx context.Context, restaurant *domain.Restaurant) error {
	query, args, err := squirrel.
		Insert(restaurantsTable).
		Columns(restaurantColumns...).
		Values(restaurantValues(restaurant)...).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			document = EXCLUDED.document,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar restaurante: %w", err)
	}

	return nil
}

func deserializeRestaurant(row rowScanner) (*domain.Restaurant, error) {
	restaurant := &domain.Restaurant{}

	if err := row.Scan(
		&restaurant.ID,
		&restaurant.Code,
		&restaurant.Name,
		&restaurant.Document,
		&restaurant.Address,
		&restaurant.Phone,
		&restaurant.Email,
		&restaurant.TaxRate,
		&restaurant.CardFeeRate,
		&restaurant.TargetCMVPercentage,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}
