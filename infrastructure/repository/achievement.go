package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
)

const achievementsTable = "achievements"

var achievementColumns = []string{
	"id", "restaurant_id", "code", "title", "description", "category", "points", "unlocked", "unlocked_at",
}

//go:generate mockgen -source=achievement.go -destination=mocks/achievement_mock.go -package=mocks
type AchievementRepository interface {
	List(ctx context.Context, restaurantID string) ([]*domain.Achievement, error)
	Seed(ctx context.Context, achievements []*domain.Achievement) error
	Unlock(ctx context.Context, restaurantID string, code string, at time.Time) (bool, error)
	Upsert(ctx context.Context, achievements []*domain.Achievement) (*UpsertResult, error)
}

type achievementRepository struct {
	conn *postgres.Connection
}

func NewAchievementRepository(conn *postgres.Connection) AchievementRepository {
	return &achievementRepository{
		conn: conn,
	}
}

func (r *achievementRepository) List(ctx context.Context, restaurantID string) ([]*domain.Achievement, error) {
	query, args, err := squirrel.
		Select(achievementColumns...).
		From(achievementsTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("category ASC", "points ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar conquistas: %w", err)
	}
	defer rows.Close()

	achievements := make([]*domain.Achievement, 0)
	for rows.Next() {
		achievement := &domain.Achievement{}
		if err := rows.Scan(
			&achievement.ID,
			&achievement.RestaurantID,
			&achievement.Code,
			&achievement.Title,
			&achievement.Description,
			&achievement.Category,
			&achievement.Points,
			&achievement.Unlocked,
			&achievement.UnlockedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		achievements = append(achievements, achievement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return achievements, nil
}

// Seed insere o catálogo de conquistas, ignorando códigos já existentes
func (r *achievementRepository) Seed(ctx context.Context, achievements []*domain.Achievement) error {
	if len(achievements) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(achievementsTable).
		Columns(achievementColumns...).
		Suffix("ON CONFLICT (restaurant_id, code) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, a := range achievements {
		queryBuilder = queryBuilder.Values(a.ID, a.RestaurantID, a.Code, a.Title, a.Description, a.Category,
			a.Points, a.Unlocked, a.UnlockedAt)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao registrar catálogo de conquistas: %w", err)
	}

	return nil
}

// Unlock desbloqueia a conquista apenas uma vez. Retorna false se já estava desbloqueada.
func (r *achievementRepository) Unlock(ctx context.Context, restaurantID string, code string, at time.Time) (bool, error) {
	query, args, err := squirrel.
		Update(achievementsTable).
		Set("unlocked", true).
		Set("unlocked_at", at).
		Where(squirrel.Eq{"restaurant_id": restaurantID, "code": code, "unlocked": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao desbloquear conquista: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// Upsert grava conquistas importadas. Uma data de desbloqueio existente nunca é sobrescrita.
func (r *achievementRepository) Upsert(ctx context.Context, achievements []*domain.Achievement) (*UpsertResult, error) {
	result := &UpsertResult{}
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, a := range achievements {
			query, args, err := squirrel.
				Insert(achievementsTable).
				Columns(achievementColumns...).
				Values(a.ID, a.RestaurantID, a.Code, a.Title, a.Description, a.Category, a.Points, a.Unlocked, a.UnlockedAt).
				Suffix(`ON CONFLICT (restaurant_id, code) DO UPDATE SET
					unlocked = achievements.unlocked OR EXCLUDED.unlocked,
					unlocked_at = COALESCE(achievements.unlocked_at, EXCLUDED.unlocked_at)`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir consulta: %w", err)
			}

			if _, err := result.exec(ctx, tx, a.ID, query, args); err != nil {
				return fmt.Errorf("erro ao gravar conquista %s: %w", a.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
