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

const goalsTable = "goals"

var goalColumns = []string{
	"id", "restaurant_id", "title", "description", "category", "target_value", "current_value",
	"unit", "deadline", "reward", "metric", "completed", "completed_at", "created_at", "updated_at",
}

//go:generate mockgen -source=goal.go -destination=mocks/goal_mock.go -package=mocks
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) error
	Update(ctx context.Context, goal *domain.Goal) error
	Complete(ctx context.Context, restaurantID string, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, restaurantID string, id string) error
	GetByID(ctx context.Context, restaurantID string, id string) (*domain.Goal, error)
	List(ctx context.Context, restaurantID string) ([]*domain.Goal, error)
	Upsert(ctx context.Context, goals []*domain.Goal) (*UpsertResult, error)
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func goalValues(goal *domain.Goal) []interface{} {
	return []interface{}{
		goal.ID, goal.RestaurantID, goal.Title, goal.Description, goal.Category, goal.TargetValue,
		goal.CurrentValue, goal.Unit, goal.Deadline, goal.Reward, goal.Metric, goal.Completed,
		goal.CompletedAt, goal.CreatedAt, goal.UpdatedAt,
	}
}

func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	now := time.Now()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	query, args, err := squirrel.
		Insert(goalsTable).
		Columns(goalColumns...).
		Values(goalValues(goal)...).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir meta: %w", err)
	}

	return nil
}

func (r *goalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	goal.UpdatedAt = time.Now()

	query, args, err := squirrel.
		Update(goalsTable).
		Set("title", goal.Title).
		Set("description", goal.Description).
		Set("category", goal.Category).
		Set("target_value", goal.TargetValue).
		Set("current_value", goal.CurrentValue).
		Set("unit", goal.Unit).
		Set("deadline", goal.Deadline).
		Set("reward", goal.Reward).
		Set("metric", goal.Metric).
		Set("updated_at", goal.UpdatedAt).
		Where(squirrel.Eq{"id": goal.ID, "restaurant_id": goal.RestaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar meta: %w", err)
	}

	return ensureAffected(res)
}

// Complete marca a meta como concluída. Retorna false quando ela já estava
// concluída, o que garante um único alerta mesmo com sincronizações simultâneas.
func (r *goalRepository) Complete(ctx context.Context, restaurantID string, id string, at time.Time) (bool, error) {
	query, args, err := squirrel.
		Update(goalsTable).
		Set("completed", true).
		Set("completed_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID, "completed": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao concluir meta: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *goalRepository) Delete(ctx context.Context, restaurantID string, id string) error {
	query, args, err := squirrel.
		Delete(goalsTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover meta: %w", err)
	}

	return ensureAffected(res)
}

func (r *goalRepository) GetByID(ctx context.Context, restaurantID string, id string) (*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalColumns...).
		From(goalsTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	goal, err := deserializeGoal(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return goal, nil
}

func (r *goalRepository) List(ctx context.Context, restaurantID string) ([]*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalColumns...).
		From(goalsTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("completed ASC", "deadline ASC NULLS LAST", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar metas: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		goal, err := deserializeGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return goals, nil
}

func (r *goalRepository) Upsert(ctx context.Context, goals []*domain.Goal) (*UpsertResult, error) {
	result := &UpsertResult{}
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, goal := range goals {
			query, args, err := squirrel.
				Insert(goalsTable).
				Columns(goalColumns...).
				Values(goalValues(goal)...).
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					title = EXCLUDED.title,
					description = EXCLUDED.description,
					category = EXCLUDED.category,
					target_value = EXCLUDED.target_value,
					current_value = EXCLUDED.current_value,
					unit = EXCLUDED.unit,
					deadline = EXCLUDED.deadline,
					reward = EXCLUDED.reward,
					metric = EXCLUDED.metric,
					completed = EXCLUDED.completed,
					completed_at = COALESCE(goals.completed_at, EXCLUDED.completed_at),
					updated_at = EXCLUDED.updated_at
					WHERE goals.restaurant_id = EXCLUDED.restaurant_id`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir consulta: %w", err)
			}

			if _, err := result.exec(ctx, tx, goal.ID, query, args); err != nil {
				return fmt.Errorf("erro ao gravar meta %s: %w", goal.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func deserializeGoal(row rowScanner) (*domain.Goal, error) {
	goal := &domain.Goal{}

	if err := row.Scan(
		&goal.ID,
		&goal.RestaurantID,
		&goal.Title,
		&goal.Description,
		&goal.Category,
		&goal.TargetValue,
		&goal.CurrentValue,
		&goal.Unit,
		&goal.Deadline,
		&goal.Reward,
		&goal.Metric,
		&goal.Completed,
		&goal.CompletedAt,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return goal, nil
}
