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

const systemAlertsTable = "system_alerts"

var systemAlertColumns = []string{
	"id", "restaurant_id", "type", "severity", "title", "message", "reference_id", "read", "created_at",
}

//go:generate mockgen -source=system_alert.go -destination=mocks/system_alert_mock.go -package=mocks
type SystemAlertRepository interface {
	Create(ctx context.Context, alert *domain.SystemAlert) error
	List(ctx context.Context, restaurantID string, unreadOnly bool) ([]*domain.SystemAlert, error)
	MarkRead(ctx context.Context, restaurantID string, id string) error
	MarkAllRead(ctx context.Context, restaurantID string) (int64, error)
	Delete(ctx context.Context, restaurantID string, id string) error
	ExistsUnread(ctx context.Context, restaurantID string, alertType domain.AlertType, referenceID string) (bool, error)
	CountUnread(ctx context.Context, restaurantID string) (int, error)
	Upsert(ctx context.Context, alerts []*domain.SystemAlert) (*UpsertResult, error)
}

type systemAlertRepository struct {
	conn *postgres.Connection
}

func NewSystemAlertRepository(conn *postgres.Connection) SystemAlertRepository {
	return &systemAlertRepository{
		conn: conn,
	}
}

func (r *systemAlertRepository) Create(ctx context.Context, alert *domain.SystemAlert) error {
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}

	query, args, err := squirrel.
		Insert(systemAlertsTable).
		Columns(systemAlertColumns...).
		Values(alert.ID, alert.RestaurantID, alert.Type, alert.Severity, alert.Title, alert.Message,
			alert.ReferenceID, alert.Read, alert.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir alerta: %w", err)
	}

	return nil
}

func (r *systemAlertRepository) List(ctx context.Context, restaurantID string, unreadOnly bool) ([]*domain.SystemAlert, error) {
	queryBuilder := squirrel.
		Select(systemAlertColumns...).
		From(systemAlertsTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if unreadOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"read": false})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar alertas: %w", err)
	}
	defer rows.Close()

	alerts := make([]*domain.SystemAlert, 0)
	for rows.Next() {
		alert := &domain.SystemAlert{}
		if err := rows.Scan(
			&alert.ID,
			&alert.RestaurantID,
			&alert.Type,
			&alert.Severity,
			&alert.Title,
			&alert.Message,
			&alert.ReferenceID,
			&alert.Read,
			&alert.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return alerts, nil
}

func (r *systemAlertRepository) MarkRead(ctx context.Context, restaurantID string, id string) error {
	query, args, err := squirrel.
		Update(systemAlertsTable).
		Set("read", true).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao marcar alerta como lido: %w", err)
	}

	return ensureAffected(res)
}

func (r *systemAlertRepository) MarkAllRead(ctx context.Context, restaurantID string) (int64, error) {
	query, args, err := squirrel.
		Update(systemAlertsTable).
		Set("read", true).
		Where(squirrel.Eq{"restaurant_id": restaurantID, "read": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao marcar alertas como lidos: %w", err)
	}

	return res.RowsAffected()
}

func (r *systemAlertRepository) Delete(ctx context.Context, restaurantID string, id string) error {
	query, args, err := squirrel.
		Delete(systemAlertsTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover alerta: %w", err)
	}

	return ensureAffected(res)
}

func (r *systemAlertRepository) ExistsUnread(ctx context.Context, restaurantID string, alertType domain.AlertType, referenceID string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(systemAlertsTable).
		Where(squirrel.Eq{
			"restaurant_id": restaurantID,
			"type":          alertType,
			"reference_id":  referenceID,
			"read":          false,
		}).
		Limit(1).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var exists bool
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("erro ao verificar alerta existente: %w", err)
	}

	return exists, nil
}

func (r *systemAlertRepository) CountUnread(ctx context.Context, restaurantID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(systemAlertsTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID, "read": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar alertas: %w", err)
	}

	return count, nil
}

func (r *systemAlertRepository) Upsert(ctx context.Context, alerts []*domain.SystemAlert) (*UpsertResult, error) {
	result := &UpsertResult{}
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, alert := range alerts {
			query, args, err := squirrel.
				Insert(systemAlertsTable).
				Columns(systemAlertColumns...).
				Values(alert.ID, alert.RestaurantID, alert.Type, alert.Severity, alert.Title, alert.Message,
					alert.ReferenceID, alert.Read, alert.CreatedAt).
				Suffix("ON CONFLICT (id) DO UPDATE SET read = EXCLUDED.read WHERE system_alerts.restaurant_id = EXCLUDED.restaurant_id").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir consulta: %w", err)
			}

			if _, err := result.exec(ctx, tx, alert.ID, query, args); err != nil {
				return fmt.Errorf("erro ao gravar alerta %s: %w", alert.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
