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

const cashFlowTable = "cash_flow"

var cashFlowColumns = []string{
	"id", "restaurant_id", "date", "description", "amount", "type",
	"category", "payment_method", "status", "created_at", "updated_at",
}

//go:generate mockgen -source=cash_flow.go -destination=mocks/cash_flow_mock.go -package=mocks
type CashFlowRepository interface {
	Create(ctx context.Context, entry *domain.CashFlowEntry) error
	Update(ctx context.Context, entry *domain.CashFlowEntry) error
	Delete(ctx context.Context, restaurantID string, id string) error
	GetByID(ctx context.Context, restaurantID string, id string) (*domain.CashFlowEntry, error)
	List(ctx context.Context, restaurantID string, filter domain.CashFlowFilter) ([]*domain.CashFlowEntry, error)
	Upsert(ctx context.Context, entries []*domain.CashFlowEntry) (*UpsertResult, error)
}

type cashFlowRepository struct {
	conn *postgres.Connection
}

func NewCashFlowRepository(conn *postgres.Connection) CashFlowRepository {
	return &cashFlowRepository{
		conn: conn,
	}
}

func (r *cashFlowRepository) Create(ctx context.Context, entry *domain.CashFlowEntry) error {
	return insertCashFlowEntry(ctx, r.conn, entry)
}

// insertCashFlowEntry é compartilhado com a baixa de contas, que roda dentro de uma transação
func insertCashFlowEntry(ctx context.Context, q postgres.Queryer, entry *domain.CashFlowEntry) error {
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query, args, err := squirrel.
		Insert(cashFlowTable).
		Columns(cashFlowColumns...).
		Values(entry.ID, entry.RestaurantID, entry.Date, entry.Description, entry.Amount, entry.Type,
			entry.Category, entry.PaymentMethod, entry.Status, entry.CreatedAt, entry.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir lançamento: %w", err)
	}

	return nil
}

func (r *cashFlowRepository) Update(ctx context.Context, entry *domain.CashFlowEntry) error {
	entry.UpdatedAt = time.Now()

	query, args, err := squirrel.
		Update(cashFlowTable).
		Set("date", entry.Date).
		Set("description", entry.Description).
		Set("amount", entry.Amount).
		Set("type", entry.Type).
		Set("category", entry.Category).
		Set("payment_method", entry.PaymentMethod).
		Set("status", entry.Status).
		Set("updated_at", entry.UpdatedAt).
		Where(squirrel.Eq{"id": entry.ID, "restaurant_id": entry.RestaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar lançamento: %w", err)
	}

	return ensureAffected(res)
}

func (r *cashFlowRepository) Delete(ctx context.Context, restaurantID string, id string) error {
	query, args, err := squirrel.
		Delete(cashFlowTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover lançamento: %w", err)
	}

	return ensureAffected(res)
}

func (r *cashFlowRepository) GetByID(ctx context.Context, restaurantID string, id string) (*domain.CashFlowEntry, error) {
	query, args, err := squirrel.
		Select(cashFlowColumns...).
		From(cashFlowTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	entry, err := deserializeCashFlowEntry(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return entry, nil
}

func (r *cashFlowRepository) List(ctx context.Context, restaurantID string, filter domain.CashFlowFilter) ([]*domain.CashFlowEntry, error) {
	queryBuilder := squirrel.
		Select(cashFlowColumns...).
		From(cashFlowTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("date DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Period != nil {
		queryBuilder = queryBuilder.
			Where(squirrel.GtOrEq{"date": filter.Period.Start.Format(time.DateOnly)}).
			Where(squirrel.LtOrEq{"date": filter.Period.End.Format(time.DateOnly)})
	}

	if filter.Type != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}

	if filter.Category != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}

	if filter.Status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.PaymentMethod != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"payment_method": *filter.PaymentMethod})
	}

	if filter.Search != nil && *filter.Search != "" {
		term := "%" + *filter.Search + "%"
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.ILike{"description": term},
			squirrel.ILike{"category": term},
		})
	}

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filter.Limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar lançamentos: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.CashFlowEntry, 0)
	for rows.Next() {
		entry, err := deserializeCashFlowEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return entries, nil
}

// Upsert grava lançamentos importados preservando o ID de origem
func (r *cashFlowRepository) Upsert(ctx context.Context, entries []*domain.CashFlowEntry) (*UpsertResult, error) {
	result := &UpsertResult{}
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			query, args, err := squirrel.
				Insert(cashFlowTable).
				Columns(cashFlowColumns...).
				Values(entry.ID, entry.RestaurantID, entry.Date, entry.Description, entry.Amount, entry.Type,
					entry.Category, entry.PaymentMethod, entry.Status, entry.CreatedAt, entry.UpdatedAt).
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					date = EXCLUDED.date,
					description = EXCLUDED.description,
					amount = EXCLUDED.amount,
					type = EXCLUDED.type,
					category = EXCLUDED.category,
					payment_method = EXCLUDED.payment_method,
					status = EXCLUDED.status,
					updated_at = EXCLUDED.updated_at
					WHERE cash_flow.restaurant_id = EXCLUDED.restaurant_id`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir consulta: %w", err)
			}

			if _, err := result.exec(ctx, tx, entry.ID, query, args); err != nil {
				return fmt.Errorf("erro ao gravar lançamento %s: %w", entry.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func deserializeCashFlowEntry(row rowScanner) (*domain.CashFlowEntry, error) {
	entry := &domain.CashFlowEntry{}

	if err := row.Scan(
		&entry.ID,
		&entry.RestaurantID,
		&entry.Date,
		&entry.Description,
		&entry.Amount,
		&entry.Type,
		&entry.Category,
		&entry.PaymentMethod,
		&entry.Status,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return entry, nil
}
