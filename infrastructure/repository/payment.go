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

const paymentsTable = "payments"

var paymentColumns = []string{
	"id", "restaurant_id", "description", "kind", "amount", "category", "counterparty", "due_date",
	"paid_at", "status", "cash_flow_entry_id", "created_at", "updated_at",
}

//go:generate mockgen -source=payment.go -destination=mocks/payment_mock.go -package=mocks
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, restaurantID string, id string) error
	GetByID(ctx context.Context, restaurantID string, id string) (*domain.Payment, error)
	List(ctx context.Context, restaurantID string, filter domain.PaymentFilter) ([]*domain.Payment, error)
	MarkPaid(ctx context.Context, payment *domain.Payment, entry *domain.CashFlowEntry) error
	MarkOverdue(ctx context.Context, restaurantID string, today time.Time) (int64, error)
}

type paymentRepository struct {
	conn *postgres.Connection
}

func NewPaymentRepository(conn *postgres.Connection) PaymentRepository {
	return &paymentRepository{
		conn: conn,
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	query, args, err := squirrel.
		Insert(paymentsTable).
		Columns(paymentColumns...).
		Values(payment.ID, payment.RestaurantID, payment.Description, payment.Kind, payment.Amount,
			payment.Category, payment.Counterparty, payment.DueDate, payment.PaidAt, payment.Status,
			payment.CashFlowEntryID, payment.CreatedAt, payment.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir conta: %w", err)
	}

	return nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	payment.UpdatedAt = time.Now()

	query, args, err := squirrel.
		Update(paymentsTable).
		Set("description", payment.Description).
		Set("kind", payment.Kind).
		Set("amount", payment.Amount).
		Set("category", payment.Category).
		Set("counterparty", payment.Counterparty).
		Set("due_date", payment.DueDate).
		Set("status", payment.Status).
		Set("updated_at", payment.UpdatedAt).
		Where(squirrel.Eq{"id": payment.ID, "restaurant_id": payment.RestaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar conta: %w", err)
	}

	return ensureAffected(res)
}

func (r *paymentRepository) Delete(ctx context.Context, restaurantID string, id string) error {
	query, args, err := squirrel.
		Delete(paymentsTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover conta: %w", err)
	}

	return ensureAffected(res)
}

func (r *paymentRepository) GetByID(ctx context.Context, restaurantID string, id string) (*domain.Payment, error) {
	query, args, err := squirrel.
		Select(paymentColumns...).
		From(paymentsTable).
		Where(squirrel.Eq{"id": id, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	payment, err := deserializePayment(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return payment, nil
}

func (r *paymentRepository) List(ctx context.Context, restaurantID string, filter domain.PaymentFilter) ([]*domain.Payment, error) {
	queryBuilder := squirrel.
		Select(paymentColumns...).
		From(paymentsTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("due_date ASC", "description ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Kind != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"kind": *filter.Kind})
	}

	if filter.Status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.DueTo != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"due_date": filter.DueTo.Format(time.DateOnly)})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar contas: %w", err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := deserializePayment(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return payments, nil
}

// MarkPaid grava o lançamento no fluxo de caixa e dá baixa na conta na mesma transação
func (r *paymentRepository) MarkPaid(ctx context.Context, payment *domain.Payment, entry *domain.CashFlowEntry) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := insertCashFlowEntry(ctx, tx, entry); err != nil {
			return err
		}

		payment.UpdatedAt = time.Now()
		query, args, err := squirrel.
			Update(paymentsTable).
			Set("status", domain.PaymentPaid).
			Set("paid_at", payment.PaidAt).
			Set("cash_flow_entry_id", entry.ID).
			Set("updated_at", payment.UpdatedAt).
			Where(squirrel.Eq{"id": payment.ID, "restaurant_id": payment.RestaurantID}).
			Where(squirrel.NotEq{"status": []domain.PaymentStatus{domain.PaymentPaid, domain.PaymentCanceled}}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir consulta: %w", err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("erro ao dar baixa na conta: %w", err)
		}

		return ensureAffected(res)
	})
}

// MarkOverdue marca como vencidas as contas pendentes com vencimento anterior a today
func (r *paymentRepository) MarkOverdue(ctx context.Context, restaurantID string, today time.Time) (int64, error) {
	query, args, err := squirrel.
		Update(paymentsTable).
		Set("status", domain.PaymentOverdue).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"restaurant_id": restaurantID, "status": domain.PaymentPending}).
		Where(squirrel.Lt{"due_date": today.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao marcar contas vencidas: %w", err)
	}

	return res.RowsAffected()
}

func deserializePayment(row rowScanner) (*domain.Payment, error) {
	payment := &domain.Payment{}

	if err := row.Scan(
		&payment.ID,
		&payment.RestaurantID,
		&payment.Description,
		&payment.Kind,
		&payment.Amount,
		&payment.Category,
		&payment.Counterparty,
		&payment.DueDate,
		&payment.PaidAt,
		&payment.Status,
		&payment.CashFlowEntryID,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return payment, nil
}
