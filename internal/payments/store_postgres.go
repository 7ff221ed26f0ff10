package payments

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"paylens/pkg/platform/sentinel"
	txcontext "paylens/pkg/platform/tx"
)

// PostgresStore persists payments in PostgreSQL. Items travel as a JSONB
// document per payment; the seq column pins FindAll to insertion order, which
// every query's ordering guarantee is defined against.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed payment store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execer joins a caller's transaction when one travels in the context.
func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// EnsureSchema creates the payments table and its indexes when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS payments (
			seq        BIGSERIAL,
			id         UUID PRIMARY KEY,
			user_id    UUID NOT NULL,
			user_email TEXT NOT NULL,
			paid_at    TIMESTAMPTZ NOT NULL,
			items      JSONB NOT NULL DEFAULT '[]'::jsonb
		);
		CREATE INDEX IF NOT EXISTS idx_payments_paid_at ON payments (paid_at);
		CREATE INDEX IF NOT EXISTS idx_payments_user_email ON payments (user_email);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure payments schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, payment Payment) error {
	itemsBytes, err := json.Marshal(payment.Items)
	if err != nil {
		return fmt.Errorf("marshal payment items: %w", err)
	}

	const query = `
		INSERT INTO payments (id, user_id, user_email, paid_at, items)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`
	result, err := s.execer(ctx).ExecContext(ctx, query,
		payment.ID,
		payment.User.ID,
		payment.User.Email,
		payment.PaidAt,
		itemsBytes,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("payment %s: %w", payment.ID, sentinel.ErrConflict)
	}
	return nil
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]Payment, error) {
	const query = `
		SELECT id, user_id, user_email, paid_at, items
		FROM payments
		ORDER BY seq ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	payments := make([]Payment, 0)
	for rows.Next() {
		var (
			payment    Payment
			itemsBytes []byte
		)
		if err := rows.Scan(&payment.ID, &payment.User.ID, &payment.User.Email, &payment.PaidAt, &itemsBytes); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}

		var items []PaymentItem
		if len(itemsBytes) > 0 {
			if err := json.Unmarshal(itemsBytes, &items); err != nil {
				return nil, fmt.Errorf("unmarshal payment items: %w", err)
			}
		}
		payment.Items = items

		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}
