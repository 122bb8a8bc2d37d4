package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rich-catering-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)

	// Update locks the order, applies fn and persists the result. If fn
	// returns an error nothing is written.
	Update(ctx context.Context, id uint, fn func(*Order) error) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, user_id, items, total, address, payment_method, status,
	admin_approval, payment_status, paid_amount, payment_notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var (
		o     Order
		items []byte
	)
	err := row.Scan(
		&o.ID, &o.UserID, &items, &o.Total, &o.Address, &o.PaymentMethod, &o.Status,
		&o.AdminApproval, &o.PaymentStatus, &o.PaidAmount, &o.PaymentNotes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order %d items: %w", o.ID, err)
	}
	return &o, nil
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO orders (
			user_id, items, total, address, payment_method, status,
			admin_approval, payment_status, paid_amount, payment_notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, created_at, updated_at
	`,
		o.UserID, items, o.Total, o.Address, o.PaymentMethod, o.Status,
		o.AdminApproval, o.PaymentStatus, o.PaidAmount, o.PaymentNotes,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert order",
			zap.String("layer", "repository"),
			zap.Uint("user_id", o.UserID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *repository) ListAll(ctx context.Context) ([]*Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
}

func (r *repository) list(ctx context.Context, query string, args ...any) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *repository) Update(ctx context.Context, id uint, fn func(*Order) error) (*Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := fn(o); err != nil {
		return nil, err
	}
	o.ID = id
	o.UpdatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		UPDATE orders SET
			payment_method = $1,
			status = $2,
			admin_approval = $3,
			payment_status = $4,
			paid_amount = $5,
			payment_notes = $6,
			updated_at = $7
		WHERE id = $8
	`,
		o.PaymentMethod, o.Status, o.AdminApproval, o.PaymentStatus,
		o.PaidAmount, o.PaymentNotes, o.UpdatedAt, id,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return o, nil
}
