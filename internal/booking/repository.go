package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rich-catering-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uint) (*Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)

	// ListBySlot returns every booking on date and timeSlot regardless of
	// approval.
	ListBySlot(ctx context.Context, date, timeSlot string) ([]*Booking, error)

	Update(ctx context.Context, id uint, fn func(*Booking) error) (*Booking, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, user_id, package_id, event_date, time_slot, guest_count, add_ons,
	total_estimate, contact_details, payment_method, status, admin_approval, payment_status,
	paid_amount, payment_notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*Booking, error) {
	var (
		b       Booking
		date    time.Time
		addOns  pq.Int64Array
		contact []byte
	)
	err := row.Scan(
		&b.ID, &b.UserID, &b.PackageID, &date, &b.TimeSlot, &b.GuestCount, &addOns,
		&b.TotalEstimate, &contact, &b.PaymentMethod, &b.Status, &b.AdminApproval, &b.PaymentStatus,
		&b.PaidAmount, &b.PaymentNotes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Date = date.Format(DateLayout)
	b.AddOns = make([]uint, len(addOns))
	for i, id := range addOns {
		b.AddOns[i] = uint(id)
	}
	if len(contact) > 0 {
		if err := json.Unmarshal(contact, &b.ContactDetails); err != nil {
			return nil, fmt.Errorf("decode booking %d contact details: %w", b.ID, err)
		}
	}
	return &b, nil
}

func addOnArray(ids []uint) pq.Int64Array {
	out := make(pq.Int64Array, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	contact, err := json.Marshal(b.ContactDetails)
	if err != nil {
		return fmt.Errorf("encode contact details: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO bookings (
			user_id, package_id, event_date, time_slot, guest_count, add_ons,
			total_estimate, contact_details, payment_method, status,
			admin_approval, payment_status, paid_amount, payment_notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING id, created_at, updated_at
	`,
		b.UserID, b.PackageID, b.Date, b.TimeSlot, b.GuestCount, addOnArray(b.AddOns),
		b.TotalEstimate, contact, b.PaymentMethod, b.Status,
		b.AdminApproval, b.PaymentStatus, b.PaidAmount, b.PaymentNotes,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert booking",
			zap.String("layer", "repository"),
			zap.Uint("user_id", b.UserID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *repository) ListAll(ctx context.Context) ([]*Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY id`)
}

func (r *repository) ListBySlot(ctx context.Context, date, timeSlot string) ([]*Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE event_date = $1 AND time_slot = $2 ORDER BY id`,
		date, timeSlot,
	)
}

func (r *repository) list(ctx context.Context, query string, args ...any) ([]*Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []*Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *repository) Update(ctx context.Context, id uint, fn func(*Booking) error) (*Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := fn(b); err != nil {
		return nil, err
	}
	b.ID = id
	b.UpdatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		UPDATE bookings SET
			payment_method = $1,
			status = $2,
			admin_approval = $3,
			payment_status = $4,
			paid_amount = $5,
			payment_notes = $6,
			updated_at = $7
		WHERE id = $8
	`,
		b.PaymentMethod, b.Status, b.AdminApproval, b.PaymentStatus,
		b.PaidAmount, b.PaymentNotes, b.UpdatedAt, id,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return b, nil
}
