package notification

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs(uint(4), sqlmock.AnyArg(), "Order #9 placed successfully", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))

	n := &Notification{UserID: 4, Type: TypeOrder, Message: "Order #9 placed successfully"}
	require.NoError(t, repo.Create(context.Background(), n))
	assert.Equal(t, uint(11), n.ID)
	assert.Equal(t, now, n.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "type", "message", "read", "created_at"}).
		AddRow(2, 4, "booking", "b", false, now).
		AddRow(1, 4, "order", "a", true, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM notifications")).
		WithArgs(uint(4)).
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, TypeBooking, list[0].Type)
	assert.True(t, list[1].Read)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	query := regexp.QuoteMeta("UPDATE notifications SET read = TRUE")

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uint(1), uint(4)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "message", "read", "created_at"}).
				AddRow(1, 4, "order", "a", true, time.Now()))

		n, err := repo.MarkRead(context.Background(), 1, 4)
		require.NoError(t, err)
		assert.True(t, n.Read)
	})

	t.Run("NotOwned", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uint(1), uint(5)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.MarkRead(context.Background(), 1, 5)
		assert.ErrorIs(t, err, ErrNotificationNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
