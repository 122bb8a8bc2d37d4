package user

import (
	"context"
	"database/sql"

	"rich-catering-be/internal/logger"

	"go.uber.org/zap"
)

// Directory answers role lookups needed for admin notifications.
type Directory interface {
	AdminIDs(ctx context.Context) ([]uint, error)
}

type repository struct {
	db *sql.DB
}

// NewRepository reads the users table maintained by the auth service.
func NewRepository(db *sql.DB) Directory {
	return &repository{db: db}
}

func (r *repository) AdminIDs(ctx context.Context) ([]uint, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id FROM users WHERE role = $1 ORDER BY id",
		string(RoleAdmin),
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list admins", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []uint
	for rows.Next() {
		var id uint
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type staticDirectory struct {
	ids []uint
}

// NewStaticDirectory serves a fixed admin list, e.g. from ADMIN_USER_IDS.
func NewStaticDirectory(ids ...uint) Directory {
	return &staticDirectory{ids: append([]uint(nil), ids...)}
}

func (d *staticDirectory) AdminIDs(context.Context) ([]uint, error) {
	return append([]uint(nil), d.ids...), nil
}
