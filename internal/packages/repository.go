package packages

import (
	"context"
	"database/sql"
	"sync"

	"rich-catering-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Package, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Package, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetByID"),
		zap.Uint("package_id", id),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			p.id,
			p.title,
			p.price_per_guest,
			p.min_guests,
			p.max_guests,
			a.id,
			a.name,
			a.price
		FROM packages p
		LEFT JOIN package_addons a ON a.package_id = p.id
		WHERE p.id = $1
		ORDER BY a.id
	`, id)
	if err != nil {
		log.Error("failed to query package", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pkg *Package
	for rows.Next() {
		var (
			p          Package
			addOnID    sql.NullInt64
			addOnName  sql.NullString
			addOnPrice sql.NullFloat64
		)
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.PricePerGuest,
			&p.MinGuests,
			&p.MaxGuests,
			&addOnID,
			&addOnName,
			&addOnPrice,
		); err != nil {
			log.Error("failed to scan package row", zap.Error(err))
			return nil, err
		}

		if pkg == nil {
			p.AddOns = []*AddOn{}
			pkg = &p
		}
		if addOnID.Valid {
			pkg.AddOns = append(pkg.AddOns, &AddOn{
				ID:    uint(addOnID.Int64),
				Name:  addOnName.String,
				Price: addOnPrice.Float64,
			})
		}
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	if pkg == nil {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

type staticRepository struct {
	mu       sync.RWMutex
	packages map[uint]*Package
}

// NewStaticRepository serves a fixed catalog from memory.
func NewStaticRepository(pkgs ...*Package) Repository {
	m := make(map[uint]*Package, len(pkgs))
	for _, p := range pkgs {
		m[p.ID] = p
	}
	return &staticRepository{packages: m}
}

func (r *staticRepository) GetByID(_ context.Context, id uint) (*Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.packages[id]
	if !ok {
		return nil, ErrPackageNotFound
	}
	cp := *p
	cp.AddOns = append([]*AddOn(nil), p.AddOns...)
	return &cp, nil
}

// DefaultPackages is the seed catalog used by the in-memory store.
func DefaultPackages() []*Package {
	return []*Package{
		{
			ID: 1, Title: "Gold Wedding Package", PricePerGuest: 1500, MinGuests: 50, MaxGuests: 500,
			AddOns: []*AddOn{
				{ID: 1, Name: "Premium Photography", Price: 15000},
				{ID: 2, Name: "Videography", Price: 25000},
				{ID: 3, Name: "Floral Decor", Price: 30000},
				{ID: 4, Name: "Live Band", Price: 40000},
			},
		},
		{
			ID: 2, Title: "Standard Birthday Package", PricePerGuest: 800, MinGuests: 20, MaxGuests: 100,
			AddOns: []*AddOn{
				{ID: 5, Name: "Magic Show", Price: 8000},
				{ID: 6, Name: "Face Painting", Price: 5000},
			},
		},
		{
			ID: 3, Title: "Corporate Event Package", PricePerGuest: 600, MinGuests: 30, MaxGuests: 200,
			AddOns: []*AddOn{
				{ID: 7, Name: "Extended AV Support", Price: 10000},
			},
		},
	}
}
