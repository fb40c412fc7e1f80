package locations

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vapemart/vapemart/internal/platform/httpx"
)

type Repository interface {
	ListActive(ctx context.Context) ([]Location, error)
	Create(ctx context.Context, location Location) (Location, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) ListActive(ctx context.Context) ([]Location, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, address, COALESCE(phone, ''), COALESCE(working_hours, ''), is_active, created_at FROM locations WHERE is_active = true`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Location
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Phone, &l.WorkingHours, &l.IsActive, &l.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (r *repository) Create(ctx context.Context, location Location) (Location, error) {
	now := time.Now()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO locations (name, address, phone, working_hours, is_active, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		location.Name, location.Address, location.Phone, location.WorkingHours, location.IsActive, now).
		Scan(&location.ID)
	if err != nil {
		return Location{}, httpx.TranslatePGError(err)
	}
	location.CreatedAt = now
	return location, nil
}
