package brands

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vapemart/vapemart/internal/platform/httpx"
)

type Repository interface {
	ListActive(ctx context.Context) ([]Brand, error)
	Create(ctx context.Context, brand Brand) (Brand, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) ListActive(ctx context.Context) ([]Brand, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(logo, ''), is_active, created_at FROM brands WHERE is_active = true`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Brand
	for rows.Next() {
		var b Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Logo, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (r *repository) Create(ctx context.Context, brand Brand) (Brand, error) {
	now := time.Now()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO brands (name, description, logo, is_active, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		brand.Name, brand.Description, brand.Logo, brand.IsActive, now).
		Scan(&brand.ID)
	if err != nil {
		return Brand{}, httpx.TranslatePGError(err)
	}
	brand.CreatedAt = now
	return brand, nil
}
