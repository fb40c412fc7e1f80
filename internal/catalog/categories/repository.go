package categories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vapemart/vapemart/internal/platform/httpx"
	"github.com/vapemart/vapemart/internal/shared"
)

type Repository interface {
	ListActive(ctx context.Context) ([]Category, error)
	GetBySlug(ctx context.Context, slug string) (Category, error)
	Create(ctx context.Context, category Category) (Category, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const columns = `id, name, COALESCE(description, ''), slug, COALESCE(image, ''), is_active, created_at`

func (r *repository) ListActive(ctx context.Context) ([]Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+columns+` FROM categories WHERE is_active = true`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.Image, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (Category, error) {
	var c Category
	err := r.pool.QueryRow(ctx, `SELECT `+columns+` FROM categories WHERE slug = $1 AND is_active = true`, slug).
		Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.Image, &c.IsActive, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, shared.ErrNotFound
	}
	return c, err
}

func (r *repository) Create(ctx context.Context, category Category) (Category, error) {
	now := time.Now()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO categories (name, description, slug, image, is_active, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		category.Name, category.Description, category.Slug, category.Image, category.IsActive, now).
		Scan(&category.ID)
	if err != nil {
		return Category{}, httpx.TranslatePGError(err)
	}
	category.CreatedAt = now
	return category, nil
}
