package tags

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vapemart/vapemart/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]Tag, error)
	ListForProduct(ctx context.Context, productID int64) ([]Tag, error)
	Create(ctx context.Context, tag Tag) (Tag, error)
	Attach(ctx context.Context, productID, tagID int64) error
	Detach(ctx context.Context, productID, tagID int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const columns = `id, name, COALESCE(color, ''), COALESCE(description, ''), is_system, created_at`

func (r *repository) List(ctx context.Context) ([]Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+columns+` FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTags(rows)
}

func (r *repository) ListForProduct(ctx context.Context, productID int64) ([]Tag, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.name, COALESCE(t.color, ''), COALESCE(t.description, ''), t.is_system, t.created_at
		 FROM tags t JOIN product_tags pt ON pt.tag_id = t.id
		 WHERE pt.product_id = $1 ORDER BY t.name`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTags(rows)
}

func (r *repository) Create(ctx context.Context, tag Tag) (Tag, error) {
	now := time.Now()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO tags (name, color, description, is_system, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		tag.Name, tag.Color, tag.Description, tag.IsSystem, now).
		Scan(&tag.ID)
	if err != nil {
		return Tag{}, httpx.TranslatePGError(err)
	}
	tag.CreatedAt = now
	return tag, nil
}

func (r *repository) Attach(ctx context.Context, productID, tagID int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO product_tags (product_id, tag_id, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		productID, tagID, time.Now())
	return err
}

func (r *repository) Detach(ctx context.Context, productID, tagID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM product_tags WHERE product_id = $1 AND tag_id = $2`, productID, tagID)
	return err
}

func scanTags(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]Tag, error) {
	var result []Tag
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Description, &t.IsSystem, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
