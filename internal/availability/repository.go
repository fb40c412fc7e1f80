package availability

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vapemart/vapemart/internal/catalog/locations"
	"github.com/vapemart/vapemart/internal/platform/httpx"
	"github.com/vapemart/vapemart/internal/shared"
)

type Repository interface {
	ListForProduct(ctx context.Context, productID int64) ([]Availability, error)
	Create(ctx context.Context, row Availability) (Availability, error)
	SetQuantity(ctx context.Context, id int64, quantity int) (Availability, error)
	Upsert(ctx context.Context, productID, locationID int64, quantity int) (Availability, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// ListForProduct returns every stock row for a product with its location
// embedded.
func (r *repository) ListForProduct(ctx context.Context, productID int64) ([]Availability, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT pa.id, pa.product_id, pa.location_id, pa.quantity, pa.updated_at,
		        l.id, l.name, l.address, COALESCE(l.phone, ''), COALESCE(l.working_hours, ''), l.is_active, l.created_at
		 FROM product_availability pa
		 JOIN locations l ON pa.location_id = l.id
		 WHERE pa.product_id = $1
		 ORDER BY l.name`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Availability
	for rows.Next() {
		var a Availability
		var l locations.Location
		if err := rows.Scan(&a.ID, &a.ProductID, &a.LocationID, &a.Quantity, &a.UpdatedAt,
			&l.ID, &l.Name, &l.Address, &l.Phone, &l.WorkingHours, &l.IsActive, &l.CreatedAt); err != nil {
			return nil, err
		}
		a.Location = &l
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *repository) Create(ctx context.Context, row Availability) (Availability, error) {
	now := time.Now()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO product_availability (product_id, location_id, quantity, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		row.ProductID, row.LocationID, row.Quantity, now).
		Scan(&row.ID)
	if err != nil {
		return Availability{}, httpx.TranslatePGError(err)
	}
	row.UpdatedAt = now
	return row, nil
}

func (r *repository) SetQuantity(ctx context.Context, id int64, quantity int) (Availability, error) {
	var a Availability
	err := r.pool.QueryRow(ctx,
		`UPDATE product_availability SET quantity = $1, updated_at = $2 WHERE id = $3
		 RETURNING id, product_id, location_id, quantity, updated_at`,
		quantity, time.Now(), id).
		Scan(&a.ID, &a.ProductID, &a.LocationID, &a.Quantity, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Availability{}, shared.ErrNotFound
	}
	if err != nil {
		return Availability{}, err
	}
	return a, nil
}

// Upsert inserts or overwrites the quantity for a (product, location) pair
// in a single statement, relying on the pair's unique constraint.
func (r *repository) Upsert(ctx context.Context, productID, locationID int64, quantity int) (Availability, error) {
	var a Availability
	err := r.pool.QueryRow(ctx,
		`INSERT INTO product_availability (product_id, location_id, quantity, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (product_id, location_id)
		 DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		 RETURNING id, product_id, location_id, quantity, updated_at`,
		productID, locationID, quantity, time.Now()).
		Scan(&a.ID, &a.ProductID, &a.LocationID, &a.Quantity, &a.UpdatedAt)
	if err != nil {
		return Availability{}, err
	}
	return a, nil
}
