package products

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vapemart/vapemart/internal/catalog/brands"
	"github.com/vapemart/vapemart/internal/catalog/categories"
	"github.com/vapemart/vapemart/internal/platform/db"
	"github.com/vapemart/vapemart/internal/platform/httpx"
	"github.com/vapemart/vapemart/internal/shared"
)

// ListQuery narrows the product listing. All fields are optional; the zero
// value lists every active product.
type ListQuery struct {
	CategoryID      *int64
	Featured        *bool
	Search          string
	BrandIDs        []int64
	LocationIDs     []int64
	Page            int
	PageSize        int
	IncludeInactive bool
	// IsActive filters by status explicitly; only honored when
	// IncludeInactive is set (admin listings).
	IsActive *bool
}

type Repository interface {
	List(ctx context.Context, q ListQuery) ([]Product, int, error)
	GetBySlug(ctx context.Context, slug string) (Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	ResolveSlug(ctx context.Context, slug string) (int64, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id int64, patch ProductPatch) (Product, error)
	SoftDelete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const selectColumns = `
	p.id, p.name, COALESCE(p.description, ''), p.slug, COALESCE(p.image, ''), p.price,
	p.category_id, p.brand_id,
	COALESCE(p.battery_capacity, ''), COALESCE(p.liquid_volume, ''), COALESCE(p.power, ''),
	p.featured, p.is_new, p.is_active, p.specifications, p.flavors,
	p.created_at, p.updated_at, p.created_by,
	c.id, c.name, c.description, c.slug, c.image, c.is_active, c.created_at,
	b.id, b.name, b.description, b.logo, b.is_active, b.created_at`

const fromJoins = `
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN brands b ON p.brand_id = b.id`

// List returns one page of products with embedded relations plus the total
// count of the filtered set. The count runs over the same predicate as the
// page query so pagination metadata stays truthful under filters.
func (r *repository) List(ctx context.Context, q ListQuery) ([]Product, int, error) {
	where := ``
	args := []interface{}{}
	argCount := 0
	and := func(cond string) {
		if where == "" {
			where = ` WHERE ` + cond
		} else {
			where += ` AND ` + cond
		}
	}

	if !q.IncludeInactive {
		and(`p.is_active = true`)
	} else if q.IsActive != nil {
		argCount++
		and(`p.is_active = $` + strconv.Itoa(argCount))
		args = append(args, *q.IsActive)
	}
	if q.CategoryID != nil {
		argCount++
		and(`p.category_id = $` + strconv.Itoa(argCount))
		args = append(args, *q.CategoryID)
	}
	if q.Featured != nil {
		argCount++
		and(`p.featured = $` + strconv.Itoa(argCount))
		args = append(args, *q.Featured)
	}
	if q.Search != "" {
		argCount++
		n := strconv.Itoa(argCount)
		and(`(p.name ILIKE $` + n + ` OR p.description ILIKE $` + n + `)`)
		args = append(args, "%"+q.Search+"%")
	}
	if len(q.BrandIDs) > 0 {
		argCount++
		and(`p.brand_id = ANY($` + strconv.Itoa(argCount) + `)`)
		args = append(args, q.BrandIDs)
	}
	if len(q.LocationIDs) > 0 {
		argCount++
		and(`EXISTS (SELECT 1 FROM product_availability pa WHERE pa.product_id = p.id AND pa.location_id = ANY($` + strconv.Itoa(argCount) + `))`)
		args = append(args, q.LocationIDs)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+fromJoins+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = shared.DefaultPageSize
	}

	query := `SELECT ` + selectColumns + fromJoins + where + ` ORDER BY p.created_at DESC, p.id DESC`
	argCount++
	query += ` LIMIT $` + strconv.Itoa(argCount)
	args = append(args, pageSize)
	argCount++
	query += ` OFFSET $` + strconv.Itoa(argCount)
	args = append(args, (page-1)*pageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	return result, total, rows.Err()
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (Product, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+selectColumns+fromJoins+` WHERE p.slug = $1 AND p.is_active = true`, slug)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, shared.ErrNotFound
	}
	return p, err
}

func (r *repository) GetByID(ctx context.Context, id int64) (Product, error) {
	return getByID(ctx, r.pool, id)
}

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx so reads can run
// inside or outside a transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getByID(ctx context.Context, q rowQuerier, id int64) (Product, error) {
	row := q.QueryRow(ctx,
		`SELECT `+selectColumns+fromJoins+` WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, shared.ErrNotFound
	}
	return p, err
}

// ResolveSlug maps an active product slug to its id.
func (r *repository) ResolveSlug(ctx context.Context, slug string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `SELECT id FROM products WHERE slug = $1 AND is_active = true`, slug).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, shared.ErrNotFound
	}
	return id, err
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	now := time.Now()
	specs := product.Specifications
	if specs == nil {
		specs = map[string]string{}
	}
	var created Product
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO products
				(name, description, slug, image, price, category_id, brand_id,
				 battery_capacity, liquid_volume, power, featured, is_new, is_active,
				 specifications, flavors, created_at, updated_at, created_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, true, $13, $14, $15, $15, $16)
			 RETURNING id`,
			product.Name, product.Description, product.Slug, product.Image, product.Price,
			product.CategoryID, product.BrandID,
			product.BatteryCapacity, product.LiquidVolume, product.Power,
			product.Featured, product.IsNew, specs, product.Flavors, now, product.CreatedBy).
			Scan(&product.ID)
		if err != nil {
			return httpx.TranslatePGError(err)
		}
		created, err = getByID(ctx, tx, product.ID)
		return err
	})
	if err != nil {
		return Product{}, err
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, id int64, patch ProductPatch) (Product, error) {
	set := []string{}
	args := []interface{}{}
	argCount := 0
	assign := func(column string, value interface{}) {
		argCount++
		set = append(set, column+` = $`+strconv.Itoa(argCount))
		args = append(args, value)
	}

	if patch.Name != nil {
		assign("name", *patch.Name)
	}
	if patch.Description != nil {
		assign("description", *patch.Description)
	}
	if patch.Slug != nil {
		assign("slug", *patch.Slug)
	}
	if patch.Image != nil {
		assign("image", *patch.Image)
	}
	if patch.Price != nil {
		assign("price", *patch.Price)
	}
	if patch.CategoryID != nil {
		assign("category_id", *patch.CategoryID)
	}
	if patch.BrandID != nil {
		assign("brand_id", *patch.BrandID)
	}
	if patch.BatteryCapacity != nil {
		assign("battery_capacity", *patch.BatteryCapacity)
	}
	if patch.LiquidVolume != nil {
		assign("liquid_volume", *patch.LiquidVolume)
	}
	if patch.Power != nil {
		assign("power", *patch.Power)
	}
	if patch.Featured != nil {
		assign("featured", *patch.Featured)
	}
	if patch.IsNew != nil {
		assign("is_new", *patch.IsNew)
	}
	if patch.IsActive != nil {
		assign("is_active", *patch.IsActive)
	}
	if patch.Specifications != nil {
		assign("specifications", *patch.Specifications)
	}
	if patch.Flavors != nil {
		assign("flavors", *patch.Flavors)
	}
	assign("updated_at", time.Now())

	argCount++
	args = append(args, id)

	query := `UPDATE products SET `
	for i, clause := range set {
		if i > 0 {
			query += `, `
		}
		query += clause
	}
	query += ` WHERE id = $` + strconv.Itoa(argCount)

	var updated Product
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return httpx.TranslatePGError(err)
		}
		if tag.RowsAffected() == 0 {
			return shared.ErrNotFound
		}
		updated, err = getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return Product{}, err
	}
	return updated, nil
}

// SoftDelete marks the product inactive. Repeated calls are no-ops.
func (r *repository) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE products SET is_active = false, updated_at = $1 WHERE id = $2`, time.Now(), id)
	return err
}

func scanProduct(row pgx.Row) (Product, error) {
	var (
		p Product

		catID        *int64
		catName      *string
		catDesc      *string
		catSlug      *string
		catImage     *string
		catActive    *bool
		catCreatedAt *time.Time

		brandID        *int64
		brandName      *string
		brandDesc      *string
		brandLogo      *string
		brandActive    *bool
		brandCreatedAt *time.Time
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Slug, &p.Image, &p.Price,
		&p.CategoryID, &p.BrandID,
		&p.BatteryCapacity, &p.LiquidVolume, &p.Power,
		&p.Featured, &p.IsNew, &p.IsActive, &p.Specifications, &p.Flavors,
		&p.CreatedAt, &p.UpdatedAt, &p.CreatedBy,
		&catID, &catName, &catDesc, &catSlug, &catImage, &catActive, &catCreatedAt,
		&brandID, &brandName, &brandDesc, &brandLogo, &brandActive, &brandCreatedAt,
	)
	if err != nil {
		return Product{}, err
	}

	if catID != nil {
		p.Category = &categories.Category{
			ID:          *catID,
			Name:        deref(catName),
			Description: deref(catDesc),
			Slug:        deref(catSlug),
			Image:       deref(catImage),
			IsActive:    catActive != nil && *catActive,
		}
		if catCreatedAt != nil {
			p.Category.CreatedAt = *catCreatedAt
		}
	}
	if brandID != nil {
		p.Brand = &brands.Brand{
			ID:          *brandID,
			Name:        deref(brandName),
			Description: deref(brandDesc),
			Logo:        deref(brandLogo),
			IsActive:    brandActive != nil && *brandActive,
		}
		if brandCreatedAt != nil {
			p.Brand.CreatedAt = *brandCreatedAt
		}
	}
	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
