package products

import (
	"context"
	"errors"

	"github.com/vapemart/vapemart/internal/catalog/categories"
	catshared "github.com/vapemart/vapemart/internal/catalog/shared"
	"github.com/vapemart/vapemart/internal/catalog/tags"
	"github.com/vapemart/vapemart/internal/shared"
)

// CategoryResolver resolves a category slug to its row.
type CategoryResolver interface {
	GetBySlug(ctx context.Context, slug string) (categories.Category, error)
}

// TagLister fetches the tags attached to a product.
type TagLister interface {
	ListForProduct(ctx context.Context, productID int64) ([]tags.Tag, error)
}

type Service struct {
	repo       Repository
	categories CategoryResolver
	tags       TagLister
}

func NewService(repo Repository, categories CategoryResolver, tags TagLister) *Service {
	return &Service{repo: repo, categories: categories, tags: tags}
}

// ListResult bundles one page of products with pagination metadata.
type ListResult struct {
	Products   []Product         `json:"products"`
	Pagination shared.Pagination `json:"pagination"`
}

// List applies the public catalog filters. A category slug that does not
// resolve yields an empty result rather than an unfiltered list.
func (s *Service) List(ctx context.Context, filters catshared.ProductFilters) (ListResult, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = shared.DefaultPageSize
	}

	q := ListQuery{
		Featured:    filters.Featured,
		Search:      filters.Search,
		BrandIDs:    filters.BrandIDs,
		LocationIDs: filters.LocationIDs,
		Page:        page,
		PageSize:    pageSize,
	}

	if filters.CategorySlug != "" {
		category, err := s.categories.GetBySlug(ctx, filters.CategorySlug)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return ListResult{
					Products:   []Product{},
					Pagination: shared.NewPagination(page, pageSize, 0),
				}, nil
			}
			return ListResult{}, err
		}
		q.CategoryID = &category.ID
	}

	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return ListResult{}, err
	}
	if items == nil {
		items = []Product{}
	}
	return ListResult{
		Products:   items,
		Pagination: shared.NewPagination(page, pageSize, total),
	}, nil
}

// AdminList returns a page of products including inactive rows.
func (s *Service) AdminList(ctx context.Context, filters catshared.ListFilters) (ListResult, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = shared.DefaultPageSize
	}

	items, total, err := s.repo.List(ctx, ListQuery{
		Search:          filters.Search,
		Page:            page,
		PageSize:        pageSize,
		IncludeInactive: true,
		IsActive:        filters.IsActive,
	})
	if err != nil {
		return ListResult{}, err
	}
	if items == nil {
		items = []Product{}
	}
	return ListResult{
		Products:   items,
		Pagination: shared.NewPagination(page, pageSize, total),
	}, nil
}

// GetBySlug fetches one active product with relations and tags embedded.
func (s *Service) GetBySlug(ctx context.Context, slug string) (Product, error) {
	product, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return Product{}, err
	}
	if s.tags != nil {
		if labels, err := s.tags.ListForProduct(ctx, product.ID); err == nil {
			product.Tags = labels
		}
	}
	return product, nil
}

// ResolveSlug maps an active product slug to its id.
func (s *Service) ResolveSlug(ctx context.Context, slug string) (int64, error) {
	return s.repo.ResolveSlug(ctx, slug)
}

func (s *Service) Create(ctx context.Context, form ProductForm, createdBy *int64) (Product, error) {
	product := Product{
		Name:            form.Name,
		Description:     form.Description,
		Slug:            form.Slug,
		Image:           form.Image,
		Price:           form.Price,
		CategoryID:      form.CategoryID,
		BrandID:         form.BrandID,
		BatteryCapacity: form.BatteryCapacity,
		LiquidVolume:    form.LiquidVolume,
		Power:           form.Power,
		Featured:        form.Featured,
		IsNew:           form.IsNew,
		Specifications:  form.Specifications,
		Flavors:         form.Flavors,
		CreatedBy:       createdBy,
	}
	if product.Slug == "" {
		product.Slug = catshared.Slugify(product.Name)
	}
	if err := s.validate(product); err != nil {
		return Product{}, err
	}
	return s.repo.Create(ctx, product)
}

func (s *Service) Update(ctx context.Context, id int64, patch ProductPatch) (Product, error) {
	if id <= 0 {
		return Product{}, shared.ErrNotFound
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete soft-deletes: the row stays, is_active flips to false. Idempotent.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrNotFound
	}
	return s.repo.SoftDelete(ctx, id)
}
