package products

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vapemart/vapemart/internal/catalog/categories"
	catshared "github.com/vapemart/vapemart/internal/catalog/shared"
	"github.com/vapemart/vapemart/internal/catalog/tags"
	"github.com/vapemart/vapemart/internal/platform/httpx"
	"github.com/vapemart/vapemart/internal/shared"
)

type memoryRepo struct {
	products []Product
	// stocked maps product id to the location ids carrying it.
	stocked map[int64][]int64
	nextID  int64
}

func newMemoryRepo(items ...Product) *memoryRepo {
	repo := &memoryRepo{stocked: map[int64][]int64{}}
	for _, p := range items {
		repo.nextID++
		p.ID = repo.nextID
		repo.products = append(repo.products, p)
	}
	return repo
}

func (r *memoryRepo) List(ctx context.Context, q ListQuery) ([]Product, int, error) {
	var matched []Product
	for _, p := range r.products {
		if !q.IncludeInactive && !p.IsActive {
			continue
		}
		if q.IncludeInactive && q.IsActive != nil && p.IsActive != *q.IsActive {
			continue
		}
		if q.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *q.CategoryID) {
			continue
		}
		if q.Featured != nil && p.Featured != *q.Featured {
			continue
		}
		if q.Search != "" {
			needle := strings.ToLower(q.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}
		if len(q.BrandIDs) > 0 && (p.BrandID == nil || !containsID(q.BrandIDs, *p.BrandID)) {
			continue
		}
		if len(q.LocationIDs) > 0 && !r.stockedAt(p.ID, q.LocationIDs) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := len(matched)
	start := (q.Page - 1) * q.PageSize
	if start >= total {
		return nil, total, nil
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *memoryRepo) stockedAt(productID int64, locationIDs []int64) bool {
	for _, loc := range r.stocked[productID] {
		if containsID(locationIDs, loc) {
			return true
		}
	}
	return false
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (r *memoryRepo) GetBySlug(ctx context.Context, slug string) (Product, error) {
	for _, p := range r.products {
		if p.Slug == slug && p.IsActive {
			return p, nil
		}
	}
	return Product{}, shared.ErrNotFound
}

func (r *memoryRepo) GetByID(ctx context.Context, id int64) (Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, shared.ErrNotFound
}

func (r *memoryRepo) ResolveSlug(ctx context.Context, slug string) (int64, error) {
	p, err := r.GetBySlug(ctx, slug)
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *memoryRepo) Create(ctx context.Context, product Product) (Product, error) {
	for _, p := range r.products {
		if p.Slug == product.Slug {
			return Product{}, httpx.ErrDuplicate
		}
	}
	r.nextID++
	product.ID = r.nextID
	product.IsActive = true
	r.products = append(r.products, product)
	return product, nil
}

func (r *memoryRepo) Update(ctx context.Context, id int64, patch ProductPatch) (Product, error) {
	for i, p := range r.products {
		if p.ID != id {
			continue
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.IsActive != nil {
			p.IsActive = *patch.IsActive
		}
		r.products[i] = p
		return p, nil
	}
	return Product{}, shared.ErrNotFound
}

func (r *memoryRepo) SoftDelete(ctx context.Context, id int64) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products[i].IsActive = false
		}
	}
	return nil
}

type stubCategories struct {
	bySlug map[string]categories.Category
}

func (s stubCategories) GetBySlug(ctx context.Context, slug string) (categories.Category, error) {
	c, ok := s.bySlug[slug]
	if !ok {
		return categories.Category{}, shared.ErrNotFound
	}
	return c, nil
}

type stubTags struct {
	byProduct map[int64][]tags.Tag
}

func (s stubTags) ListForProduct(ctx context.Context, productID int64) ([]tags.Tag, error) {
	return s.byProduct[productID], nil
}

func ptrInt64(v int64) *int64 { return &v }
func ptrBool(v bool) *bool    { return &v }

func fixtureRepo() *memoryRepo {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemoryRepo(
		Product{Name: "Mango Cloud", Description: "Ripe mango disposable", Slug: "mango-cloud", Price: 1100, CategoryID: ptrInt64(1), BrandID: ptrInt64(10), Featured: true, IsActive: true, CreatedAt: base.Add(3 * time.Hour)},
		Product{Name: "Berry Frost", Description: "Mixed berries", Slug: "berry-frost", Price: 1050, CategoryID: ptrInt64(1), BrandID: ptrInt64(11), IsActive: true, CreatedAt: base.Add(2 * time.Hour)},
		Product{Name: "Pod One", Description: "Starter pod kit", Slug: "pod-one", Price: 2400, CategoryID: ptrInt64(2), BrandID: ptrInt64(10), IsActive: true, CreatedAt: base.Add(time.Hour)},
		Product{Name: "Retired Stick", Description: "Old model", Slug: "retired-stick", Price: 900, CategoryID: ptrInt64(1), IsActive: false, CreatedAt: base},
	)
	repo.stocked[1] = []int64{100}
	repo.stocked[2] = []int64{200}
	repo.stocked[3] = []int64{100, 200}
	return repo
}

func fixtureService(repo *memoryRepo) *Service {
	cats := stubCategories{bySlug: map[string]categories.Category{
		"disposable": {ID: 1, Name: "Disposables", Slug: "disposable"},
		"pod-system": {ID: 2, Name: "Pod Systems", Slug: "pod-system"},
	}}
	return NewService(repo, cats, stubTags{})
}

func TestListExcludesInactive(t *testing.T) {
	svc := fixtureService(fixtureRepo())

	result, err := svc.List(context.Background(), catshared.ProductFilters{})
	require.NoError(t, err)
	require.Len(t, result.Products, 3)
	require.Equal(t, 3, result.Pagination.TotalCount)
	for _, p := range result.Products {
		require.True(t, p.IsActive)
	}
}

func TestListCountMatchesFilteredSet(t *testing.T) {
	svc := fixtureService(fixtureRepo())

	result, err := svc.List(context.Background(), catshared.ProductFilters{CategorySlug: "disposable"})
	require.NoError(t, err)
	require.Len(t, result.Products, 2)
	require.Equal(t, 2, result.Pagination.TotalCount)
	require.Equal(t, 1, result.Pagination.TotalPages)
}

func TestListUnknownCategorySlugYieldsEmptyResult(t *testing.T) {
	svc := fixtureService(fixtureRepo())

	result, err := svc.List(context.Background(), catshared.ProductFilters{CategorySlug: "cigars"})
	require.NoError(t, err)
	require.Empty(t, result.Products)
	require.Equal(t, 0, result.Pagination.TotalCount)
	require.Equal(t, 0, result.Pagination.TotalPages)
}

func TestListSearchIsCaseInsensitive(t *testing.T) {
	svc := fixtureService(fixtureRepo())

	result, err := svc.List(context.Background(), catshared.ProductFilters{Search: "manGO"})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	require.Equal(t, "mango-cloud", result.Products[0].Slug)
}

func TestListFiltersByBrandAndLocation(t *testing.T) {
	svc := fixtureService(fixtureRepo())

	byBrand, err := svc.List(context.Background(), catshared.ProductFilters{BrandIDs: []int64{10}})
	require.NoError(t, err)
	require.Len(t, byBrand.Products, 2)

	byLocation, err := svc.List(context.Background(), catshared.ProductFilters{LocationIDs: []int64{200}})
	require.NoError(t, err)
	require.Len(t, byLocation.Products, 2)
	for _, p := range byLocation.Products {
		require.NotEqual(t, "mango-cloud", p.Slug)
	}
}

func TestListPageBeyondTotalIsEmptyWithTruthfulCount(t *testing.T) {
	svc := fixtureService(fixtureRepo())

	result, err := svc.List(context.Background(), catshared.ProductFilters{Page: 5, PageSize: 2})
	require.NoError(t, err)
	require.Empty(t, result.Products)
	require.Equal(t, 3, result.Pagination.TotalCount)
	require.Equal(t, 2, result.Pagination.TotalPages)
	require.Equal(t, 5, result.Pagination.Page)
}

func TestListFeaturedFilter(t *testing.T) {
	svc := fixtureService(fixtureRepo())

	result, err := svc.List(context.Background(), catshared.ProductFilters{Featured: ptrBool(true)})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	require.Equal(t, "mango-cloud", result.Products[0].Slug)
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc := fixtureService(fixtureRepo())

	result, err := svc.List(context.Background(), catshared.ProductFilters{})
	require.NoError(t, err)
	require.Equal(t, []string{"mango-cloud", "berry-frost", "pod-one"},
		[]string{result.Products[0].Slug, result.Products[1].Slug, result.Products[2].Slug})
}

func TestAdminListIncludesInactive(t *testing.T) {
	svc := fixtureService(fixtureRepo())

	result, err := svc.AdminList(context.Background(), catshared.ListFilters{})
	require.NoError(t, err)
	require.Len(t, result.Products, 4)
	require.Equal(t, 4, result.Pagination.TotalCount)

	inactiveOnly, err := svc.AdminList(context.Background(), catshared.ListFilters{IsActive: ptrBool(false)})
	require.NoError(t, err)
	require.Len(t, inactiveOnly.Products, 1)
	require.Equal(t, "retired-stick", inactiveOnly.Products[0].Slug)
}

func TestCreateSlugifiesName(t *testing.T) {
	repo := fixtureRepo()
	svc := fixtureService(repo)

	created, err := svc.Create(context.Background(), ProductForm{Name: "Crème Brûlée 60ml", Price: 1500}, nil)
	require.NoError(t, err)
	require.Equal(t, "creme-brulee-60ml", created.Slug)
}

func TestCreateDuplicateSlugConflicts(t *testing.T) {
	svc := fixtureService(fixtureRepo())

	_, err := svc.Create(context.Background(), ProductForm{Name: "Mango Cloud", Slug: "mango-cloud", Price: 1100}, nil)
	require.True(t, errors.Is(err, httpx.ErrDuplicate))
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	svc := fixtureService(fixtureRepo())

	_, err := svc.Create(context.Background(), ProductForm{Name: "Freebie", Price: -1}, nil)
	require.True(t, errors.Is(err, httpx.ErrValidation))
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := fixtureRepo()
	svc := fixtureService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.NoError(t, svc.Delete(context.Background(), 1))

	result, err := svc.List(context.Background(), catshared.ProductFilters{})
	require.NoError(t, err)
	require.Len(t, result.Products, 2)
}

func TestGetBySlugEmbedsTags(t *testing.T) {
	repo := fixtureRepo()
	cats := stubCategories{bySlug: map[string]categories.Category{}}
	labels := stubTags{byProduct: map[int64][]tags.Tag{
		1: {{ID: 7, Name: "bestseller"}},
	}}
	svc := NewService(repo, cats, labels)

	product, err := svc.GetBySlug(context.Background(), "mango-cloud")
	require.NoError(t, err)
	require.Len(t, product.Tags, 1)
	require.Equal(t, "bestseller", product.Tags[0].Name)
}

func TestGetBySlugHidesInactive(t *testing.T) {
	svc := fixtureService(fixtureRepo())

	_, err := svc.GetBySlug(context.Background(), "retired-stick")
	require.True(t, errors.Is(err, shared.ErrNotFound))
}
