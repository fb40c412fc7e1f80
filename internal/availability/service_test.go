package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vapemart/vapemart/internal/platform/httpx"
	"github.com/vapemart/vapemart/internal/shared"
)

type memoryStockRepo struct {
	rows   []Availability
	nextID int64
}

func (r *memoryStockRepo) ListForProduct(ctx context.Context, productID int64) ([]Availability, error) {
	var out []Availability
	for _, row := range r.rows {
		if row.ProductID == productID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *memoryStockRepo) Create(ctx context.Context, row Availability) (Availability, error) {
	for _, existing := range r.rows {
		if existing.ProductID == row.ProductID && existing.LocationID == row.LocationID {
			return Availability{}, httpx.ErrDuplicate
		}
	}
	r.nextID++
	row.ID = r.nextID
	row.UpdatedAt = time.Now()
	r.rows = append(r.rows, row)
	return row, nil
}

func (r *memoryStockRepo) SetQuantity(ctx context.Context, id int64, quantity int) (Availability, error) {
	for i, row := range r.rows {
		if row.ID == id {
			r.rows[i].Quantity = quantity
			r.rows[i].UpdatedAt = time.Now()
			return r.rows[i], nil
		}
	}
	return Availability{}, shared.ErrNotFound
}

func (r *memoryStockRepo) Upsert(ctx context.Context, productID, locationID int64, quantity int) (Availability, error) {
	for i, row := range r.rows {
		if row.ProductID == productID && row.LocationID == locationID {
			r.rows[i].Quantity = quantity
			r.rows[i].UpdatedAt = time.Now()
			return r.rows[i], nil
		}
	}
	return r.Create(ctx, Availability{ProductID: productID, LocationID: locationID, Quantity: quantity})
}

func TestCreateRejectsNegativeQuantity(t *testing.T) {
	svc := NewService(&memoryStockRepo{})

	_, err := svc.Create(context.Background(), 1, 1, -1)
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCreateDuplicatePairConflicts(t *testing.T) {
	repo := &memoryStockRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), 1, 1, 5)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), 1, 1, 9)
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}

func TestSetQuantityUnknownRow(t *testing.T) {
	svc := NewService(&memoryStockRepo{})

	_, err := svc.SetQuantity(context.Background(), 99, 5)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUpsertClampsNegativeAndOverwrites(t *testing.T) {
	repo := &memoryStockRepo{}
	svc := NewService(repo)

	first, err := svc.Upsert(context.Background(), 1, 2, 10)
	require.NoError(t, err)
	require.Equal(t, 10, first.Quantity)

	second, err := svc.Upsert(context.Background(), 1, 2, -4)
	require.NoError(t, err)
	require.Equal(t, 0, second.Quantity)
	require.Equal(t, first.ID, second.ID)

	rows, err := svc.ListForProduct(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
