package products

import (
	"time"

	"github.com/vapemart/vapemart/internal/catalog/brands"
	"github.com/vapemart/vapemart/internal/catalog/categories"
	"github.com/vapemart/vapemart/internal/catalog/tags"
)

// Product is a catalog item. Category and Brand are embedded from joins on
// read paths and are nil on rows without the relation.
type Product struct {
	ID              int64                `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	Slug            string               `json:"slug"`
	Image           string               `json:"image"`
	Price           int64                `json:"price"`
	CategoryID      *int64               `json:"categoryId"`
	BrandID         *int64               `json:"brandId"`
	BatteryCapacity string               `json:"batteryCapacity"`
	LiquidVolume    string               `json:"liquidVolume"`
	Power           string               `json:"power"`
	Featured        bool                 `json:"featured"`
	IsNew           bool                 `json:"isNew"`
	IsActive        bool                 `json:"isActive"`
	Specifications  map[string]string    `json:"specifications"`
	Flavors         []string             `json:"flavors"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
	CreatedBy       *int64               `json:"createdBy"`
	Category        *categories.Category `json:"category,omitempty"`
	Brand           *brands.Brand        `json:"brand,omitempty"`
	Tags            []tags.Tag           `json:"tags,omitempty"`
}
