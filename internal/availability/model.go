// Package availability tracks per-location stock counts for products.
package availability

import (
	"time"

	"github.com/vapemart/vapemart/internal/catalog/locations"
)

// Availability is the stock count for one product at one physical location.
type Availability struct {
	ID         int64               `json:"id"`
	ProductID  int64               `json:"productId"`
	LocationID int64               `json:"locationId"`
	Quantity   int                 `json:"quantity"`
	UpdatedAt  time.Time           `json:"updatedAt"`
	Location   *locations.Location `json:"location,omitempty"`
}
