package tags

import "time"

// Tag is a named, colored label attachable to products.
type Tag struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	IsSystem    bool      `json:"isSystem"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DefaultColor matches the storefront accent used when no color is given.
const DefaultColor = "#e63900"
