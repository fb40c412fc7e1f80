package locations

import "time"

// Location is a physical store that keeps its own stock levels.
type Location struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	WorkingHours string    `json:"workingHours"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
