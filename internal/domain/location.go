package domain

import "time"

// Location is county/region reference data; events point at it.
type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	County    string    `json:"county"`
	Region    string    `json:"region"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	IsPopular bool      `json:"is_popular"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateLocationInput struct {
	Name      string
	County    string
	Region    string
	Latitude  *float64
	Longitude *float64
	IsPopular bool
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateCategoryInput struct {
	Name        string
	Description string
}
