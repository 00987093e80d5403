package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// CategoryAll is the storefront's "show everything" category label; a listing
// filtered by it behaves the same as an unfiltered listing.
const CategoryAll = "Все"

// DefaultRating is applied when a product is created without an explicit rating.
const DefaultRating = 5

// Product represents a catalog entry.
type Product struct {
	bun.BaseModel `bun:"table:products"`

	ID          int64     `bun:",pk,autoincrement"`
	Name        string    `bun:"name"`
	Category    string    `bun:"category"`
	Price       float64   `bun:"price"`
	Image       string    `bun:"image"`
	Description string    `bun:"description"`
	Rating      float64   `bun:"rating"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero"`
}
