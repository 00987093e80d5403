package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Review is a customer review left on the storefront.
type Review struct {
	bun.BaseModel `bun:"table:reviews"`

	ID        int64     `bun:",pk,autoincrement"`
	Author    string    `bun:"author"`
	Rating    int       `bun:"rating"`
	Text      string    `bun:"text"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`
}
