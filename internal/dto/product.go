package dto

import "github.com/sweetbakery/storefront/internal/entity"

// ProductRequest carries the create/update payload for a catalog entry. The
// rating pointer distinguishes an omitted rating (defaulted) from an explicit
// zero.
type ProductRequest struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating"`
}

// RatingOrDefault resolves the effective rating for the payload.
func (r ProductRequest) RatingOrDefault() float64 {
	if r.Rating == nil {
		return entity.DefaultRating
	}
	return *r.Rating
}

// ProductResponse serializes a catalog row.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

// DeleteProductResponse acknowledges a delete request.
type DeleteProductResponse struct {
	Success bool `json:"success"`
}

// NewProduct maps a product entity onto its row representation.
func NewProduct(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Image:       product.Image,
		Description: product.Description,
		Rating:      product.Rating,
		CreatedAt:   formatTime(product.CreatedAt),
		UpdatedAt:   formatTime(product.UpdatedAt),
	}
}

// NewProducts maps a slice of products, preserving order.
func NewProducts(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProduct(&products[i]))
	}
	return out
}
