package dto

import "github.com/sweetbakery/storefront/internal/entity"

// CreateReviewRequest carries a new customer review.
type CreateReviewRequest struct {
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// ReviewResponse serializes a review row.
type ReviewResponse struct {
	ID        int64   `json:"id"`
	Author    string  `json:"author"`
	Rating    int     `json:"rating"`
	Text      string  `json:"text"`
	CreatedAt *string `json:"created_at"`
}

// NewReview maps a review entity onto its row representation.
func NewReview(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Author:    review.Author,
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: formatTime(review.CreatedAt),
	}
}

// NewReviews maps a slice of reviews, preserving order.
func NewReviews(reviews []entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReview(&reviews[i]))
	}
	return out
}
