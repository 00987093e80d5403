package review

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sweetbakery/storefront/internal/database"
	"github.com/sweetbakery/storefront/internal/entity"
)

var repoTracer = otel.Tracer("github.com/sweetbakery/storefront/repository/review")

// Repository encapsulates read/write access for reviews.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{
		writer: conns.Writer,
		reader: conns.Reader,
	}
}

// List returns every review, newest first.
func (r *Repository) List(ctx context.Context) ([]entity.Review, error) {
	ctx, span := repoTracer.Start(ctx, "ReviewRepository.List")
	defer span.End()

	reviews := make([]entity.Review, 0)
	err := r.reader.NewSelect().
		Model(&reviews).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return reviews, nil
}

// Create persists a new review using the write connection.
func (r *Repository) Create(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return errors.New("nil review")
	}
	ctx, span := repoTracer.Start(ctx, "ReviewRepository.Create", trace.WithAttributes(
		attribute.String("review.author", review.Author),
	))
	defer span.End()

	_, err := r.writer.NewInsert().Model(review).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}
