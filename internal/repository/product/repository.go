package product

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sweetbakery/storefront/internal/database"
	"github.com/sweetbakery/storefront/internal/entity"
)

var repoTracer = otel.Tracer("github.com/sweetbakery/storefront/repository/product")

// ErrNotFound is returned when a product is missing.
var ErrNotFound = errors.New("product not found")

// Repository encapsulates read/write access for the catalog.
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

// List returns products ordered by id. An empty category or the catalog's
// "all" label yields the unfiltered listing.
func (r *Repository) List(ctx context.Context, category string) ([]entity.Product, error) {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.List", trace.WithAttributes(
		attribute.String("product.category", category),
	))
	defer span.End()

	products := make([]entity.Product, 0)
	q := r.reader.NewSelect().Model(&products)
	if category != "" && category != entity.CategoryAll {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("id ASC").Scan(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return products, nil
}

// Create persists a new catalog entry using the write connection.
func (r *Repository) Create(ctx context.Context, product *entity.Product) error {
	if product == nil {
		return errors.New("nil product")
	}
	ctx, span := repoTracer.Start(ctx, "ProductRepository.Create", trace.WithAttributes(
		attribute.String("product.name", product.Name),
	))
	defer span.End()

	_, err := r.writer.NewInsert().Model(product).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// Update rewrites the full field set of a product and refreshes its update
// timestamp, returning the stored row. ErrNotFound signals a missing id.
func (r *Repository) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if product == nil {
		return nil, errors.New("nil product")
	}
	ctx, span := repoTracer.Start(ctx, "ProductRepository.Update", trace.WithAttributes(
		attribute.Int64("product.id", product.ID),
	))
	defer span.End()

	res, err := r.writer.NewUpdate().
		Model((*entity.Product)(nil)).
		Set("name = ?", product.Name).
		Set("category = ?", product.Category).
		Set("price = ?", product.Price).
		Set("image = ?", product.Image).
		Set("description = ?", product.Description).
		Set("rating = ?", product.Rating).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", product.ID).
		Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if affected == 0 {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}

	stored := new(entity.Product)
	if err := r.writer.NewSelect().Model(stored).Where("id = ?", product.ID).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return stored, nil
}

// Touch refreshes the update timestamp of a product without removing the
// row. This is the storefront's "delete": rows are archived in place, and a
// touch on a nonexistent id is not an error.
func (r *Repository) Touch(ctx context.Context, id int64) error {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.Touch", trace.WithAttributes(
		attribute.Int64("product.id", id),
	))
	defer span.End()

	_, err := r.writer.NewUpdate().
		Model((*entity.Product)(nil)).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
	}
	return err
}
