package product

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/sweetbakery/storefront/internal/cache"
	"github.com/sweetbakery/storefront/internal/config"
	"github.com/sweetbakery/storefront/internal/entity"
	repo "github.com/sweetbakery/storefront/internal/repository/product"
	"github.com/sweetbakery/storefront/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/sweetbakery/storefront/service/product")

// catalogCacheKey caches the unfiltered listing only; category-filtered
// queries always hit the database, so one key covers every write.
const catalogCacheKey = "products:catalog"

// Service encapsulates business logic around the product catalog.
type Service struct {
	repo     *repo.Repository
	cache    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Cache      cache.Store
	Config     config.Config
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:     p.Repository,
		cache:    p.Cache,
		cacheTTL: p.Config.Cache.DefaultTTL,
		logger:   p.Logger,
	}
}

// List returns products ordered by id, honoring the category filter. The
// empty string and the catalog's "all" label both mean no filter; that
// unfiltered listing is served from cache when possible.
func (s *Service) List(ctx context.Context, category string) ([]entity.Product, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.List", trace.WithAttributes(
		attribute.String("product.category", category),
	))
	defer span.End()

	unfiltered := category == "" || category == entity.CategoryAll
	if unfiltered {
		if products, err := s.getCachedCatalog(ctx); err == nil {
			return products, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			if s.logger != nil {
				s.logger.Warn("catalog cache read failed", zap.Error(err))
			}
		}
	}

	products, err := s.repo.List(ctx, category)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list products", errorbank.WithCause(err))
	}

	if unfiltered {
		if err := s.storeCachedCatalog(ctx, products); err != nil {
			if s.logger != nil {
				s.logger.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return products, nil
}

// Create persists a new catalog entry and invalidates the cached catalog.
func (s *Service) Create(ctx context.Context, product *entity.Product) error {
	if product == nil {
		return errorbank.BadRequest("product payload is required")
	}
	if product.CreatedAt.IsZero() {
		now := time.Now().UTC()
		product.CreatedAt = now
		product.UpdatedAt = now
	}
	ctx, span := serviceTracer.Start(ctx, "ProductService.Create", trace.WithAttributes(
		attribute.String("product.name", product.Name),
	))
	defer span.End()

	if err := s.repo.Create(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to create product", errorbank.WithCause(err))
	}

	s.invalidateCatalog(ctx)
	return nil
}

// Update rewrites a catalog entry and returns the stored row.
func (s *Service) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if product == nil {
		return nil, errorbank.BadRequest("product payload is required")
	}
	ctx, span := serviceTracer.Start(ctx, "ProductService.Update", trace.WithAttributes(
		attribute.Int64("product.id", product.ID),
	))
	defer span.End()

	stored, err := s.repo.Update(ctx, product)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("Product not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to update product", errorbank.WithCause(err))
	}

	s.invalidateCatalog(ctx)
	return stored, nil
}

// Delete archives a product in place: the row keeps all its data and only
// the update timestamp moves. Unknown ids are acknowledged silently, which
// matches the storefront's observed behavior.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Delete", trace.WithAttributes(
		attribute.Int64("product.id", id),
	))
	defer span.End()

	if err := s.repo.Touch(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to delete product", errorbank.WithCause(err))
	}

	s.invalidateCatalog(ctx)
	return nil
}

func (s *Service) getCachedCatalog(ctx context.Context) ([]entity.Product, error) {
	if s.cache == nil {
		return nil, cache.ErrCacheMiss
	}
	bytes, err := s.cache.Get(ctx, catalogCacheKey)
	if err != nil {
		return nil, err
	}
	var products []entity.Product
	if err := json.Unmarshal(bytes, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Service) storeCachedCatalog(ctx context.Context, products []entity.Product) error {
	if s.cache == nil {
		return nil
	}
	bytes, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, catalogCacheKey, bytes, s.cacheTTL)
}

func (s *Service) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, catalogCacheKey); err != nil {
		if s.logger != nil {
			s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
		}
	}
}
