package review

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/sweetbakery/storefront/internal/entity"
	repo "github.com/sweetbakery/storefront/internal/repository/review"
	"github.com/sweetbakery/storefront/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/sweetbakery/storefront/service/review")

// Service encapsulates business logic around reviews.
type Service struct {
	repo   *repo.Repository
	logger *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{repo: p.Repository, logger: p.Logger}
}

// List returns all reviews, newest first.
func (s *Service) List(ctx context.Context) ([]entity.Review, error) {
	ctx, span := serviceTracer.Start(ctx, "ReviewService.List")
	defer span.End()

	reviews, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list reviews", errorbank.WithCause(err))
	}
	return reviews, nil
}

// Create persists a new review.
func (s *Service) Create(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return errorbank.BadRequest("review payload is required")
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	ctx, span := serviceTracer.Start(ctx, "ReviewService.Create", trace.WithAttributes(
		attribute.String("review.author", review.Author),
	))
	defer span.End()

	if err := s.repo.Create(ctx, review); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to create review", errorbank.WithCause(err))
	}
	return nil
}
