package review

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sweetbakery/storefront/internal/dto"
	"github.com/sweetbakery/storefront/internal/entity"
	"github.com/sweetbakery/storefront/internal/presentation/http/response"
	service "github.com/sweetbakery/storefront/internal/service/review"
	"github.com/sweetbakery/storefront/internal/transport/http/middleware"
	"github.com/sweetbakery/storefront/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/sweetbakery/storefront/transport/http/review")

// Handler exposes review endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a review Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the review routes.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/reviews", middleware.CrossOrigin)
	g.GET("", h.list)
	g.POST("", h.create)
	g.OPTIONS("", middleware.Preflight("GET, POST, OPTIONS", middleware.AllowHeadersDefault))
	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodHead} {
		g.Add(method, "", middleware.MethodNotAllowed)
	}
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "reviews.list")
	defer span.End()

	reviews, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.NewReviews(reviews)).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.CreateReviewRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.Internal("invalid review payload", errorbank.WithCause(err))).Build()
	}
	if payload.Author == "" || payload.Text == "" || payload.Rating == 0 {
		return b.WithError(errorbank.Internal("missing required review fields")).Build()
	}

	review := &entity.Review{
		Author: payload.Author,
		Rating: payload.Rating,
		Text:   payload.Text,
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "reviews.create", trace.WithAttributes(
		attribute.String("review.author", review.Author),
	))
	defer span.End()

	if err := h.svc.Create(ctx, review); err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(dto.NewReview(review)).Build()
}
