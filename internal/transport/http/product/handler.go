package product

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sweetbakery/storefront/internal/dto"
	"github.com/sweetbakery/storefront/internal/entity"
	"github.com/sweetbakery/storefront/internal/presentation/http/response"
	service "github.com/sweetbakery/storefront/internal/service/product"
	"github.com/sweetbakery/storefront/internal/transport/http/middleware"
	"github.com/sweetbakery/storefront/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/sweetbakery/storefront/transport/http/product")

// Handler exposes catalog endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a product Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the catalog routes.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/products", middleware.CrossOrigin)
	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("", h.update)
	g.DELETE("", h.delete)
	g.OPTIONS("", middleware.Preflight("GET, POST, PUT, DELETE, OPTIONS", middleware.AllowHeadersAdmin))
	for _, method := range []string{http.MethodPatch, http.MethodHead} {
		g.Add(method, "", middleware.MethodNotAllowed)
	}
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	category := c.QueryParam("category")

	ctx, span := httpTracer.Start(c.Request().Context(), "products.list", trace.WithAttributes(
		attribute.String("product.category", category),
	))
	defer span.End()

	products, err := h.svc.List(ctx, category)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.NewProducts(products)).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	payload, err := bindProduct(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	product := payloadEntity(payload)

	ctx, span := httpTracer.Start(c.Request().Context(), "products.create", trace.WithAttributes(
		attribute.String("product.name", product.Name),
	))
	defer span.End()

	if err := h.svc.Create(ctx, product); err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(dto.NewProduct(product)).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)

	payload, err := bindProduct(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	product := payloadEntity(payload)

	ctx, span := httpTracer.Start(c.Request().Context(), "products.update", trace.WithAttributes(
		attribute.Int64("product.id", product.ID),
	))
	defer span.End()

	// An id that matches nothing (including the zero id of an omitted field)
	// surfaces as the not-found response from the service.
	stored, err := h.svc.Update(ctx, product)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.NewProduct(stored)).Build()
}

func (h *Handler) delete(c echo.Context) error {
	b := response.New(c)

	rawID := c.QueryParam("id")
	if rawID == "" {
		return b.WithError(errorbank.BadRequest("Product ID required")).Build()
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return b.WithError(errorbank.Internal("invalid product id", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "products.delete", trace.WithAttributes(
		attribute.Int64("product.id", id),
	))
	defer span.End()

	if err := h.svc.Delete(ctx, id); err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.DeleteProductResponse{Success: true}).Build()
}

func bindProduct(c echo.Context) (dto.ProductRequest, error) {
	var payload dto.ProductRequest
	if err := c.Bind(&payload); err != nil {
		return payload, errorbank.Internal("invalid product payload", errorbank.WithCause(err))
	}
	if payload.Name == "" || payload.Category == "" || payload.Price == 0 || payload.Image == "" {
		return payload, errorbank.Internal("missing required product fields")
	}
	return payload, nil
}

func payloadEntity(payload dto.ProductRequest) *entity.Product {
	return &entity.Product{
		ID:          payload.ID,
		Name:        payload.Name,
		Category:    payload.Category,
		Price:       payload.Price,
		Image:       payload.Image,
		Description: payload.Description,
		Rating:      payload.RatingOrDefault(),
	}
}
