package order

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sweetbakery/storefront/internal/dto"
	"github.com/sweetbakery/storefront/internal/entity"
	"github.com/sweetbakery/storefront/internal/presentation/http/response"
	service "github.com/sweetbakery/storefront/internal/service/order"
	"github.com/sweetbakery/storefront/internal/transport/http/middleware"
	"github.com/sweetbakery/storefront/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/sweetbakery/storefront/transport/http/order")

// Handler exposes order endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an order Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the order routes. The resource dispatches purely on
// method: GET lists, POST creates, PUT updates status, OPTIONS answers
// preflight, and everything else is rejected with 405.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/orders", middleware.CrossOrigin)
	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("", h.updateStatus)
	g.OPTIONS("", middleware.Preflight("GET, POST, PUT, OPTIONS", middleware.AllowHeadersAdmin))
	for _, method := range []string{http.MethodDelete, http.MethodPatch, http.MethodHead} {
		g.Add(method, "", middleware.MethodNotAllowed)
	}
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.list")
	defer span.End()

	orders, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.NewOrders(orders)).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.CreateOrderRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.Internal("invalid order payload", errorbank.WithCause(err))).Build()
	}

	// Missing required fields are a server-level failure here, not a
	// structured validation response; the storefront front-end always sends
	// the full set.
	if payload.CustomerName == "" || payload.CustomerPhone == "" ||
		payload.DeliveryType == "" || payload.DeliveryDate == "" ||
		payload.DeliveryTime == "" || payload.PaymentMethod == "" ||
		payload.TotalAmount == 0 {
		return b.WithError(errorbank.Internal("missing required order fields")).Build()
	}

	deliveryDate, err := time.Parse(dto.DateLayout, payload.DeliveryDate)
	if err != nil {
		return b.WithError(errorbank.Internal("invalid delivery date", errorbank.WithCause(err))).Build()
	}

	items := make([]entity.OrderItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, entity.OrderItem{
			ProductID:   item.ID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	order := &entity.Order{
		CustomerName:    payload.CustomerName,
		CustomerPhone:   payload.CustomerPhone,
		CustomerEmail:   payload.CustomerEmail,
		DeliveryType:    payload.DeliveryType,
		DeliveryDate:    deliveryDate,
		DeliveryTime:    payload.DeliveryTime,
		DeliveryAddress: payload.DeliveryAddress,
		PaymentMethod:   payload.PaymentMethod,
		CardComment:     payload.CardComment,
		TotalAmount:     payload.TotalAmount,
		Items:           items,
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.create", trace.WithAttributes(
		attribute.Int("order.items", len(items)),
	))
	defer span.End()

	if err := h.svc.Create(ctx, order); err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).
		WithData(dto.OrderCreatedResponse{OrderID: order.ID, Status: "created"}).
		Build()
}

func (h *Handler) updateStatus(c echo.Context) error {
	b := response.New(c)

	var payload dto.UpdateOrderStatusRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.Internal("invalid order payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.updateStatus", trace.WithAttributes(
		attribute.Int64("order.id", payload.ID),
	))
	defer span.End()

	order, err := h.svc.UpdateStatus(ctx, payload.ID, payload.Status)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.NewOrderRow(order)).Build()
}
