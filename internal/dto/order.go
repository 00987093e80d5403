package dto

import (
	"time"

	"github.com/sweetbakery/storefront/internal/entity"
)

// DateLayout is the wire format for delivery dates.
const DateLayout = "2006-01-02"

// CreateOrderRequest mirrors the storefront checkout payload.
type CreateOrderRequest struct {
	CustomerName    string            `json:"customerName"`
	CustomerPhone   string            `json:"customerPhone"`
	CustomerEmail   string            `json:"customerEmail"`
	DeliveryType    string            `json:"deliveryType"`
	DeliveryDate    string            `json:"deliveryDate"`
	DeliveryTime    string            `json:"deliveryTime"`
	DeliveryAddress string            `json:"deliveryAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
	CardComment     string            `json:"cardComment"`
	TotalAmount     float64           `json:"totalAmount"`
	Items           []CreateOrderItem `json:"items"`
}

// CreateOrderItem is one line of the checkout cart.
type CreateOrderItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// UpdateOrderStatusRequest changes the status of an existing order.
type UpdateOrderStatusRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// OrderCreatedResponse confirms order creation.
type OrderCreatedResponse struct {
	OrderID int64  `json:"orderId"`
	Status  string `json:"status"`
}

// OrderItemResponse serializes one persisted line item.
type OrderItemResponse struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderRowResponse serializes an order row without its line items, as
// returned by status updates.
type OrderRowResponse struct {
	ID              int64   `json:"id"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerEmail   string  `json:"customer_email"`
	DeliveryType    string  `json:"delivery_type"`
	DeliveryDate    *string `json:"delivery_date"`
	DeliveryTime    string  `json:"delivery_time"`
	DeliveryAddress string  `json:"delivery_address"`
	PaymentMethod   string  `json:"payment_method"`
	CardComment     string  `json:"card_comment"`
	TotalAmount     float64 `json:"total_amount"`
	Status          string  `json:"status"`
	CreatedAt       *string `json:"created_at"`
}

// OrderResponse is an order row plus its line items. Items is never nil, so
// an order without items renders as an empty array rather than null.
type OrderResponse struct {
	OrderRowResponse
	Items []OrderItemResponse `json:"items"`
}

// NewOrderRow maps an order entity onto its row representation.
func NewOrderRow(order *entity.Order) OrderRowResponse {
	return OrderRowResponse{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerEmail:   order.CustomerEmail,
		DeliveryType:    order.DeliveryType,
		DeliveryDate:    formatDate(order.DeliveryDate),
		DeliveryTime:    order.DeliveryTime,
		DeliveryAddress: order.DeliveryAddress,
		PaymentMethod:   order.PaymentMethod,
		CardComment:     order.CardComment,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		CreatedAt:       formatTime(order.CreatedAt),
	}
}

// NewOrder maps an order entity, including line items, onto its full
// representation.
func NewOrder(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return OrderResponse{
		OrderRowResponse: NewOrderRow(order),
		Items:            items,
	}
}

// NewOrders maps a slice of orders, preserving order.
func NewOrders(orders []entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrder(&orders[i]))
	}
	return out
}

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func formatDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
