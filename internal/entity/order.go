package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// StatusNew is the status assigned to every freshly created order.
const StatusNew = "new"

// Order represents a customer order stored in the relational database.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID              int64     `bun:",pk,autoincrement"`
	CustomerName    string    `bun:"customer_name"`
	CustomerPhone   string    `bun:"customer_phone"`
	CustomerEmail   string    `bun:"customer_email"`
	DeliveryType    string    `bun:"delivery_type"`
	DeliveryDate    time.Time `bun:"delivery_date,nullzero"`
	DeliveryTime    string    `bun:"delivery_time"`
	DeliveryAddress string    `bun:"delivery_address"`
	PaymentMethod   string    `bun:"payment_method"`
	CardComment     string    `bun:"card_comment"`
	TotalAmount     float64   `bun:"total_amount"`
	Status          string    `bun:"status"`
	CreatedAt       time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`

	Items []OrderItem `bun:"rel:has-many,join:id=order_id"`
}

// OrderItem is a denormalized line item; product name and unit price are
// snapshotted at order time so later catalog edits don't rewrite history.
type OrderItem struct {
	bun.BaseModel `bun:"table:order_items"`

	ID          int64   `bun:",pk,autoincrement"`
	OrderID     int64   `bun:"order_id"`
	ProductID   int64   `bun:"product_id"`
	ProductName string  `bun:"product_name"`
	Quantity    int     `bun:"quantity"`
	Price       float64 `bun:"price"`
}
