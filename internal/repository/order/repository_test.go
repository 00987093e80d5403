package order

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/sweetbakery/storefront/internal/database"
	"github.com/sweetbakery/storefront/internal/entity"
)

var orderColumns = []string{
	"id", "customer_name", "customer_phone", "customer_email",
	"delivery_type", "delivery_date", "delivery_time", "delivery_address",
	"payment_method", "card_comment", "total_amount", "status", "created_at",
}

var itemColumns = []string{"id", "order_id", "product_id", "product_name", "quantity", "price"}

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := bun.NewDB(sqlDB, pgdialect.New())
	return NewRepository(&database.Connections{Writer: db, Reader: db}), mock
}

func TestListAttachesItems(t *testing.T) {
	repo, mock := newMockRepo(t)

	created := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).WillReturnRows(
		sqlmock.NewRows(orderColumns).
			AddRow(2, "Мария", "+7 911 000-00-02", "", "pickup", created, "12:00-14:00", "", "cash", "", 1200.0, "new", created).
			AddRow(1, "Анна", "+7 911 000-00-01", "anna@example.com", "courier", created, "14:00-16:00", "Тверская 1", "card", "", 2500.0, "new", created),
	)
	mock.ExpectQuery(`SELECT (.+) FROM "order_items"`).WillReturnRows(
		sqlmock.NewRows(itemColumns).
			AddRow(10, 1, 3, "Торт Наполеон", 1, 2500.0),
	)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.NotNil(t, orders[0].Items)
	assert.Empty(t, orders[0].Items)
	require.Len(t, orders[1].Items, 1)
	assert.Equal(t, "Торт Наполеон", orders[1].Items[0].ProductName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRunsSingleTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	order := &entity.Order{
		CustomerName:  "Анна",
		CustomerPhone: "+7 911 000-00-01",
		DeliveryType:  "courier",
		DeliveryDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		DeliveryTime:  "14:00-16:00",
		PaymentMethod: "card",
		TotalAmount:   3100,
		Status:        entity.StatusNew,
		CreatedAt:     time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{ProductID: 3, ProductName: "Торт Наполеон", Quantity: 1, Price: 2500},
			{ProductID: 5, ProductName: "Эклер", Quantity: 2, Price: 300},
		},
	}

	require.NoError(t, repo.Create(context.Background(), order))
	assert.EqualValues(t, 7, order.ID)
	for _, item := range order.Items {
		assert.EqualValues(t, 7, item.OrderID)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackWhenItemsFail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	order := &entity.Order{
		CustomerName: "Анна",
		Status:       entity.StatusNew,
		CreatedAt:    time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{ProductID: 3, ProductName: "Торт Наполеон", Quantity: 1, Price: 2500},
		},
	}

	require.Error(t, repo.Create(context.Background(), order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "orders"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateStatus(context.Background(), 99, "done")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusReturnsStoredRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	created := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE "orders"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).WillReturnRows(
		sqlmock.NewRows(orderColumns).
			AddRow(5, "Анна", "+7 911 000-00-01", "", "courier", created, "14:00-16:00", "Тверская 1", "card", "", 2500.0, "done", created),
	)

	order, err := repo.UpdateStatus(context.Background(), 5, "done")
	require.NoError(t, err)
	assert.EqualValues(t, 5, order.ID)
	assert.Equal(t, "done", order.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}
