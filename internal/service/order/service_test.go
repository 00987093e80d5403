package order

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.uber.org/zap"

	"github.com/sweetbakery/storefront/internal/config"
	"github.com/sweetbakery/storefront/internal/database"
	"github.com/sweetbakery/storefront/internal/entity"
	"github.com/sweetbakery/storefront/internal/messaging"
	repo "github.com/sweetbakery/storefront/internal/repository/order"
	"github.com/sweetbakery/storefront/pkg/errorbank"
)

type capturingPublisher struct {
	keys   []string
	values [][]byte
}

func (p *capturingPublisher) Publish(_ context.Context, key, value []byte) error {
	p.keys = append(p.keys, string(key))
	p.values = append(p.values, value)
	return nil
}

func (p *capturingPublisher) Consume(ctx context.Context, _ messaging.Handler) error {
	<-ctx.Done()
	return ctx.Err()
}

func (p *capturingPublisher) Topic() string { return "storefront.orders" }

func newTestService(t *testing.T, publisher messaging.Client) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := bun.NewDB(sqlDB, pgdialect.New())
	cfg := config.Config{
		Messaging: config.Messaging{
			Enabled: publisher != nil,
			Kafka:   config.Kafka{Topic: "storefront.orders"},
		},
	}
	svc := NewService(Params{
		Repository: repo.NewRepository(&database.Connections{Writer: db, Reader: db}),
		Config:     cfg,
		Logger:     zap.NewNop(),
		Publisher:  publisher,
	})
	return svc, mock
}

func TestCreateForcesNewStatusAndPublishes(t *testing.T) {
	publisher := &capturingPublisher{}
	svc, mock := newTestService(t, publisher)

	mock.ExpectBegin()
	// Whatever the caller claims, the stored status is "new".
	mock.ExpectQuery(`INSERT INTO "orders"(.+)'new'`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	order := &entity.Order{
		CustomerName:  "Анна",
		CustomerPhone: "+7 911 000-00-01",
		TotalAmount:   2500,
		Status:        "shipped",
		CreatedAt:     time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.Create(context.Background(), order))
	assert.Equal(t, entity.StatusNew, order.Status)

	require.Len(t, publisher.keys, 1)
	assert.Equal(t, "order-5", publisher.keys[0])

	var event OrderCreatedEvent
	require.NoError(t, json.Unmarshal(publisher.values[0], &event))
	assert.EqualValues(t, 5, event.ID)
	assert.Equal(t, "Анна", event.CustomerName)
	assert.Equal(t, entity.StatusNew, event.Status)
	assert.Equal(t, 0, event.ItemCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSkipsPublishWhenMessagingDisabled(t *testing.T) {
	svc, mock := newTestService(t, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))
	mock.ExpectCommit()

	order := &entity.Order{
		CustomerName: "Анна",
		TotalAmount:  1200,
		CreatedAt:    time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.Create(context.Background(), order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusMapsMissingOrder(t *testing.T) {
	svc, mock := newTestService(t, nil)

	mock.ExpectExec(`UPDATE "orders"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := svc.UpdateStatus(context.Background(), 99, "done")
	require.Error(t, err)

	appErr := errorbank.From(err)
	assert.Equal(t, errorbank.KindNotFound, appErr.Kind())
	assert.Equal(t, "Order not found", appErr.Message())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWrapsRepositoryFailure(t *testing.T) {
	svc, mock := newTestService(t, nil)

	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).WillReturnError(assert.AnError)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, errorbank.KindInternal, errorbank.From(err).Kind())
	assert.NoError(t, mock.ExpectationsWereMet())
}
