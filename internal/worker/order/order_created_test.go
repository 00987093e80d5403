package order

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sweetbakery/storefront/internal/config"
	"github.com/sweetbakery/storefront/internal/messaging"
	ordersvc "github.com/sweetbakery/storefront/internal/service/order"
)

func testConfig() config.Config {
	return config.Config{
		Messaging: config.Messaging{Kafka: config.Kafka{Topic: "storefront.orders"}},
	}
}

func TestOrderCreatedHandlerDecodesEvent(t *testing.T) {
	reg := NewOrderCreatedHandler(zap.NewNop(), testConfig())
	assert.Equal(t, "storefront.orders", reg.Topic)

	payload, err := json.Marshal(ordersvc.OrderCreatedEvent{
		ID:           7,
		CustomerName: "Анна",
		TotalAmount:  2500,
		Status:       "new",
		ItemCount:    1,
		CreatedAt:    time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	msg := messaging.Message{Topic: reg.Topic, Value: payload}
	assert.NoError(t, reg.Handler(context.Background(), msg))
}

func TestOrderCreatedHandlerRejectsGarbage(t *testing.T) {
	reg := NewOrderCreatedHandler(zap.NewNop(), testConfig())

	msg := messaging.Message{Topic: reg.Topic, Value: []byte("not json")}
	assert.Error(t, reg.Handler(context.Background(), msg))
}
