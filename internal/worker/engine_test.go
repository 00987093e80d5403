package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/sweetbakery/storefront/internal/config"
	"github.com/sweetbakery/storefront/internal/messaging"
)

func TestNewEngineSkipsInvalidRegistrations(t *testing.T) {
	noop := func(context.Context, messaging.Message) error { return nil }

	engine := NewEngine(Params{
		Client: messaging.NoopClient{},
		Logger: zap.NewNop(),
		Config: config.Config{},
		Registrations: []HandlerRegistration{
			{Topic: "", Handler: noop},
			{Topic: "storefront.orders", Handler: nil},
			{Topic: "storefront.orders", Handler: noop},
		},
	})

	assert.Len(t, engine.registrations, 1)
}

func TestStartIsNoopWhenWorkersDisabled(t *testing.T) {
	engine := NewEngine(Params{
		Client: messaging.NoopClient{},
		Logger: zap.NewNop(),
		Config: config.Config{},
	})

	assert.NoError(t, engine.start(context.Background()))
	assert.NoError(t, engine.stop(context.Background()))
}
