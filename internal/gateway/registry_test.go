package gateway_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teleline/smsgate/internal/gateway"
)

type stubGateway struct {
	gateway.Base
	handle string
	name   string
}

func (g *stubGateway) Handle() string      { return g.handle }
func (g *stubGateway) DisplayName() string { return g.name }
func (g *stubGateway) Description() string { return "stub" }

func (g *stubGateway) Send(context.Context, gateway.SendRequest) gateway.SendResult {
	return gateway.SendResult{Success: true}
}

func TestRegistry_CreateKnownType(t *testing.T) {
	registry := gateway.NewRegistry()
	registry.Register("stub", func() gateway.Gateway {
		return &stubGateway{handle: "stub", name: "Stub"}
	})

	gw := registry.Create("stub")
	assert.NotNil(t, gw)
	assert.Equal(t, "stub", gw.Handle())
}

func TestRegistry_CreateUnknownTypeReturnsNil(t *testing.T) {
	registry := gateway.NewRegistry()
	assert.Nil(t, registry.Create("missing"))
}

func TestRegistry_TypesInRegistrationOrder(t *testing.T) {
	registry := gateway.NewRegistry()
	registry.Register("second", func() gateway.Gateway {
		return &stubGateway{handle: "second", name: "Second"}
	})
	registry.Register("first", func() gateway.Gateway {
		return &stubGateway{handle: "first", name: "First"}
	})

	types := registry.Types()
	assert.Equal(t, []gateway.TypeInfo{
		{Handle: "second", DisplayName: "Second"},
		{Handle: "first", DisplayName: "First"},
	}, types)
}

func TestRegistry_RegisterReplacesFactory(t *testing.T) {
	registry := gateway.NewRegistry()
	registry.Register("stub", func() gateway.Gateway {
		return &stubGateway{handle: "stub", name: "Old"}
	})
	registry.Register("stub", func() gateway.Gateway {
		return &stubGateway{handle: "stub", name: "New"}
	})

	assert.Equal(t, "New", registry.Create("stub").DisplayName())
	assert.Len(t, registry.Types(), 1)
}

func TestBase_Defaults(t *testing.T) {
	var base gateway.Base

	assert.False(t, base.SupportsConnectionTest())
	assert.True(t, base.TestConnection(context.Background(), nil))
	assert.Empty(t, base.ValidateSettings(nil))
}
