package http

import (
	"go.uber.org/fx"

	ordertransport "github.com/sweetbakery/storefront/internal/transport/http/order"
	producttransport "github.com/sweetbakery/storefront/internal/transport/http/product"
	reviewtransport "github.com/sweetbakery/storefront/internal/transport/http/review"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	ordertransport.Module,
	producttransport.Module,
	reviewtransport.Module,
)
