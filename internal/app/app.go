package app

import (
	"go.uber.org/fx"

	"github.com/sweetbakery/storefront/internal/cache"
	"github.com/sweetbakery/storefront/internal/config"
	"github.com/sweetbakery/storefront/internal/database"
	"github.com/sweetbakery/storefront/internal/logger"
	"github.com/sweetbakery/storefront/internal/messaging"
	"github.com/sweetbakery/storefront/internal/observability"
	repositoryorder "github.com/sweetbakery/storefront/internal/repository/order"
	repositoryproduct "github.com/sweetbakery/storefront/internal/repository/product"
	repositoryreview "github.com/sweetbakery/storefront/internal/repository/review"
	grpcserver "github.com/sweetbakery/storefront/internal/server/grpc"
	httpserver "github.com/sweetbakery/storefront/internal/server/http"
	serviceorder "github.com/sweetbakery/storefront/internal/service/order"
	serviceproduct "github.com/sweetbakery/storefront/internal/service/product"
	servicereview "github.com/sweetbakery/storefront/internal/service/review"
	transporthttp "github.com/sweetbakery/storefront/internal/transport/http"
	"github.com/sweetbakery/storefront/internal/worker"
	workerorder "github.com/sweetbakery/storefront/internal/worker/order"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	cache.Module,
	database.Module,
	logger.Module,
	messaging.Module,
	observability.Module,
	repositoryorder.Module,
	repositoryproduct.Module,
	repositoryreview.Module,
	serviceorder.Module,
	serviceproduct.Module,
	servicereview.Module,
)

// HTTP wires the HTTP transport and the ops gRPC server on top of the core
// modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	transporthttp.Module,
	grpcserver.Module,
)

// Worker exposes background worker processing.
var Worker = fx.Options(
	Core,
	worker.Module,
	workerorder.Module,
)

// Module is the default application wiring (HTTP only).
var Module = HTTP
