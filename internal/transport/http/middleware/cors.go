package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetbakery/storefront/internal/presentation/http/response"
	"github.com/sweetbakery/storefront/pkg/errorbank"
)

// The storefront is called straight from the browser, so every resource
// answers with a permissive CORS policy.
const (
	AllowHeadersDefault = "Content-Type"
	AllowHeadersAdmin   = "Content-Type, X-Admin-Token"

	allowOrigin     = "*"
	preflightMaxAge = "86400"
)

// CrossOrigin stamps the allow-origin header on every response of a group.
func CrossOrigin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, allowOrigin)
		return next(c)
	}
}

// Preflight builds a handler answering CORS capability negotiation with an
// empty 200 and never touching the backend.
func Preflight(allowMethods, allowHeaders string) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowOrigin, allowOrigin)
		h.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
		h.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
		h.Set(echo.HeaderAccessControlMaxAge, preflightMaxAge)
		return c.NoContent(http.StatusOK)
	}
}

// MethodNotAllowed rejects an unsupported method with the storefront's fixed
// error body.
func MethodNotAllowed(c echo.Context) error {
	return response.New(c).WithError(errorbank.MethodNotAllowed("Method not allowed")).Build()
}
