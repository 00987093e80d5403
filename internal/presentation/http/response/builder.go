package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetbakery/storefront/pkg/errorbank"
)

// Builder helps construct consistent HTTP responses. The storefront wire
// contract is raw payloads: success responses are the row (or row array)
// itself, and failures are {"error": "<message>"} with the kind's status.
type Builder struct {
	ctx    echo.Context
	status int
	data   any
	err    error
}

// ErrorBody is the JSON shape of every failure response.
type ErrorBody struct {
	Error string `json:"error"`
}

// New instantiates a Builder for the provided request context.
func New(ctx echo.Context) *Builder {
	return &Builder{ctx: ctx, status: http.StatusOK}
}

// WithStatus overrides the response status code.
func (b *Builder) WithStatus(status int) *Builder {
	if status > 0 {
		b.status = status
	}
	return b
}

// WithData attaches the success payload, emitted as-is.
func (b *Builder) WithData(data any) *Builder {
	b.data = data
	return b
}

// WithError records an error to be rendered.
func (b *Builder) WithError(err error) *Builder {
	b.err = err
	return b
}

// Build finalises and emits the HTTP response.
func (b *Builder) Build() error {
	if b.err != nil {
		return b.buildError()
	}
	return b.buildSuccess()
}

func (b *Builder) buildSuccess() error {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.ctx.JSON(b.status, b.data)
}

func (b *Builder) buildError() error {
	appErr := errorbank.From(b.err)
	status := b.status
	if status < http.StatusBadRequest {
		status = appErr.StatusCode()
	}
	return b.ctx.JSON(status, ErrorBody{Error: appErr.Message()})
}
