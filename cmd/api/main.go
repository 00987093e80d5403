package main

import (
	"go.uber.org/fx"

	"github.com/sweetbakery/storefront/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
