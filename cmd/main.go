package main

import (
	"storefx/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Storefront Exchange Rates API
// @version 1.0
// @description Exchange-rate subsystem for the wholesale storefront: refreshes the USD/TRY rate from an external source and serves it to the catalog.

// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application terminated")
	}
}
