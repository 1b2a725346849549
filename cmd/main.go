package main

import (
	"os"

	"pricerelay/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Price Relay API
// @version 1.0
// @description Resolves FX, stablecoin, crypto and equity prices from public providers, plus weather, randomness and HMAC signing endpoints.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("application stopped")
		os.Exit(1)
	}
}
