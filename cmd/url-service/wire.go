//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"go-shortlink/internal/config"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init url service application.
func wireApp(*config.Config, *zap.Logger) (*app, func(), error) {
	panic(wire.Build(ProviderSet))
}
