//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"context"

	"initerse/internal/config"

	"github.com/google/wire"
)

func InitializeRuntime(ctx context.Context, settings config.Settings) (*Runtime, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
