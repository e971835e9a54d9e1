//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"acsd/internal"
	"acsd/internal/controllers"
	"acsd/internal/persistence"
	"acsd/internal/providers"
	"acsd/internal/services"
	"acsd/internal/storage"
	"acsd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewMemoryStore,
		persistence.NewZstdCompressor,
		persistence.NewFileManager,
		persistence.NewPageArchiver,
		persistence.NewScheduler,

		services.NewStaticVerifier,
		services.NewActivityService,
		services.NewAuthService,
		services.NewPageService,

		controllers.NewApiController,
		controllers.NewAuthController,
		controllers.NewPageController,
		controllers.NewHealthController,

		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
