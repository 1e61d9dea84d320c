package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/userservice/internal/app"
	"github.com/polkiloo/userservice/internal/config"
	"github.com/polkiloo/userservice/internal/logger"
	"github.com/polkiloo/userservice/internal/server/http/handlers"
	"github.com/polkiloo/userservice/internal/server/http/router"
	"github.com/polkiloo/userservice/internal/storage"
	"github.com/polkiloo/userservice/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(s storage.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.UserFacade) handlers.Facade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
