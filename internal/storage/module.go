package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/userservice/internal/config"
	"github.com/polkiloo/userservice/internal/domain/repository"
	"github.com/polkiloo/userservice/internal/storage/memory"
	"github.com/polkiloo/userservice/internal/storage/postgres"
)

// Storage is a repository factory that can report its own health.
type Storage interface {
	repository.Factory
	HealthCheck(ctx context.Context) error
}

// Module selects the storage backend and exposes its repositories.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(func(s Storage) repository.UserRepository { return s.Users() }),
)

type storageParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

var newPostgres = postgres.New

func newStorage(p storageParams) (Storage, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using in-memory storage")
		return memory.New(), nil
	}

	pg, err := newPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			pg.Close()
			return nil
		},
	})
	return pg, nil
}
