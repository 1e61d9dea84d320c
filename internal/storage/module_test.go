package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/fx"

	"github.com/polkiloo/userservice/internal/config"
	"github.com/polkiloo/userservice/internal/domain/repository"
	"github.com/polkiloo/userservice/internal/storage/memory"
	"github.com/polkiloo/userservice/internal/storage/postgres"
	testhelpers "github.com/polkiloo/userservice/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewStorageDefaultsToMemory(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	s, err := newStorage(storageParams{
		Ctx:       context.Background(),
		Lifecycle: recorder,
		Config:    &config.Config{},
		Logger:    discardLogger(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.(*memory.Storage); !ok {
		t.Fatalf("expected memory storage, got %T", s)
	}
	if len(recorder.Hooks) != 0 {
		t.Fatalf("memory storage must not register hooks, got %d", len(recorder.Hooks))
	}
}

func TestNewStorageUsesPostgresWhenConfigured(t *testing.T) {
	t.Cleanup(func() { newPostgres = postgres.New })

	var gotDSN string
	newPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (*postgres.Storage, error) {
		gotDSN = dsn
		return &postgres.Storage{}, nil
	}

	recorder := &testhelpers.LifecycleRecorder{}
	s, err := newStorage(storageParams{
		Ctx:       context.Background(),
		Lifecycle: recorder,
		Config:    &config.Config{DatabaseURI: "postgres://stub"},
		Logger:    discardLogger(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotDSN != "postgres://stub" {
		t.Fatalf("unexpected dsn %q", gotDSN)
	}
	if _, ok := s.(*postgres.Storage); !ok {
		t.Fatalf("expected postgres storage, got %T", s)
	}
	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected close hook, got %d", len(recorder.Hooks))
	}
	if err := recorder.Stop(context.Background()); err != nil {
		t.Fatalf("on stop returned error: %v", err)
	}
}

func TestNewStoragePropagatesPostgresError(t *testing.T) {
	t.Cleanup(func() { newPostgres = postgres.New })
	newPostgres = func(context.Context, string, *slog.Logger) (*postgres.Storage, error) {
		return nil, errors.New("connect")
	}

	_, err := newStorage(storageParams{
		Ctx:       context.Background(),
		Lifecycle: &testhelpers.LifecycleRecorder{},
		Config:    &config.Config{DatabaseURI: "postgres://stub"},
		Logger:    discardLogger(),
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestModuleProvidesUserRepository(t *testing.T) {
	var repo repository.UserRepository
	app := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		fx.Supply(&config.Config{}),
		fx.Supply(discardLogger()),
		Module,
		fx.Populate(&repo),
	)
	if err := app.Err(); err != nil {
		t.Fatalf("fx app failed: %v", err)
	}
	if repo == nil {
		t.Fatal("expected repository to be populated")
	}
}
