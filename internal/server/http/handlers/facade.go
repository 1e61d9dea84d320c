package handlers

import (
	"context"

	"github.com/polkiloo/userservice/internal/domain/model"
)

// UserFacade describes user directory capabilities required by handlers.
type UserFacade interface {
	Users(ctx context.Context, role model.Role) ([]model.User, error)
	ImportantUsers(ctx context.Context) ([]model.User, error)
	User(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, user model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// HealthFacade reports storage availability.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// Facade aggregates the full set of operations used across handlers.
type Facade interface {
	UserFacade
	HealthFacade
}
