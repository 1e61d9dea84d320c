package app

import (
	"context"

	"github.com/polkiloo/userservice/internal/domain/model"
	"github.com/polkiloo/userservice/internal/usecase"
)

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// UserFacade exposes user directory operations to the transport layer.
type UserFacade struct {
	users  *usecase.UserUseCase
	health HealthChecker
}

// NewUserFacade constructs UserFacade.
func NewUserFacade(users *usecase.UserUseCase, health HealthChecker) *UserFacade {
	return &UserFacade{users: users, health: health}
}

// Users lists users, optionally filtered by role.
func (f *UserFacade) Users(ctx context.Context, role model.Role) ([]model.User, error) {
	return f.users.List(ctx, role)
}

// ImportantUsers lists premium and admin users.
func (f *UserFacade) ImportantUsers(ctx context.Context) ([]model.User, error) {
	return f.users.Privileged(ctx)
}

// User returns a single user by id.
func (f *UserFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.users.Get(ctx, id)
}

// CreateUser validates and stores a new user.
func (f *UserFacade) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	return f.users.Create(ctx, user)
}

// UpdateUser replaces name and role of the user with id.
func (f *UserFacade) UpdateUser(ctx context.Context, id int64, user model.User) (*model.User, error) {
	return f.users.Update(ctx, id, user)
}

// DeleteUser removes the user with id.
func (f *UserFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.Delete(ctx, id)
}

// Health checks storage availability.
func (f *UserFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

// SeedDefaults loads the demo users, skipping ids already present.
func (f *UserFacade) SeedDefaults(ctx context.Context) (int, error) {
	return f.users.Seed(ctx, usecase.DefaultUsers)
}
