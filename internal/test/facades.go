package test

import (
	"context"

	"github.com/polkiloo/userservice/internal/domain/model"
)

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	UsersFn     func(context.Context, model.Role) ([]model.User, error)
	ImportantFn func(context.Context) ([]model.User, error)
	UserFn      func(context.Context, int64) (*model.User, error)
	CreateFn    func(context.Context, model.User) (*model.User, error)
	UpdateFn    func(context.Context, int64, model.User) (*model.User, error)
	DeleteFn    func(context.Context, int64) error
	HealthFn    func(context.Context) error
}

// Users returns configured users or a single default record.
func (s UserFacadeStub) Users(ctx context.Context, role model.Role) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, role)
	}
	return []model.User{{ID: 1, Name: "Alice", Role: model.RolePremium}}, nil
}

// ImportantUsers returns configured privileged users.
func (s UserFacadeStub) ImportantUsers(ctx context.Context) ([]model.User, error) {
	if s.ImportantFn != nil {
		return s.ImportantFn(ctx)
	}
	return []model.User{{ID: 1, Name: "Alice", Role: model.RolePremium}}, nil
}

// User returns user with the requested id.
func (s UserFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Name: "Alice", Role: model.RolePremium}, nil
}

// CreateUser echoes the supplied user.
func (s UserFacadeStub) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, user)
	}
	return &user, nil
}

// UpdateUser echoes the supplied user under id.
func (s UserFacadeStub) UpdateUser(ctx context.Context, id int64, user model.User) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, user)
	}
	user.ID = id
	return &user, nil
}

// DeleteUser executes configured handler.
func (s UserFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// Health reports configured storage health.
func (s UserFacadeStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

// HealthCheckerStub reports a fixed health result.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
