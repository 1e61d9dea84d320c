package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/domain/model"
	"github.com/polkiloo/userservice/internal/domain/repository"
)

// UserUseCase encapsulates user directory logic on top of a repository.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List returns users in insertion order, only those with role when it is set.
func (u *UserUseCase) List(ctx context.Context, role model.Role) ([]model.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if role == "" {
		return users, nil
	}
	return filter(users, func(usr model.User) bool { return usr.Role == role }), nil
}

// Privileged returns premium and admin users.
func (u *UserUseCase) Privileged(ctx context.Context) ([]model.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(users, func(usr model.User) bool { return usr.Role.Privileged() }), nil
}

// Get fetches user by identifier.
func (u *UserUseCase) Get(ctx context.Context, id int64) (*model.User, error) {
	return u.users.Get(ctx, id)
}

// Create validates and stores a new user. A zero ID lets the repository assign one.
func (u *UserUseCase) Create(ctx context.Context, user model.User) (*model.User, error) {
	user, err := NormalizeUser(user)
	if err != nil {
		return nil, err
	}
	return u.users.Create(ctx, user)
}

// Update replaces name and role of user id. The body ID must be zero or equal id.
func (u *UserUseCase) Update(ctx context.Context, id int64, user model.User) (*model.User, error) {
	if user.ID != 0 && user.ID != id {
		return nil, domainErrors.ErrIDMismatch
	}
	user.ID = id

	user, err := NormalizeUser(user)
	if err != nil {
		return nil, err
	}
	return u.users.Update(ctx, id, user)
}

// Delete removes user by identifier.
func (u *UserUseCase) Delete(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}

func filter(users []model.User, keep func(model.User) bool) []model.User {
	result := make([]model.User, 0, len(users))
	for _, usr := range users {
		if keep(usr) {
			result = append(result, usr)
		}
	}
	return result
}
