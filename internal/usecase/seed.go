package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/domain/model"
)

// DefaultUsers is the demo data set loaded on start when seeding is enabled.
var DefaultUsers = []model.User{
	{ID: 1, Name: "Alice", Role: model.RolePremium},
	{ID: 2, Name: "Bob", Role: model.RoleFree},
	{ID: 3, Name: "Charlie", Role: model.RoleAdmin},
	{ID: 4, Name: "Diana", Role: model.RolePremium},
}

// Seed inserts users skipping those whose ID is already taken. Returns number of inserted users.
func (u *UserUseCase) Seed(ctx context.Context, users []model.User) (int, error) {
	inserted := 0
	for _, usr := range users {
		if _, err := u.Create(ctx, usr); err != nil {
			if errors.Is(err, domainErrors.ErrConflict) {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
