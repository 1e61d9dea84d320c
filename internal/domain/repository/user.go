package repository

import (
	"context"

	"github.com/polkiloo/userservice/internal/domain/model"
)

// UserRepository describes storage operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	// Create stores user. A zero ID asks the repository to assign one.
	Create(ctx context.Context, user model.User) (*model.User, error)
	Update(ctx context.Context, id int64, user model.User) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}
