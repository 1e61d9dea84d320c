package memory

import (
	"context"
	"fmt"
	"math"
	"sync"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/domain/model"
	"github.com/polkiloo/userservice/internal/domain/repository"
)

// Storage keeps all records in process memory.
type Storage struct {
	users *userRepository
}

type userRepository struct {
	mu        sync.RWMutex
	users     []model.User
	nextID    int64
	exhausted bool
}

// New creates an empty in-memory storage.
func New() *Storage {
	return &Storage{users: newUserRepository()}
}

// Users returns the user repository owned by the storage.
func (s *Storage) Users() repository.UserRepository {
	return s.users
}

// NewUserRepository creates an empty standalone user repository.
func NewUserRepository() repository.UserRepository {
	return newUserRepository()
}

func newUserRepository() *userRepository {
	return &userRepository{nextID: 1}
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.User, len(r.users))
	copy(result, r.users)
	return result, nil
}

func (r *userRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, notFound(id)
	}
	u := r.users[idx]
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		if r.exhausted {
			return nil, fmt.Errorf("no user ids left to assign: %w", domainErrors.ErrConflict)
		}
		user.ID = r.nextID
	}
	if r.indexOf(user.ID) >= 0 {
		return nil, fmt.Errorf("user with ID %d: %w", user.ID, domainErrors.ErrConflict)
	}

	r.users = append(r.users, user)
	switch {
	case user.ID == math.MaxInt64:
		r.exhausted = true
	case user.ID >= r.nextID:
		r.nextID = user.ID + 1
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, user model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, notFound(id)
	}
	user.ID = id
	r.users[idx] = user
	return &user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.users[:0]
	for _, u := range r.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(r.users) {
		return notFound(id)
	}
	clear(r.users[len(kept):])
	r.users = kept
	return nil
}

// indexOf must be called with mu held.
func (r *userRepository) indexOf(id int64) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}

func notFound(id int64) error {
	return fmt.Errorf("user with ID %d: %w", id, domainErrors.ErrNotFound)
}

// HealthCheck always succeeds for process memory.
func (s *Storage) HealthCheck(context.Context) error {
	return nil
}
