package test

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/domain/model"
)

// UserRepositoryStub stores users in a slice for tests.
type UserRepositoryStub struct {
	Users   []model.User
	Created []model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository holding the given users.
func NewUserRepositoryStub(users ...model.User) *UserRepositoryStub {
	s := &UserRepositoryStub{Next: 1}
	for _, u := range users {
		s.Users = append(s.Users, u)
		if u.ID >= s.Next {
			s.Next = u.ID + 1
		}
	}
	return s
}

// List returns a copy of stored users.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.User(nil), s.Users...), nil
}

// Get fetches user by identifier or returns not found.
func (s *UserRepositoryStub) Get(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if i := s.index(id); i >= 0 {
		u := s.Users[i]
		return &u, nil
	}
	return nil, notFound(id)
}

// Create stores user unless the id is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	if user.ID == 0 {
		user.ID = s.Next
	}
	if s.index(user.ID) >= 0 {
		return nil, fmt.Errorf("user with ID %d: %w", user.ID, domainErrors.ErrConflict)
	}
	if user.ID >= s.Next {
		s.Next = user.ID + 1
	}
	s.Users = append(s.Users, user)
	s.Created = append(s.Created, user)
	return &user, nil
}

// Update replaces stored user in place.
func (s *UserRepositoryStub) Update(ctx context.Context, id int64, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	i := s.index(id)
	if i < 0 {
		return nil, notFound(id)
	}
	user.ID = id
	s.Users[i] = user
	return &user, nil
}

// Delete removes user or returns not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	i := s.index(id)
	if i < 0 {
		return notFound(id)
	}
	s.Users = append(s.Users[:i], s.Users[i+1:]...)
	return nil
}

func (s *UserRepositoryStub) index(id int64) int {
	for i, u := range s.Users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func notFound(id int64) error {
	return fmt.Errorf("user with ID %d: %w", id, domainErrors.ErrNotFound)
}
