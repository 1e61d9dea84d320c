package usecase

import (
	"strings"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/domain/model"
)

// NormalizeUser trims textual fields and rejects records without a name or with a negative ID.
func NormalizeUser(user model.User) (model.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Role = model.Role(strings.TrimSpace(string(user.Role)))

	if user.Name == "" || user.ID < 0 {
		return model.User{}, domainErrors.ErrInvalidUser
	}
	return user, nil
}
