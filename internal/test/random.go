package test

import (
	"math/rand"
	"sync"
	"time"

	"github.com/polkiloo/userservice/internal/domain/model"
)

const nameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var roles = []model.Role{model.RoleFree, model.RolePremium, model.RoleAdmin}

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string with a length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	minLen = max(minLen, 1)
	maxLen = max(maxLen, minLen)

	rngMu.Lock()
	defer rngMu.Unlock()

	buf := make([]byte, minLen+rng.Intn(maxLen-minLen+1))
	for i := range buf {
		buf[i] = nameAlphabet[rng.Intn(len(nameAlphabet))]
	}
	return string(buf)
}

// RandomUser builds a user with the given id, a random name and a random role.
func RandomUser(id int64) model.User {
	name := RandomASCIIString(3, 24)

	rngMu.Lock()
	role := roles[rng.Intn(len(roles))]
	rngMu.Unlock()

	return model.User{ID: id, Name: name, Role: role}
}
