package store

import "github.com/unify-app/unify/internal/models"

type Store interface {
	// User operations. Conversations and messages have schema but no
	// operations: nothing in the API touches them yet.
	CreateUser(username, passwordHash string) (int, error)
	GetUserByUsername(username string) (*models.User, error)
	UsernameExists(username string) (bool, error)
}
