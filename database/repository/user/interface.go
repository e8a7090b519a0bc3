package userRepo

import (
	"errors"
	"time"

	"edspire/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// UpdateWalletBalance writes the synced balance and timestamp onto the
	// user's own record, keyed strictly by user id.
	UpdateWalletBalance(id string, balance float64, syncedAt time.Time) error
	// IncrementTokenBalance atomically credits purchased tokens.
	IncrementTokenBalance(id string, delta float64) error
	// SetTokenHash stores (or clears) the hash of the active auth token.
	SetTokenHash(id, tokenHash string) error
}
