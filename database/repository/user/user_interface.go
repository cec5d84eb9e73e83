package userRepo

import (
	"time"

	"bookit/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns (nil, nil)
	// when no such user exists.
	GetByEmail(email string) (*models.User, error)
	// GetByVerificationCode retrieves a user by a pending verification code.
	// Returns (nil, nil) when no such user exists.
	GetByVerificationCode(code string) (*models.User, error)
	// GetByResetToken retrieves a user by a pending password reset token.
	// Returns (nil, nil) when no such user exists.
	GetByResetToken(token string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateSetDocument applies a partial $set update to a user record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// PurgeExpiredUnverified deletes unverified accounts whose verification
	// code expired before the cutoff. Returns the number of accounts removed.
	PurgeExpiredUnverified(cutoff time.Time) (int64, error)
}
