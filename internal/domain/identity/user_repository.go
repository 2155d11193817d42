package identity

import "context"

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by its ID
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByMobileNumber finds a user by its unique mobile number
	FindByMobileNumber(ctx context.Context, mobileNumber string) (*User, error)

	// Exists reports whether a user row with the given ID exists
	Exists(ctx context.Context, id uint) (bool, error)

	// Create inserts a new user. Returns shared.ErrAlreadyExists when the
	// mobile number is already registered.
	Create(ctx context.Context, user *User) error
}
