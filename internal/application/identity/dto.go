package identity

import (
	"time"

	"github.com/wordnest/backend/internal/domain/identity"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	ChildName    string `json:"childName" binding:"required"`
	DateOfBirth  string `json:"dateOfBirth" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required,mobile"`
	Password     string `json:"password" binding:"required,min=6"`
}

// LoginInput carries the fields of a login request.
type LoginInput struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// AdminLoginInput carries the fixed admin credential pair.
type AdminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID           uint      `json:"id"`
	ChildName    string    `json:"childName"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	MobileNumber string    `json:"mobileNumber"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthResult couples a user view with its freshly issued token.
type AuthResult struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// AdminAuthResult is the admin login response.
type AdminAuthResult struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// ToUserResponse maps a user to its public view
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		ChildName:    user.ChildName,
		DateOfBirth:  user.DateOfBirth,
		MobileNumber: user.MobileNumber,
		CreatedAt:    user.CreatedAt,
	}
}
