package identity

import (
	"time"

	"github.com/wordnest/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 10

// User represents a registered child account. The global admin is not a User;
// it authenticates through a fixed credential pair and never appears in this
// table.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ChildName    string    `gorm:"size:100;not null" json:"childName"`
	DateOfBirth  time.Time `gorm:"not null" json:"dateOfBirth"`
	MobileNumber string    `gorm:"size:20;not null;uniqueIndex" json:"mobileNumber"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a hashed password.
func NewUser(childName string, dateOfBirth time.Time, mobileNumber, password string) (*User, error) {
	if childName == "" || mobileNumber == "" || password == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "childName, mobileNumber and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return &User{
		ChildName:    childName,
		DateOfBirth:  dateOfBirth,
		MobileNumber: mobileNumber,
		PasswordHash: string(hash),
	}, nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
