package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents an authenticated user in the system.
// Number is the login identifier; (UserCode, Number) identifies the row for
// updates and deletes.
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Number   string `gorm:"type:varchar(50);uniqueIndex;not null" json:"number" validate:"required,max=50"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash
	UserCode string `gorm:"type:varchar(50);index;not null" json:"user_code" validate:"required,max=50"`
	Role     string `gorm:"type:varchar(50);not null" json:"role" validate:"required,max=50"`
}

func (User) TableName() string {
	return "users"
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ObjectID  uint      `json:"object_id"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	UserCode  string    `json:"user_code"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ObjectID:  u.ObjectID,
		Name:      u.Name,
		Number:    u.Number,
		UserCode:  u.UserCode,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
