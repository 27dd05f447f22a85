package models

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an account holder. All other resources are scoped to a user.
type User struct {
	DefaultModel
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	return nil
}

// SetPassword replaces the stored password hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies the password against the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// UserByEmail looks a user up by their email address. The address is
// normalized the same way BeforeSave normalizes it on write.
func UserByEmail(db *gorm.DB, email string) (User, error) {
	var user User
	err := db.Where(&User{Email: strings.ToLower(strings.TrimSpace(email))}).First(&user).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}
