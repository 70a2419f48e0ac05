package Models

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name           string `gorm:"size:255;not null" json:"name"`
	Email          string `gorm:"size:255;not null;unique" json:"email"`
	HashedPassword string `gorm:"size:255;not null" json:"-"`
}

// HashPassword applies a randomized salt, so hashing the same password
// twice yields different strings.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

func (user *User) PrepareGive() {
	user.HashedPassword = ""
}

// SaveUser hashes the given password and inserts the user.
func (user *User) SaveUser(db *gorm.DB, password string) (*User, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = hashed
	user.Email = strings.TrimSpace(user.Email)

	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail returns nil when no user carries the email.
func GetUserByEmail(db *gorm.DB, email string) (*User, error) {
	var user User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUser(db *gorm.DB, id uint) (*User, error) {
	var user User
	err := db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUsers(db *gorm.DB) ([]User, error) {
	var users []User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	for index := range users {
		users[index].PrepareGive()
	}
	return users, nil
}

// LoginCheck verifies the password of the user carrying the email. An
// unknown email and a wrong password produce the same outcome.
func LoginCheck(db *gorm.DB, email, password string) (*User, error) {
	user, err := GetUserByEmail(db, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !VerifyPassword(password, user.HashedPassword) {
		return nil, errors.New("invalid email or password")
	}
	return user, nil
}
