package user

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username or email already taken")
	ErrInvalidLogin  = errors.New("invalid credentials")
)

type User struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Name      string    `gorm:"type:varchar(150)"`
	Family    string    `gorm:"type:varchar(150)"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(254)"`
	Password  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}

func (u User) String() string {
	return u.Username
}

// FullName falls back to the username when no name was given at signup.
func (u User) FullName() string {
	switch {
	case u.Name != "" && u.Family != "":
		return u.Name + " " + u.Family
	case u.Name != "":
		return u.Name
	default:
		return u.Username
	}
}
