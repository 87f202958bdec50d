package post

import (
	"errors"
	"time"

	"yatube/internal/core/group"
	"yatube/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("post not found")
	ErrEmptyText = errors.New("post text is empty")
	ErrForbidden = errors.New("only the author can edit a post")
)

// titleLength is how much of the text String shows.
const titleLength = 15

type Post struct {
	ID        uuid.UUID    `gorm:"primary_key;type:char(36)"`
	Text      string       `gorm:"type:text;not null"`
	UserID    uuid.UUID    `gorm:"type:char(36);not null;index"`
	User      user.User    `gorm:"foreignKey:UserID"`
	GroupID   *uuid.UUID   `gorm:"type:char(36);index"`
	Group     *group.Group `gorm:"foreignKey:GroupID"`
	Image     string       `gorm:"type:varchar(255)"`
	CreatedAt time.Time    `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}

func (p Post) String() string {
	runes := []rune(p.Text)
	if len(runes) > titleLength {
		return string(runes[:titleLength])
	}
	return p.Text
}
