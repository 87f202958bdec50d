package comment

import (
	"errors"
	"time"

	"yatube/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var ErrEmptyText = errors.New("comment text is empty")

type Comment struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Text      string    `gorm:"type:text;not null"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	UserID    uuid.UUID `gorm:"type:char(36);not null"`
	User      user.User `gorm:"foreignKey:UserID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
