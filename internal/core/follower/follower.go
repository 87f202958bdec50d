package follower

import (
	"time"

	"yatube/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// Follow is a directed edge: UserID wants to see AuthorID's posts in their feed.
type Follow struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_follow_pair"`
	User      user.User `gorm:"foreignKey:UserID"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_follow_pair;index"`
	Author    user.User `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
