package group

import (
	"errors"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("group not found")

// Group is reference data; it is seeded out-of-band and never edited by users.
type Group struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Slug        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}

func (g Group) String() string {
	return g.Title
}
