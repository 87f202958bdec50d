// Package testsupport builds throwaway databases and fixtures for tests.
package testsupport

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"yatube/internal/adapters/database"
	"yatube/internal/core/follower"
	"yatube/internal/core/group"
	"yatube/internal/core/post"
	"yatube/internal/core/user"

	"github.com/Pallinder/go-randomdata"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seq atomic.Int64

// NewDB returns a migrated in-memory SQLite database private to t.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every new connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateUser stores a user; an empty username gets a random one.
func CreateUser(t testing.TB, db *gorm.DB, username string) *user.User {
	t.Helper()
	if username == "" {
		username = fmt.Sprintf("%s%d", strings.ToLower(randomdata.SillyName()), seq.Add(1))
	}
	u := &user.User{
		Name:     randomdata.FirstName(randomdata.RandomGender),
		Family:   randomdata.LastName(),
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.WithContext(context.Background()).Create(u).Error)
	return u
}

func CreateGroup(t testing.TB, db *gorm.DB, slug, title string) *group.Group {
	t.Helper()
	g := &group.Group{Slug: slug, Title: title, Description: randomdata.Paragraph()}
	require.NoError(t, db.Create(g).Error)
	return g
}

// CreatePost stores a post. Each call gets a strictly later created_at so
// newest-first ordering is deterministic.
func CreatePost(t testing.TB, db *gorm.DB, author *user.User, g *group.Group, text string) *post.Post {
	t.Helper()
	if text == "" {
		text = randomdata.Paragraph()
	}
	p := &post.Post{
		Text:      text,
		UserID:    author.ID,
		CreatedAt: time.Now().Add(time.Duration(seq.Add(1)) * time.Millisecond),
	}
	if g != nil {
		p.GroupID = &g.ID
	}
	require.NoError(t, db.Omit("User", "Group").Create(p).Error)
	return p
}

func CreateFollow(t testing.TB, db *gorm.DB, u, author *user.User) *follower.Follow {
	t.Helper()
	f := &follower.Follow{UserID: u.ID, AuthorID: author.ID}
	require.NoError(t, db.Omit("User", "Author").Create(f).Error)
	return f
}

// CountRows counts rows of model matching query.
func CountRows(t testing.TB, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var count int64
	tx := db.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	require.NoError(t, tx.Count(&count).Error)
	return count
}

// SmallGIF is a valid 2x1 GIF image.
var SmallGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x02, 0x00,
	0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xFF, 0xFF, 0xFF, 0x21, 0xF9, 0x04, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x2C, 0x00, 0x00, 0x00, 0x00,
	0x02, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x0C,
	0x0A, 0x00, 0x3B,
}
