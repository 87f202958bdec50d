package database_test

import (
	"context"
	"testing"

	"yatube/internal/adapters/database"
	"yatube/internal/testsupport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineOnlyFollowedAuthors(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := database.NewTimelineRepositoryDatabase(db)
	ctx := context.Background()

	reader := testsupport.CreateUser(t, db, "")
	followed := testsupport.CreateUser(t, db, "")
	stranger := testsupport.CreateUser(t, db, "")
	testsupport.CreateFollow(t, db, reader, followed)

	older := testsupport.CreatePost(t, db, followed, nil, "older")
	testsupport.CreatePost(t, db, stranger, nil, "not for reader")
	testsupport.CreatePost(t, db, reader, nil, "own post")
	newer := testsupport.CreatePost(t, db, followed, nil, "newer")

	posts, err := repo.GetTimelineByUserID(ctx, reader.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)

	count, err := repo.CountByUserID(ctx, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTimelineEmptyWithoutFollows(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := database.NewTimelineRepositoryDatabase(db)
	ctx := context.Background()

	lonely := testsupport.CreateUser(t, db, "")
	author := testsupport.CreateUser(t, db, "")
	testsupport.CreatePost(t, db, author, nil, "")

	posts, err := repo.GetTimelineByUserID(ctx, lonely.ID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, posts)

	count, err := repo.CountByUserID(ctx, lonely.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
