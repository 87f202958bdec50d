package timelineapp_test

import (
	"context"
	"testing"

	"yatube/internal/adapters/database"
	timelineapp "yatube/internal/core/timeline/service"
	"yatube/internal/testsupport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedShowsFollowedAuthorsOnly(t *testing.T) {
	db := testsupport.NewDB(t)
	svc := timelineapp.NewTimelineService(database.NewTimelineRepositoryDatabase(db))
	ctx := context.Background()

	follower := testsupport.CreateUser(t, db, "follower")
	author := testsupport.CreateUser(t, db, "author")
	bystander := testsupport.CreateUser(t, db, "user")
	p := testsupport.CreatePost(t, db, author, nil, "Текст автора")
	testsupport.CreateFollow(t, db, follower, author)

	feed, err := svc.GetTimelineByUserID(ctx, follower.ID, "")
	require.NoError(t, err)
	assert.True(t, feed.PostExists)
	require.Len(t, feed.Posts, 1)
	assert.Equal(t, p.ID, feed.Posts[0].ID)

	empty, err := svc.GetTimelineByUserID(ctx, bystander.ID, "")
	require.NoError(t, err)
	assert.False(t, empty.PostExists)
	assert.Empty(t, empty.Posts)
	assert.Equal(t, 1, empty.Page.NumPages)
}

func TestFeedPaginates(t *testing.T) {
	db := testsupport.NewDB(t)
	svc := timelineapp.NewTimelineService(database.NewTimelineRepositoryDatabase(db))
	ctx := context.Background()

	reader := testsupport.CreateUser(t, db, "")
	author := testsupport.CreateUser(t, db, "")
	testsupport.CreateFollow(t, db, reader, author)
	for i := 0; i < 14; i++ {
		testsupport.CreatePost(t, db, author, nil, "")
	}

	second, err := svc.GetTimelineByUserID(ctx, reader.ID, "2")
	require.NoError(t, err)
	assert.Len(t, second.Posts, 4)
	assert.True(t, second.Page.HasPrevious())
}
