package followerapp_test

import (
	"context"
	"testing"

	"yatube/internal/adapters/database"
	followerEntity "yatube/internal/core/follower"
	followerapp "yatube/internal/core/follower/service"
	"yatube/internal/ports/events"
	"yatube/internal/testsupport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowIsIdempotent(t *testing.T) {
	db := testsupport.NewDB(t)
	svc := followerapp.NewFollowerService(database.NewFollowerRepositoryDatabase(db), events.NopPublisher{})
	ctx := context.Background()
	reader := testsupport.CreateUser(t, db, "")
	author := testsupport.CreateUser(t, db, "")

	created, err := svc.FollowUser(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.FollowUser(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, int64(1), testsupport.CountRows(t, db, &followerEntity.Follow{}, ""))

	following, err := svc.IsFollowing(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestFollowSelfIsNoop(t *testing.T) {
	db := testsupport.NewDB(t)
	svc := followerapp.NewFollowerService(database.NewFollowerRepositoryDatabase(db), events.NopPublisher{})
	ctx := context.Background()
	me := testsupport.CreateUser(t, db, "")

	created, err := svc.FollowUser(ctx, me.ID, me.ID)
	require.NoError(t, err)
	assert.False(t, created)

	removed, err := svc.UnfollowUser(ctx, me.ID, me.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	assert.Zero(t, testsupport.CountRows(t, db, &followerEntity.Follow{}, ""))
}

func TestUnfollow(t *testing.T) {
	db := testsupport.NewDB(t)
	svc := followerapp.NewFollowerService(database.NewFollowerRepositoryDatabase(db), events.NopPublisher{})
	ctx := context.Background()
	reader := testsupport.CreateUser(t, db, "")
	author := testsupport.CreateUser(t, db, "")

	removed, err := svc.UnfollowUser(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	testsupport.CreateFollow(t, db, reader, author)
	removed, err = svc.UnfollowUser(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	assert.Zero(t, testsupport.CountRows(t, db, &followerEntity.Follow{}, ""))
}

func TestStats(t *testing.T) {
	db := testsupport.NewDB(t)
	svc := followerapp.NewFollowerService(database.NewFollowerRepositoryDatabase(db), events.NopPublisher{})
	a := testsupport.CreateUser(t, db, "")
	b := testsupport.CreateUser(t, db, "")
	c := testsupport.CreateUser(t, db, "")
	testsupport.CreateFollow(t, db, b, a)
	testsupport.CreateFollow(t, db, c, a)
	testsupport.CreateFollow(t, db, a, c)

	stats, err := svc.Stats(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Following)
	assert.Equal(t, int64(2), stats.Followers)
}
