package follower

import (
	"context"

	"yatube/internal/core/follower"

	"github.com/gofrs/uuid"
)

// FollowerRepository stores follow edges.
type FollowerRepository interface {
	Create(ctx context.Context, follow *follower.Follow) (*follower.Follow, error)
	Delete(ctx context.Context, userID, authorID uuid.UUID) error
	Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowers(ctx context.Context, authorID uuid.UUID) (int64, error)
}

// FollowStats is shown on the profile page.
type FollowStats struct {
	Following int64
	Followers int64
}
