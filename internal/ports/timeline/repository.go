package timeline

import (
	"context"

	"yatube/internal/core/post"
	postPort "yatube/internal/ports/post"

	"github.com/gofrs/uuid"
)

// TimelineRepository reads the follow feed: posts by authors a user follows.
type TimelineRepository interface {
	GetTimelineByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*post.Post, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Feed is a follow-feed page. PostExists is false when the user follows nobody
// with posts, which the page renders as an empty state.
type Feed struct {
	postPort.Listing
	PostExists bool
}
