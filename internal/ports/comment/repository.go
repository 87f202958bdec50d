package comment

import (
	"context"

	"yatube/internal/core/comment"

	"github.com/gofrs/uuid"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *comment.Comment) (*comment.Comment, error)
	// FindByPostID returns the post's comments oldest first, with User loaded.
	FindByPostID(ctx context.Context, postID uuid.UUID) ([]*comment.Comment, error)
	CountByPostID(ctx context.Context, postID uuid.UUID) (int64, error)
}
