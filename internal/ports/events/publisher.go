package events

import "context"

const (
	SubjectPostCreated    = "yatube.posts.created"
	SubjectCommentCreated = "yatube.comments.created"
	SubjectFollowCreated  = "yatube.follows.created"
	SubjectFollowDeleted  = "yatube.follows.deleted"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

type PostCreated struct {
	PostID   string  `json:"post_id"`
	AuthorID string  `json:"author_id"`
	GroupID  *string `json:"group_id,omitempty"`
}

type CommentCreated struct {
	CommentID string `json:"comment_id"`
	PostID    string `json:"post_id"`
	AuthorID  string `json:"author_id"`
}

type FollowChanged struct {
	UserID   string `json:"user_id"`
	AuthorID string `json:"author_id"`
}
