package post

import (
	"context"

	"yatube/internal/core/pagination"
	"yatube/internal/core/post"

	"github.com/gofrs/uuid"
)

// PostRepository stores and loads posts.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	Update(ctx context.Context, post *post.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error)
	// List returns posts matching filter, newest first, with User and Group loaded.
	List(ctx context.Context, filter Filter, offset, limit int) ([]*post.Post, error)
	Count(ctx context.Context, filter Filter) (int64, error)
}

// Filter narrows a listing. Zero value means all posts.
type Filter struct {
	GroupID  *uuid.UUID
	AuthorID *uuid.UUID
}

// Listing is one page of an ordered post collection.
type Listing struct {
	Page  pagination.Page
	Posts []*post.Post
}

// PostInput carries the user-editable fields of a post.
type PostInput struct {
	Text    string
	GroupID *uuid.UUID
	Image   *ImageUpload
}

// ImageUpload is an image attached to a post form.
type ImageUpload struct {
	Filename string
	Data     []byte
}
