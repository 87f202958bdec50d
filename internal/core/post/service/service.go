package postapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"yatube/internal/config"
	groupEntity "yatube/internal/core/group"
	"yatube/internal/core/pagination"
	postEntity "yatube/internal/core/post"
	"yatube/internal/ports/events"
	groupPort "yatube/internal/ports/group"
	"yatube/internal/ports/media"
	postPort "yatube/internal/ports/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// imageDir is where post images live inside the media root.
const imageDir = "posts"

type PostService struct {
	PostRepository  postPort.PostRepository
	GroupRepository groupPort.GroupRepository
	Media           media.Storage
	Events          events.Publisher
}

func NewPostService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	mediaStorage media.Storage,
	publisher events.Publisher,
) *PostService {
	return &PostService{
		PostRepository:  postRepo,
		GroupRepository: groupRepo,
		Media:           mediaStorage,
		Events:          publisher,
	}
}

// Index is the global listing.
func (s *PostService) Index(ctx context.Context, rawPage string) (*postPort.Listing, error) {
	return s.list(ctx, postPort.Filter{}, rawPage)
}

// GroupPosts is the listing of one group, looked up by slug.
func (s *PostService) GroupPosts(ctx context.Context, slug, rawPage string) (*groupEntity.Group, *postPort.Listing, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	listing, err := s.list(ctx, postPort.Filter{GroupID: &g.ID}, rawPage)
	if err != nil {
		return nil, nil, err
	}
	return g, listing, nil
}

// AuthorPosts is the listing shown on an author's profile.
func (s *PostService) AuthorPosts(ctx context.Context, authorID uuid.UUID, rawPage string) (*postPort.Listing, error) {
	return s.list(ctx, postPort.Filter{AuthorID: &authorID}, rawPage)
}

func (s *PostService) list(ctx context.Context, filter postPort.Filter, rawPage string) (*postPort.Listing, error) {
	count, err := s.PostRepository.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	page := pagination.New(rawPage, count, pagination.PageSize)
	posts, err := s.PostRepository.List(ctx, filter, page.Offset(), page.Limit())
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return &postPort.Listing{Page: page, Posts: posts}, nil
}

// GetPost loads a post by its textual id. Malformed ids are reported as not found.
func (s *PostService) GetPost(ctx context.Context, rawID string) (*postEntity.Post, error) {
	id, err := uuid.FromString(rawID)
	if err != nil {
		return nil, postEntity.ErrNotFound
	}
	return s.PostRepository.FindByID(ctx, id)
}

// CreatePost stores a new post owned by authorID.
func (s *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, in postPort.PostInput) (*postEntity.Post, error) {
	if authorID == uuid.Nil {
		return nil, errors.New("post author is required")
	}

	p := &postEntity.Post{UserID: authorID}
	if err := s.apply(ctx, p, in); err != nil {
		return nil, err
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	config.Logger.Info("Post created", zap.String("postID", created.ID.String()), zap.String("authorID", authorID.String()))

	event := events.PostCreated{PostID: created.ID.String(), AuthorID: authorID.String()}
	if created.GroupID != nil {
		groupID := created.GroupID.String()
		event.GroupID = &groupID
	}
	s.publish(ctx, events.SubjectPostCreated, event)

	return created, nil
}

// Authorize loads the post and decides whether actorID may edit it.
func (s *PostService) Authorize(ctx context.Context, actorID uuid.UUID, rawID string) (*postEntity.Post, postEntity.Decision, error) {
	p, err := s.GetPost(ctx, rawID)
	if err != nil {
		return nil, postEntity.Denied, err
	}
	return p, p.EditDecision(actorID), nil
}

// UpdatePost changes text, group and image in place. Identity, author and creation time are kept.
func (s *PostService) UpdatePost(ctx context.Context, actorID uuid.UUID, p *postEntity.Post, in postPort.PostInput) (*postEntity.Post, error) {
	if p.EditDecision(actorID) != postEntity.Allowed {
		config.Logger.Warn("Edit by non-author refused", zap.String("postID", p.ID.String()), zap.String("actorID", actorID.String()))
		return nil, postEntity.ErrForbidden
	}

	if err := s.apply(ctx, p, in); err != nil {
		return nil, err
	}
	if err := s.PostRepository.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	config.Logger.Info("Post updated", zap.String("postID", p.ID.String()))
	return p, nil
}

// apply copies the editable fields onto p. A nil image keeps the current one.
func (s *PostService) apply(ctx context.Context, p *postEntity.Post, in postPort.PostInput) error {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return postEntity.ErrEmptyText
	}

	var g *groupEntity.Group
	if in.GroupID != nil {
		var err error
		g, err = s.GroupRepository.FindByID(ctx, *in.GroupID)
		if err != nil {
			return err
		}
	}

	image := p.Image
	if in.Image != nil {
		saved, err := s.Media.Save(ctx, imageDir, in.Image.Filename, in.Image.Data)
		if err != nil {
			return fmt.Errorf("save image: %w", err)
		}
		image = saved
	}

	p.Text = text
	p.Group = g
	p.GroupID = nil
	if g != nil {
		p.GroupID = &g.ID
	}
	p.Image = image
	return nil
}

func (s *PostService) publish(ctx context.Context, subject string, payload any) {
	if err := s.Events.Publish(ctx, subject, payload); err != nil {
		config.Logger.Warn("Could not publish event", zap.String("subject", subject), zap.Error(err))
	}
}
