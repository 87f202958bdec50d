package commentapp

import (
	"context"
	"fmt"
	"strings"

	"yatube/internal/config"
	commentEntity "yatube/internal/core/comment"
	"yatube/internal/ports/events"
	commentPort "yatube/internal/ports/comment"
	postPort "yatube/internal/ports/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
	Events            events.Publisher
}

func NewCommentService(
	commentRepo commentPort.CommentRepository,
	postRepo postPort.PostRepository,
	publisher events.Publisher,
) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
		Events:            publisher,
	}
}

// AddComment attaches a comment by authorID to an existing post.
func (s *CommentService) AddComment(ctx context.Context, authorID, postID uuid.UUID, text string) (*commentEntity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, commentEntity.ErrEmptyText
	}

	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	c, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		Text:   text,
		PostID: postID,
		UserID: authorID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	config.Logger.Info("Comment created", zap.String("commentID", c.ID.String()), zap.String("postID", postID.String()))

	payload := events.CommentCreated{CommentID: c.ID.String(), PostID: postID.String(), AuthorID: authorID.String()}
	if err := s.Events.Publish(ctx, events.SubjectCommentCreated, payload); err != nil {
		config.Logger.Warn("Could not publish event", zap.String("subject", events.SubjectCommentCreated), zap.Error(err))
	}

	return c, nil
}

// ListComments returns a post's comments, oldest first.
func (s *CommentService) ListComments(ctx context.Context, postID uuid.UUID) ([]*commentEntity.Comment, error) {
	return s.CommentRepository.FindByPostID(ctx, postID)
}
