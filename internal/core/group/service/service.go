package groupapp

import (
	"context"
	"errors"

	"yatube/internal/config"
	groupEntity "yatube/internal/core/group"
	groupPort "yatube/internal/ports/group"

	"go.uber.org/zap"
)

type GroupService struct {
	GroupRepository groupPort.GroupRepository
}

func NewGroupService(repo groupPort.GroupRepository) *GroupService {
	return &GroupService{GroupRepository: repo}
}

func (s *GroupService) List(ctx context.Context) ([]*groupEntity.Group, error) {
	return s.GroupRepository.List(ctx)
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*groupEntity.Group, error) {
	return s.GroupRepository.FindBySlug(ctx, slug)
}

// EnsureGroup creates the group unless one with the slug already exists.
func (s *GroupService) EnsureGroup(ctx context.Context, slug, title, description string) (*groupEntity.Group, bool, error) {
	existing, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, groupEntity.ErrNotFound) {
		return nil, false, err
	}

	g, err := s.GroupRepository.Create(ctx, &groupEntity.Group{
		Slug:        slug,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return nil, false, err
	}

	config.Logger.Info("Group created", zap.String("slug", slug), zap.String("title", title))
	return g, true, nil
}
