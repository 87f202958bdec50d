package database

import (
	"context"
	"errors"

	"yatube/internal/core/group"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type GroupRepositoryDatabase struct {
	db *gorm.DB
}

func NewGroupRepositoryDatabase(db *gorm.DB) *GroupRepositoryDatabase {
	return &GroupRepositoryDatabase{db: db}
}

func (repo *GroupRepositoryDatabase) Create(ctx context.Context, g *group.Group) (*group.Group, error) {
	if err := repo.db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (repo *GroupRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*group.Group, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *GroupRepositoryDatabase) FindBySlug(ctx context.Context, slug string) (*group.Group, error) {
	return repo.first(ctx, "slug = ?", slug)
}

func (repo *GroupRepositoryDatabase) List(ctx context.Context) ([]*group.Group, error) {
	var groups []*group.Group
	if err := repo.db.WithContext(ctx).Order("title ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (repo *GroupRepositoryDatabase) first(ctx context.Context, query string, args ...any) (*group.Group, error) {
	var g group.Group
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, group.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}
