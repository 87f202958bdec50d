package database

import (
	"context"
	"errors"

	"yatube/internal/core/post"
	postPort "yatube/internal/ports/post"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// PostRepositoryDatabase implements PostRepository on gorm.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Omit("User", "Group").Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Update writes the editable columns only; author and created_at never change.
func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) error {
	return repo.db.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ?", p.ID).
		Select("text", "group_id", "image", "updated_at").
		Updates(map[string]any{
			"text":     p.Text,
			"group_id": p.GroupID,
			"image":    p.Image,
		}).Error
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	var p post.Post
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Group").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, post.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) List(ctx context.Context, filter postPort.Filter, offset, limit int) ([]*post.Post, error) {
	var posts []*post.Post
	err := repo.db.WithContext(ctx).
		Scopes(filtered(filter)).
		Preload("User").
		Preload("Group").
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, filter postPort.Filter) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&post.Post{}).
		Scopes(filtered(filter)).
		Count(&count).Error
	return count, err
}

func filtered(filter postPort.Filter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if filter.GroupID != nil {
			tx = tx.Where("group_id = ?", *filter.GroupID)
		}
		if filter.AuthorID != nil {
			tx = tx.Where("user_id = ?", *filter.AuthorID)
		}
		return tx
	}
}
