package database

import (
	"context"

	"yatube/internal/core/follower"
	"yatube/internal/core/post"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// TimelineRepositoryDatabase reads the follow feed straight from the posts table.
type TimelineRepositoryDatabase struct {
	db *gorm.DB
}

func NewTimelineRepositoryDatabase(db *gorm.DB) *TimelineRepositoryDatabase {
	return &TimelineRepositoryDatabase{db: db}
}

// GetTimelineByUserID returns posts whose author is followed by userID, newest first.
func (repo *TimelineRepositoryDatabase) GetTimelineByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*post.Post, error) {
	var posts []*post.Post
	err := repo.db.WithContext(ctx).
		Scopes(repo.followedBy(ctx, userID)).
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

func (repo *TimelineRepositoryDatabase) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&post.Post{}).
		Scopes(repo.followedBy(ctx, userID)).
		Count(&count).Error
	return count, err
}

func (repo *TimelineRepositoryDatabase) followedBy(ctx context.Context, userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		authors := repo.db.WithContext(ctx).
			Model(&follower.Follow{}).
			Select("author_id").
			Where("user_id = ?", userID)
		return tx.Where("user_id IN (?)", authors)
	}
}
