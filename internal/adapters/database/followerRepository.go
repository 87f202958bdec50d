package database

import (
	"context"

	"yatube/internal/core/follower"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowerRepositoryDatabase implements FollowerRepository on gorm.
type FollowerRepositoryDatabase struct {
	db *gorm.DB
}

func NewFollowerRepositoryDatabase(db *gorm.DB) *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{db: db}
}

// Create inserts the edge; an existing (user, author) pair is left untouched.
func (repo *FollowerRepositoryDatabase) Create(ctx context.Context, f *follower.Follow) (*follower.Follow, error) {
	err := repo.db.WithContext(ctx).
		Omit("User", "Author").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(f).Error
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (repo *FollowerRepositoryDatabase) Delete(ctx context.Context, userID, authorID uuid.UUID) error {
	return repo.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&follower.Follow{}).Error
}

func (repo *FollowerRepositoryDatabase) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&follower.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *FollowerRepositoryDatabase) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&follower.Follow{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (repo *FollowerRepositoryDatabase) CountFollowers(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&follower.Follow{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
