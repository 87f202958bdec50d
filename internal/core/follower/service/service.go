package followerapp

import (
	"context"

	"yatube/internal/config"
	followerEntity "yatube/internal/core/follower"
	"yatube/internal/ports/events"
	followerPort "yatube/internal/ports/follower"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
	Events             events.Publisher
}

func NewFollowerService(repo followerPort.FollowerRepository, publisher events.Publisher) *FollowerService {
	return &FollowerService{
		FollowerRepository: repo,
		Events:             publisher,
	}
}

// FollowUser makes userID follow authorID. Following yourself or someone you
// already follow is a no-op; the bool reports whether an edge was created.
func (s *FollowerService) FollowUser(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	if userID == authorID {
		config.Logger.Warn("Cannot follow yourself", zap.String("userID", userID.String()))
		return false, nil
	}

	exists, err := s.FollowerRepository.Exists(ctx, userID, authorID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if _, err := s.FollowerRepository.Create(ctx, &followerEntity.Follow{UserID: userID, AuthorID: authorID}); err != nil {
		return false, err
	}

	s.publish(ctx, events.SubjectFollowCreated, userID, authorID)
	return true, nil
}

// UnfollowUser removes the edge if there is one; the bool reports whether it existed.
func (s *FollowerService) UnfollowUser(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	if userID == authorID {
		config.Logger.Warn("Cannot unfollow yourself", zap.String("userID", userID.String()))
		return false, nil
	}

	exists, err := s.FollowerRepository.Exists(ctx, userID, authorID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err := s.FollowerRepository.Delete(ctx, userID, authorID); err != nil {
		return false, err
	}

	s.publish(ctx, events.SubjectFollowDeleted, userID, authorID)
	return true, nil
}

func (s *FollowerService) IsFollowing(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || userID == authorID {
		return false, nil
	}
	return s.FollowerRepository.Exists(ctx, userID, authorID)
}

func (s *FollowerService) Stats(ctx context.Context, userID uuid.UUID) (*followerPort.FollowStats, error) {
	following, err := s.FollowerRepository.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.FollowerRepository.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &followerPort.FollowStats{Following: following, Followers: followers}, nil
}

func (s *FollowerService) publish(ctx context.Context, subject string, userID, authorID uuid.UUID) {
	payload := events.FollowChanged{UserID: userID.String(), AuthorID: authorID.String()}
	if err := s.Events.Publish(ctx, subject, payload); err != nil {
		config.Logger.Warn("Could not publish event", zap.String("subject", subject), zap.Error(err))
	}
}
