package timelineapp

import (
	"context"
	"fmt"

	"yatube/internal/core/pagination"
	postPort "yatube/internal/ports/post"
	timelinePort "yatube/internal/ports/timeline"

	"github.com/gofrs/uuid"
)

type TimelineService struct {
	TimelineRepository timelinePort.TimelineRepository
}

func NewTimelineService(timelineRepo timelinePort.TimelineRepository) *TimelineService {
	return &TimelineService{
		TimelineRepository: timelineRepo,
	}
}

// GetTimelineByUserID returns one page of the follow feed of userID.
func (s *TimelineService) GetTimelineByUserID(ctx context.Context, userID uuid.UUID, rawPage string) (*timelinePort.Feed, error) {
	count, err := s.TimelineRepository.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count timeline: %w", err)
	}

	page := pagination.New(rawPage, count, pagination.PageSize)
	posts, err := s.TimelineRepository.GetTimelineByUserID(ctx, userID, page.Offset(), page.Limit())
	if err != nil {
		return nil, fmt.Errorf("read timeline: %w", err)
	}

	return &timelinePort.Feed{
		Listing:    postPort.Listing{Page: page, Posts: posts},
		PostExists: count > 0,
	}, nil
}
