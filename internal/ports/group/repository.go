package group

import (
	"context"

	"yatube/internal/core/group"

	"github.com/gofrs/uuid"
)

type GroupRepository interface {
	Create(ctx context.Context, group *group.Group) (*group.Group, error)
	FindByID(ctx context.Context, id uuid.UUID) (*group.Group, error)
	FindBySlug(ctx context.Context, slug string) (*group.Group, error)
	List(ctx context.Context) ([]*group.Group, error)
}
