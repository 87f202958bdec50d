package media

import "context"

// Storage persists uploaded files and returns their path relative to the media root.
type Storage interface {
	Save(ctx context.Context, dir, filename string, data []byte) (string, error)
}
