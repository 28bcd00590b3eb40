package cvs

import "context"

// Repo defines persistence operations for CVs.
type Repo interface {
	Create(ctx context.Context, cv CV) error
	GetLatestByUser(ctx context.Context, userID string) (CV, error)
	DeleteByUser(ctx context.Context, userID string) (int, error)
}
