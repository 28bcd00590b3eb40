package cvs

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]CV // userID -> CVs in creation order
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]CV),
	}
}

// Create appends a CV for the owning user.
func (r *MemoryRepo) Create(ctx context.Context, cv CV) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[cv.UserID] = append(r.data[cv.UserID], cv)
	return nil
}

// GetLatestByUser returns the most recently created CV for a user.
func (r *MemoryRepo) GetLatestByUser(ctx context.Context, userID string) (CV, error) {
	if err := ctx.Err(); err != nil {
		return CV{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cvs, ok := r.data[userID]
	if !ok || len(cvs) == 0 {
		return CV{}, ErrNotFound
	}
	latest := cvs[0]
	for _, cv := range cvs[1:] {
		if !cv.CreatedAt.Before(latest.CreatedAt) {
			latest = cv
		}
	}
	return latest, nil
}

// DeleteByUser removes all CVs for a user.
func (r *MemoryRepo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	deleted := len(r.data[userID])
	delete(r.data, userID)
	return deleted, nil
}

var _ Repo = (*MemoryRepo)(nil)
