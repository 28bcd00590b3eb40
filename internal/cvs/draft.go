package cvs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cv-builder/internal/shared/session"
)

const draftKeyPrefix = "cv_data:"

// DraftStore keeps the in-progress CV for a browsing session in the session
// store as one composite JSON value.
type DraftStore struct {
	Store session.Store
}

// NewDraftStore constructs a DraftStore.
func NewDraftStore(store session.Store) *DraftStore {
	return &DraftStore{Store: store}
}

// Save writes the draft for a session, replacing any previous one.
func (d *DraftStore) Save(ctx context.Context, sessionID string, draft CVDocument) error {
	if sessionID == "" {
		return ErrInvalidInput
	}
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return d.Store.Put(ctx, draftKeyPrefix+sessionID, data)
}

// Load returns the draft for a session. A session with no draft yields empty
// defaults, not an error.
func (d *DraftStore) Load(ctx context.Context, sessionID string) (CVDocument, error) {
	if sessionID == "" {
		return CVDocument{}, nil
	}
	data, err := d.Store.Get(ctx, draftKeyPrefix+sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return CVDocument{}, nil
	}
	if err != nil {
		return CVDocument{}, err
	}
	var draft CVDocument
	if err := json.Unmarshal(data, &draft); err != nil {
		return CVDocument{}, fmt.Errorf("unmarshal draft: %w", err)
	}
	return draft, nil
}

// Clear removes the draft for a session.
func (d *DraftStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return d.Store.Delete(ctx, draftKeyPrefix+sessionID)
}
