package wishlist

import (
	"context"
	"time"

	pkgerrors "github.com/Vamsi-027/fabric-commerce-backend/pkg/errors"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
)

// Service exposes business rules for wishlist management.
type Service interface {
	Add(ctx context.Context, sessionID, fabricID string, notes *string) ([]Entry, error)
	Remove(ctx context.Context, sessionID, fabricID string) ([]Entry, error)
	List(ctx context.Context, sessionID string) ([]Entry, error)
	ListIDs(ctx context.Context, sessionID string) ([]string, error)
	Has(ctx context.Context, sessionID, fabricID string) (bool, error)
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	Store  Store
	Logger *logger.Logger
}

type service struct {
	store Store
	logg  *logger.Logger
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist store is required")
	}
	return &service{store: params.Store, logg: params.Logger}, nil
}

// Add records the fabric once; re-adding an id already present refreshes
// nothing and keeps the original AddedAt.
func (s *service) Add(ctx context.Context, sessionID, fabricID string, notes *string) ([]Entry, error) {
	if fabricID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "fabric id is required")
	}

	entries, ok := s.loadEntries(ctx, sessionID)
	if !ok {
		return []Entry{}, nil
	}
	for _, entry := range entries {
		if entry.ID == fabricID {
			return entries, nil
		}
	}

	entries = append(entries, Entry{ID: fabricID, AddedAt: time.Now().UTC(), Notes: notes})
	if !s.save(ctx, sessionID, entries) {
		return []Entry{}, nil
	}
	return entries, nil
}

// Remove drops the wishlist entry regardless of prior state.
func (s *service) Remove(ctx context.Context, sessionID, fabricID string) ([]Entry, error) {
	entries, ok := s.loadEntries(ctx, sessionID)
	if !ok {
		return []Entry{}, nil
	}

	filtered := make([]Entry, 0, len(entries))
	removed := false
	for _, entry := range entries {
		if entry.ID == fabricID {
			removed = true
			continue
		}
		filtered = append(filtered, entry)
	}
	if !removed {
		return entries, nil
	}

	if !s.save(ctx, sessionID, filtered) {
		return []Entry{}, nil
	}
	return filtered, nil
}

// List returns the session's wishlist entries in insertion order.
func (s *service) List(ctx context.Context, sessionID string) ([]Entry, error) {
	entries, _ := s.loadEntries(ctx, sessionID)
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// ListIDs returns only the liked fabric ids.
func (s *service) ListIDs(ctx context.Context, sessionID string) ([]string, error) {
	ids, err := s.store.LoadIDs(ctx, sessionID)
	if err != nil {
		s.warn(ctx, "wishlist id load failed, serving empty list")
		return []string{}, nil
	}
	return ids, nil
}

// Has reports whether the fabric is on the session's wishlist.
func (s *service) Has(ctx context.Context, sessionID, fabricID string) (bool, error) {
	ids, err := s.ListIDs(ctx, sessionID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == fabricID {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) loadEntries(ctx context.Context, sessionID string) ([]Entry, bool) {
	entries, err := s.store.LoadEntries(ctx, sessionID)
	if err != nil {
		s.warn(ctx, "wishlist storage unreachable, serving empty list")
		return []Entry{}, false
	}
	return entries, true
}

func (s *service) save(ctx context.Context, sessionID string, entries []Entry) bool {
	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	if err := s.store.Save(ctx, sessionID, ids, entries); err != nil {
		s.warn(ctx, "wishlist save failed, mutation dropped")
		return false
	}
	return true
}

func (s *service) warn(ctx context.Context, msg string) {
	if s.logg != nil {
		s.logg.Warn(ctx, msg)
	}
}
