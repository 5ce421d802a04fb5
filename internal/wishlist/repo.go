package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pkgredis "github.com/Vamsi-027/fabric-commerce-backend/pkg/redis"
)

// ErrStorageUnavailable signals the wishlist backend cannot be reached.
var ErrStorageUnavailable = errors.New("wishlist storage unavailable")

// Store persists wishlist ids and entry metadata under separate keys so the
// lightweight id list can be read without decoding full entries.
type Store interface {
	LoadIDs(ctx context.Context, sessionID string) ([]string, error)
	LoadEntries(ctx context.Context, sessionID string) ([]Entry, error)
	Save(ctx context.Context, sessionID string, ids []string, entries []Entry) error
}

type redisStore struct {
	client *pkgredis.Client
}

// NewRedisStore returns a Store backed by the shared Redis client.
func NewRedisStore(client *pkgredis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) LoadIDs(ctx context.Context, sessionID string) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}
	raw, err := s.client.Get(ctx, s.client.WishlistKey(sessionID))
	if err != nil {
		if errors.Is(err, pkgredis.Nil) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{}, nil
	}
	return ids, nil
}

func (s *redisStore) LoadEntries(ctx context.Context, sessionID string) ([]Entry, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}
	raw, err := s.client.Get(ctx, s.client.WishlistMetaKey(sessionID))
	if err != nil {
		if errors.Is(err, pkgredis.Nil) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []Entry{}, nil
	}
	return entries, nil
}

func (s *redisStore) Save(ctx context.Context, sessionID string, ids []string, entries []Entry) error {
	if s.client == nil {
		return ErrStorageUnavailable
	}
	if ids == nil {
		ids = []string{}
	}
	if entries == nil {
		entries = []Entry{}
	}

	encodedIDs, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode wishlist ids: %w", err)
	}
	encodedEntries, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode wishlist entries: %w", err)
	}

	if err := s.client.Set(ctx, s.client.WishlistKey(sessionID), string(encodedIDs), 0); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if err := s.client.Set(ctx, s.client.WishlistMetaKey(sessionID), string(encodedEntries), 0); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
