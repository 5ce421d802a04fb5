package wishlist

import (
	"context"
	"errors"
	"testing"
	"time"
)

type memoryStore struct {
	ids     map[string][]string
	entries map[string][]Entry
	loadErr error
	saveErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{ids: map[string][]string{}, entries: map[string][]Entry{}}
}

func (m *memoryStore) LoadIDs(ctx context.Context, sessionID string) ([]string, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]string, len(m.ids[sessionID]))
	copy(out, m.ids[sessionID])
	return out, nil
}

func (m *memoryStore) LoadEntries(ctx context.Context, sessionID string) ([]Entry, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]Entry, len(m.entries[sessionID]))
	copy(out, m.entries[sessionID])
	return out, nil
}

func (m *memoryStore) Save(ctx context.Context, sessionID string, ids []string, entries []Entry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.ids[sessionID] = append([]string(nil), ids...)
	m.entries[sessionID] = append([]Entry(nil), entries...)
	return nil
}

func newTestService(t *testing.T, store Store) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Store: store})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestAddIsIdempotent(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	first, err := svc.Add(ctx, "s1", "fab_velvet", nil)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(first))
	}
	addedAt := first[0].AddedAt

	time.Sleep(time.Millisecond)
	second, err := svc.Add(ctx, "s1", "fab_velvet", nil)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected re-add to keep single entry, got %d", len(second))
	}
	if !second[0].AddedAt.Equal(addedAt) {
		t.Fatal("expected original AddedAt to survive a re-add")
	}
}

func TestAddRequiresFabricID(t *testing.T) {
	svc := newTestService(t, newMemoryStore())
	if _, err := svc.Add(context.Background(), "s1", "", nil); err == nil {
		t.Fatal("expected validation error for empty fabric id")
	}
}

func TestRemoveMissingIDIsNoop(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "s1", "fab_velvet", nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	entries, err := svc.Remove(ctx, "s1", "fab_ghost")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected wishlist unchanged, got %d entries", len(entries))
	}
}

func TestHasTracksMembership(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "s1", "fab_velvet", nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	liked, err := svc.Has(ctx, "s1", "fab_velvet")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if !liked {
		t.Fatal("expected liked fabric to be present")
	}

	if _, err := svc.Remove(ctx, "s1", "fab_velvet"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	liked, err = svc.Has(ctx, "s1", "fab_velvet")
	if err != nil {
		t.Fatalf("has after remove: %v", err)
	}
	if liked {
		t.Fatal("expected fabric gone after removal")
	}
}

func TestStorageUnavailableDegradesSilently(t *testing.T) {
	store := newMemoryStore()
	store.loadErr = ErrStorageUnavailable
	svc := newTestService(t, store)
	ctx := context.Background()

	entries, err := svc.Add(ctx, "s1", "fab_velvet", nil)
	if err != nil {
		t.Fatalf("expected silent degradation, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty list when storage is down, got %d", len(entries))
	}

	ids, err := svc.ListIDs(ctx, "s1")
	if err != nil {
		t.Fatalf("list ids: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty ids, got %d", len(ids))
	}
}

func TestSaveFailureDropsMutation(t *testing.T) {
	store := newMemoryStore()
	store.saveErr = errors.New("write refused")
	svc := newTestService(t, store)

	entries, err := svc.Add(context.Background(), "s1", "fab_velvet", nil)
	if err != nil {
		t.Fatalf("expected silent degradation, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty result on failed save, got %d", len(entries))
	}
	if len(store.entries["s1"]) != 0 {
		t.Fatal("expected nothing persisted")
	}
}
