package item

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

// MockRepo implements Repository for testing
type MockRepo struct {
	ListFunc   func(ctx context.Context, limit int) ([]Row, error)
	InsertFunc func(ctx context.Context, id uuid.UUID, name string) error
}

func (m *MockRepo) List(ctx context.Context, limit int) ([]Row, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockRepo) Insert(ctx context.Context, id uuid.UUID, name string) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, id, name)
	}
	return nil
}

func TestService_List(t *testing.T) {
	idA := uuid.New()
	idB := uuid.New()

	repo := &MockRepo{
		ListFunc: func(ctx context.Context, limit int) ([]Row, error) {
			if limit != MaxListLimit {
				t.Errorf("List called with limit %d, want %d", limit, MaxListLimit)
			}
			return []Row{
				{ID: idA, Name: "flagged-transfer"},
				{ID: idB, Name: "grocery-run"},
			}, nil
		},
	}

	items, err := NewService(repo).List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("List() returned %d items, want 2", len(items))
	}

	// Order preserved, derived fields computed per row
	if items[0].ID != idA || items[0].RiskScore != 70 || items[0].RiskLevel != RiskLevelMedium {
		t.Errorf("items[0] = %+v, want id=%s score=70 level=MEDIUM", items[0], idA)
	}
	if items[1].ID != idB || items[1].RiskScore != 30 || items[1].RiskLevel != RiskLevelLow {
		t.Errorf("items[1] = %+v, want id=%s score=30 level=LOW", items[1], idB)
	}
}

func TestService_List_Empty(t *testing.T) {
	repo := &MockRepo{
		ListFunc: func(ctx context.Context, limit int) ([]Row, error) {
			return nil, nil
		},
	}

	items, err := NewService(repo).List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("List() = %v, want empty non-nil slice", items)
	}
}

func TestService_List_StoreError(t *testing.T) {
	repo := &MockRepo{
		ListFunc: func(ctx context.Context, limit int) ([]Row, error) {
			return nil, ErrStoreUnavailable
		},
	}

	items, err := NewService(repo).List(context.Background())
	if err == nil {
		t.Fatal("List() expected error, got nil")
	}
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("List() error = %v, want wrapped ErrStoreUnavailable", err)
	}
	if items != nil {
		t.Errorf("List() returned items %v alongside error", items)
	}
}

func TestService_Create(t *testing.T) {
	var insertedID uuid.UUID
	var insertedName string

	repo := &MockRepo{
		InsertFunc: func(ctx context.Context, id uuid.UUID, name string) error {
			insertedID = id
			insertedName = name
			return nil
		},
	}

	created, err := NewService(repo).Create(context.Background(), CreateItemParams{Name: "fraud-ring"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if created.ID != insertedID {
		t.Errorf("returned id %s does not match inserted id %s", created.ID, insertedID)
	}
	if created.ID == uuid.Nil {
		t.Error("Create() returned nil UUID")
	}
	if insertedName != "fraud-ring" {
		t.Errorf("inserted name = %q, want %q", insertedName, "fraud-ring")
	}
	if created.RiskScore != 90 || created.RiskLevel != RiskLevelHigh {
		t.Errorf("derived fields = (%d, %s), want (90, HIGH)", created.RiskScore, created.RiskLevel)
	}
}

func TestService_Create_InsertError(t *testing.T) {
	repo := &MockRepo{
		InsertFunc: func(ctx context.Context, id uuid.UUID, name string) error {
			return ErrQueryFailed
		},
	}

	created, err := NewService(repo).Create(context.Background(), CreateItemParams{Name: "anything"})
	if err == nil {
		t.Fatal("Create() expected error, got nil")
	}
	if !errors.Is(err, ErrQueryFailed) {
		t.Errorf("Create() error = %v, want wrapped ErrQueryFailed", err)
	}
	if created != nil {
		t.Errorf("Create() returned item %+v on failure; the generated id must not leak", created)
	}
}

func TestService_Create_ConcurrentSameName(t *testing.T) {
	const n = 50

	var mu sync.Mutex
	seen := make(map[uuid.UUID]bool)

	repo := &MockRepo{
		InsertFunc: func(ctx context.Context, id uuid.UUID, name string) error {
			mu.Lock()
			defer mu.Unlock()
			if seen[id] {
				return errors.New("duplicate id")
			}
			seen[id] = true
			return nil
		},
	}
	svc := NewService(repo)

	var wg sync.WaitGroup
	errCh := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Create(context.Background(), CreateItemParams{Name: "same-name"}); err != nil {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Errorf("concurrent Create() failed: %v", err)
	}
	if len(seen) != n {
		t.Errorf("got %d distinct ids, want %d", len(seen), n)
	}
}
