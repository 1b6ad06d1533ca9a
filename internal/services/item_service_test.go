package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/skevingreen/ims-server/internal/models"
	"github.com/skevingreen/ims-server/internal/validation"
)

// fakeItemStore keeps items in memory and enforces the name unique index the
// way the real store does, returning ErrDuplicate on a collision.
type fakeItemStore struct {
	mu          sync.Mutex
	items       map[string]models.InventoryItem
	createCalls int
	failWith    error
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: make(map[string]models.InventoryItem)}
}

func (f *fakeItemStore) List(ctx context.Context) ([]models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]models.InventoryItem, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeItemStore) FindByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	item, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (f *fakeItemStore) FindByCategory(ctx context.Context, categoryID int64) ([]models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.InventoryItem
	for _, item := range f.items {
		if item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeItemStore) Create(ctx context.Context, item *models.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.items {
		if existing.Name == item.Name {
			return ErrDuplicate
		}
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeItemStore) Save(ctx context.Context, item *models.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	for id, existing := range f.items {
		if existing.Name == item.Name && id != item.ID {
			return ErrDuplicate
		}
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeItemStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	if _, ok := f.items[id]; !ok {
		return 0, nil
	}
	delete(f.items, id)
	return 1, nil
}

func strPtr(s string) *string     { return &s }
func intPtr(i int64) *int64       { return &i }
func floatPtr(f float64) *float64 { return &f }

func hungryHippos() validation.AddItem {
	return validation.AddItem{
		CategoryID:  intPtr(5000),
		SupplierID:  intPtr(5),
		Name:        strPtr("Hungry Hippos"),
		Description: strPtr("Have your hippo eat the most marbles to win."),
		Quantity:    intPtr(7),
		Price:       floatPtr(18.98),
		DateCreated: strPtr("2024-09-04T21:39:36.605Z"),
	}
}

func TestItemCreate_RoundTrip(t *testing.T) {
	store := newFakeItemStore()
	svc := NewItemService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, hungryHippos())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a storage-assigned id")
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Hungry Hippos" || got.CategoryID != 5000 || got.SupplierID != 5 {
		t.Errorf("fields did not round-trip: %+v", got)
	}
	if got.Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", got.Quantity)
	}
	if got.Price.String() != "18.98" {
		t.Errorf("expected price 18.98, got %s", got.Price.String())
	}
	if got.DateCreated != "2024-09-04T21:39:36.605Z" {
		t.Errorf("expected submitted dateCreated back, got %q", got.DateCreated)
	}
	if got.DateModified != "" {
		t.Errorf("expected dateModified unset at creation, got %q", got.DateModified)
	}
}

func TestItemCreate_EmptyDateCreatedDefaults(t *testing.T) {
	store := newFakeItemStore()
	svc := NewItemService(store)

	payload := hungryHippos()
	payload.DateCreated = strPtr("")

	created, err := svc.Create(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.DateCreated == "" {
		t.Error("expected dateCreated to default to the current time")
	}
	if !strings.HasSuffix(created.DateCreated, "Z") {
		t.Errorf("expected an ISO-8601 UTC timestamp, got %q", created.DateCreated)
	}
}

func TestItemCreate_ValidationSkipsStore(t *testing.T) {
	store := newFakeItemStore()
	svc := NewItemService(store)

	payload := hungryHippos()
	payload.Name = strPtr("")

	_, err := svc.Create(context.Background(), payload)

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if store.createCalls != 0 {
		t.Errorf("validation failure must not reach the store, got %d create calls", store.createCalls)
	}
}

func TestItemCreate_DuplicateNameConflicts(t *testing.T) {
	store := newFakeItemStore()
	svc := NewItemService(store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, hungryHippos()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Create(ctx, hungryHippos())
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if cerr.Field != "name" {
		t.Errorf("expected conflict on name, got %s", cerr.Field)
	}
	if len(store.items) != 1 {
		t.Errorf("expected the first item to remain the only record, got %d", len(store.items))
	}
}

func TestItemGetByID_NotFound(t *testing.T) {
	svc := NewItemService(newFakeItemStore())

	_, err := svc.GetByID(context.Background(), "missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestItemUpdate_SetsDateModified(t *testing.T) {
	store := newFakeItemStore()
	svc := NewItemService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, hungryHippos())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	patch := validation.UpdateItem{
		CategoryID:  intPtr(5000),
		SupplierID:  intPtr(5),
		Name:        strPtr("Hungry Hungry Hippos"),
		Description: strPtr("Have your hippo eat the most marbles to win."),
		Quantity:    intPtr(3),
		Price:       floatPtr(21.50),
	}

	updated, err := svc.Update(ctx, created.ID, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DateModified == "" {
		t.Error("expected dateModified to be set on update")
	}
	if updated.Name != "Hungry Hungry Hippos" || updated.Quantity != 3 {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.DateModified < updated.DateCreated {
		t.Errorf("dateModified %q before dateCreated %q", updated.DateModified, updated.DateCreated)
	}
}

func TestItemUpdate_NotFound(t *testing.T) {
	svc := NewItemService(newFakeItemStore())

	patch := validation.UpdateItem{
		CategoryID:  intPtr(1),
		SupplierID:  intPtr(1),
		Name:        strPtr("Thingy"),
		Description: strPtr("thing-a-ma-jig"),
		Price:       floatPtr(1.00),
	}

	_, err := svc.Update(context.Background(), "missing-id", patch)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestItemDelete_TwiceReportsNotFound(t *testing.T) {
	store := newFakeItemStore()
	svc := NewItemService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, hungryHippos())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteByID(ctx, created.ID); err != nil {
		t.Fatalf("first delete should succeed, got %v", err)
	}
	if err := svc.DeleteByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete should report ErrNotFound, got %v", err)
	}
}

func TestItemListByCategory(t *testing.T) {
	store := newFakeItemStore()
	svc := NewItemService(store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, hungryHippos()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := svc.ListByCategory(ctx, 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item, got %d", len(items))
	}

	// Zero matches is NotFound by the current API contract, unlike List.
	_, err = svc.ListByCategory(ctx, 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for an empty match, got %v", err)
	}
}

func TestItemList_EmptyIsNotAnError(t *testing.T) {
	svc := NewItemService(newFakeItemStore())

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected an empty list, got %d items", len(items))
	}
}

func TestItemList_StorageErrorPropagates(t *testing.T) {
	store := newFakeItemStore()
	store.failWith = errors.New("connection refused")
	svc := NewItemService(store)

	_, err := svc.List(context.Background())
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected the storage error to propagate, got %v", err)
	}
}
