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

type fakeCategoryStore struct {
	mu         sync.Mutex
	categories map[string]models.Category
	failWith   error
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[string]models.Category)}
}

func (f *fakeCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryStore) Create(ctx context.Context, category *models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.categories {
		if existing.CategoryName == category.CategoryName {
			return ErrDuplicate
		}
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryStore) Save(ctx context.Context, category *models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	for id, existing := range f.categories {
		if existing.CategoryName == category.CategoryName && id != category.ID {
			return ErrDuplicate
		}
	}
	f.categories[category.ID] = *category
	return nil
}

func nextBigThing() validation.AddCategory {
	return validation.AddCategory{
		CategoryID:   intPtr(1),
		CategoryName: strPtr("Next Big Thing"),
		Description:  strPtr("Would make Steve proud."),
	}
}

func TestCategoryCreate_Defaults(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store)

	category, err := svc.Create(context.Background(), nextBigThing())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.ID == "" {
		t.Error("expected a storage-assigned id")
	}
	if category.DateCreated.IsZero() {
		t.Error("expected dateCreated to default to the current time")
	}
	if category.DateModified != nil {
		t.Error("expected dateModified unset at creation")
	}
}

func TestCategoryCreate_CallerSuppliedID(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store)

	payload := nextBigThing()
	payload.ID = strPtr("666fff666")

	category, err := svc.Create(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.ID != "666fff666" {
		t.Errorf("expected the supplied id to be kept, got %q", category.ID)
	}
}

func TestCategoryCreate_DuplicateNameLeavesFirstUnchanged(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store)
	ctx := context.Background()

	first, err := svc.Create(ctx, nextBigThing())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := nextBigThing()
	second.CategoryID = intPtr(2)
	second.Description = strPtr("A different description.")

	_, err = svc.Create(ctx, second)
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if cerr.Field != "categoryName" {
		t.Errorf("expected conflict on categoryName, got %s", cerr.Field)
	}

	kept := store.categories[first.ID]
	if kept.Description != "Would make Steve proud." || kept.CategoryID != 1 {
		t.Errorf("first category must remain unchanged, got %+v", kept)
	}
}

func TestCategoryCreate_MissingFields(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	_, err := svc.Create(context.Background(), validation.AddCategory{})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if !strings.Contains(verr.Error(), "categoryName") {
		t.Errorf("expected message to name categoryName, got %v", verr)
	}
}

func TestCategoryUpdate_SetsDateModified(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store)
	ctx := context.Background()

	category, err := svc.Create(ctx, nextBigThing())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	patch := validation.UpdateCategory{Description: strPtr("Still impressive.")}
	if err := svc.Update(ctx, category, patch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if category.DateModified == nil {
		t.Fatal("expected dateModified to be set on update")
	}
	if category.DateModified.Before(category.DateCreated) {
		t.Errorf("dateModified %v before dateCreated %v", category.DateModified, category.DateCreated)
	}
	if category.Description != "Still impressive." {
		t.Errorf("patch not applied: %+v", category)
	}
	if category.CategoryName != "Next Big Thing" {
		t.Errorf("unpatched field must keep its value, got %q", category.CategoryName)
	}
}

func TestCategoryUpdate_StampsEvenWithoutChanges(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store)
	ctx := context.Background()

	category, err := svc.Create(ctx, nextBigThing())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// An empty patch still refreshes the timestamp.
	if err := svc.Update(ctx, category, validation.UpdateCategory{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.DateModified == nil {
		t.Error("expected dateModified to be set even when no field changed")
	}
}

func TestCategoryList_Empty(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	categories, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 0 {
		t.Errorf("expected an empty list, got %d", len(categories))
	}
}
