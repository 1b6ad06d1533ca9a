package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skevingreen/ims-server/internal/models"
	"github.com/skevingreen/ims-server/internal/validation"
)

// itemDateLayout matches the ISO-8601 strings items store their dates as.
const itemDateLayout = "2006-01-02T15:04:05.000Z"

// ItemStore is the persistence surface the item service needs.
type ItemStore interface {
	List(ctx context.Context) ([]models.InventoryItem, error)
	FindByID(ctx context.Context, id string) (*models.InventoryItem, error)
	FindByCategory(ctx context.Context, categoryID int64) ([]models.InventoryItem, error)
	Create(ctx context.Context, item *models.InventoryItem) error
	Save(ctx context.Context, item *models.InventoryItem) error
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// ItemService orchestrates validation, persistence, and timestamp upkeep for
// inventory items.
type ItemService struct {
	store ItemStore
}

func NewItemService(store ItemStore) *ItemService {
	return &ItemService{store: store}
}

func (s *ItemService) List(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

// GetByID returns ErrNotFound when no item matches; fetching a single record
// that does not exist is an error, not an empty result.
func (s *ItemService) GetByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	item, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting item %s: %w", id, err)
	}
	return item, nil
}

// ListByCategory filters on the logical categoryId. An empty match reports
// ErrNotFound rather than an empty list; callers relying on the current API
// contract expect the 404.
func (s *ItemService) ListByCategory(ctx context.Context, categoryID int64) ([]models.InventoryItem, error) {
	items, err := s.store.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("listing items by category %d: %w", categoryID, err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

// Create validates the full payload and persists a new item. An empty
// dateCreated defaults to the current time; a name collision surfaces as a
// *ConflictError.
func (s *ItemService) Create(ctx context.Context, payload validation.AddItem) (*models.InventoryItem, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	item := models.InventoryItem{
		CategoryID:  *payload.CategoryID,
		SupplierID:  *payload.SupplierID,
		Name:        *payload.Name,
		Description: *payload.Description,
		Price:       decimal.NewFromFloat(*payload.Price).Round(2),
		DateCreated: *payload.DateCreated,
	}
	if payload.Quantity != nil {
		item.Quantity = *payload.Quantity
	}
	if item.DateCreated == "" {
		item.DateCreated = time.Now().UTC().Format(itemDateLayout)
	}

	if err := s.store.Create(ctx, &item); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, &ConflictError{Entity: "Item", Field: "name"}
		}
		return nil, fmt.Errorf("creating item: %w", err)
	}
	return &item, nil
}

// Update looks the item up, validates the patch, applies it, and refreshes
// DateModified. Returns ErrNotFound when the id matches nothing.
func (s *ItemService) Update(ctx context.Context, id string, payload validation.UpdateItem) (*models.InventoryItem, error) {
	item, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting item %s: %w", id, err)
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	item.CategoryID = *payload.CategoryID
	item.SupplierID = *payload.SupplierID
	item.Name = *payload.Name
	item.Description = *payload.Description
	item.Price = decimal.NewFromFloat(*payload.Price).Round(2)
	if payload.Quantity != nil {
		item.Quantity = *payload.Quantity
	}
	item.DateModified = time.Now().UTC().Format(itemDateLayout)

	if err := s.store.Save(ctx, item); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, &ConflictError{Entity: "Item", Field: "name"}
		}
		return nil, fmt.Errorf("updating item %s: %w", id, err)
	}
	return item, nil
}

// DeleteByID removes the item outright. Zero rows removed means ErrNotFound,
// never a silent success.
func (s *ItemService) DeleteByID(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
