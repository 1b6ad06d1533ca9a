package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skevingreen/ims-server/internal/models"
	"github.com/skevingreen/ims-server/internal/validation"
)

// CategoryStore is the persistence surface the category service needs.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Save(ctx context.Context, category *models.Category) error
}

// CategoryService validates payloads and maintains the category timestamps.
// Categories have no delete path.
type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

// Create validates the payload and persists a new category. DateCreated
// defaults to now; DateModified stays unset until the first update. A
// categoryName collision surfaces as a *ConflictError.
func (s *CategoryService) Create(ctx context.Context, payload validation.AddCategory) (*models.Category, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	category := models.Category{
		CategoryID:   *payload.CategoryID,
		CategoryName: *payload.CategoryName,
		Description:  *payload.Description,
		DateCreated:  time.Now().UTC(),
	}
	if payload.ID != nil {
		category.ID = *payload.ID
	}

	if err := s.store.Create(ctx, &category); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, &ConflictError{Entity: "Category", Field: "categoryName"}
		}
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return &category, nil
}

// Update applies the patch fields to an existing category and stamps
// DateModified, whether or not any business field actually changed.
func (s *CategoryService) Update(ctx context.Context, category *models.Category, patch validation.UpdateCategory) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	if patch.CategoryID != nil {
		category.CategoryID = *patch.CategoryID
	}
	if patch.CategoryName != nil {
		category.CategoryName = *patch.CategoryName
	}
	if patch.Description != nil {
		category.Description = *patch.Description
	}
	now := time.Now().UTC()
	category.DateModified = &now

	if err := s.store.Save(ctx, category); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return &ConflictError{Entity: "Category", Field: "categoryName"}
		}
		return fmt.Errorf("updating category: %w", err)
	}
	return nil
}
