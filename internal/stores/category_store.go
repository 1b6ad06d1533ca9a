package stores

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skevingreen/ims-server/internal/models"
)

type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

func (s *CategoryStore) Create(ctx context.Context, category *models.Category) error {
	// The storage id may be supplied by the caller; otherwise assign one.
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	return translate(s.db.WithContext(ctx).Create(category).Error)
}

func (s *CategoryStore) Save(ctx context.Context, category *models.Category) error {
	return translate(s.db.WithContext(ctx).Save(category).Error)
}
