package stores

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skevingreen/ims-server/internal/models"
)

type ItemStore struct {
	db *gorm.DB
}

func NewItemStore(db *gorm.DB) *ItemStore {
	return &ItemStore{db: db}
}

func (s *ItemStore) List(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (s *ItemStore) FindByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *ItemStore) FindByCategory(ctx context.Context, categoryID int64) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.WithContext(ctx).Where("category_id = ?", categoryID).Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (s *ItemStore) Create(ctx context.Context, item *models.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return translate(s.db.WithContext(ctx).Create(item).Error)
}

func (s *ItemStore) Save(ctx context.Context, item *models.InventoryItem) error {
	return translate(s.db.WithContext(ctx).Save(item).Error)
}

func (s *ItemStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id)
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}
