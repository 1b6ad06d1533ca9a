package stores

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skevingreen/ims-server/internal/models"
)

type SupplierStore struct {
	db *gorm.DB
}

func NewSupplierStore(db *gorm.DB) *SupplierStore {
	return &SupplierStore{db: db}
}

func (s *SupplierStore) List(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := s.db.WithContext(ctx).Find(&suppliers).Error; err != nil {
		return nil, translate(err)
	}
	return suppliers, nil
}

func (s *SupplierStore) Create(ctx context.Context, supplier *models.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.NewString()
	}
	return translate(s.db.WithContext(ctx).Create(supplier).Error)
}

func (s *SupplierStore) Save(ctx context.Context, supplier *models.Supplier) error {
	return translate(s.db.WithContext(ctx).Save(supplier).Error)
}
