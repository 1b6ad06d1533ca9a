package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skevingreen/ims-server/internal/models"
	"github.com/skevingreen/ims-server/internal/sequence"
	"github.com/skevingreen/ims-server/internal/validation"
)

// SupplierStore is the persistence surface the supplier service needs.
type SupplierStore interface {
	List(ctx context.Context) ([]models.Supplier, error)
	Create(ctx context.Context, supplier *models.Supplier) error
	Save(ctx context.Context, supplier *models.Supplier) error
}

// SupplierService validates payloads and assigns each new supplier its
// numeric id from the supplierId sequence.
type SupplierService struct {
	store SupplierStore
	ids   sequence.Generator
}

func NewSupplierService(store SupplierStore, ids sequence.Generator) *SupplierService {
	return &SupplierService{store: store, ids: ids}
}

func (s *SupplierService) List(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing suppliers: %w", err)
	}
	return suppliers, nil
}

// Create validates the payload, draws the next supplierId, then persists.
// The payload cannot carry a supplierId, and if the sequence fails nothing
// is written.
func (s *SupplierService) Create(ctx context.Context, payload validation.AddSupplier) (*models.Supplier, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	supplierID, err := s.ids.NextID(ctx, sequence.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("assigning supplierId: %w", err)
	}

	supplier := models.Supplier{
		SupplierID:         supplierID,
		SupplierName:       *payload.SupplierName,
		ContactInformation: *payload.ContactInformation,
		Address:            *payload.Address,
		DateCreated:        time.Now().UTC(),
	}

	if err := s.store.Create(ctx, &supplier); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, &ConflictError{Entity: "Supplier", Field: "supplierName"}
		}
		return nil, fmt.Errorf("creating supplier: %w", err)
	}
	return &supplier, nil
}

// Update saves an existing supplier, stamping DateModified. Every save after
// creation refreshes the timestamp.
func (s *SupplierService) Update(ctx context.Context, supplier *models.Supplier) error {
	now := time.Now().UTC()
	supplier.DateModified = &now

	if err := s.store.Save(ctx, supplier); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return &ConflictError{Entity: "Supplier", Field: "supplierName"}
		}
		return fmt.Errorf("updating supplier: %w", err)
	}
	return nil
}
