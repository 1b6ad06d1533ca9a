package models

import (
	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked product. CategoryID and SupplierID are logical
// references to Category.CategoryID and Supplier.SupplierID; they are stored
// by value and not enforced as foreign keys.
//
// Item dates are persisted as ISO-8601 strings, unlike the other entities
// which use a native timestamp column.
type InventoryItem struct {
	ID           string          `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID   int64           `json:"categoryId" gorm:"not null;index"`
	SupplierID   int64           `json:"supplierId" gorm:"not null;index"`
	Name         string          `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description  string          `json:"description" gorm:"size:500;not null"`
	Quantity     int64           `json:"quantity" gorm:"not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	DateCreated  string          `json:"dateCreated" gorm:"size:64;not null"`
	DateModified string          `json:"dateModified,omitempty" gorm:"size:64"`
}
