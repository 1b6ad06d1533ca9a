package models

import (
	"time"
)

// Supplier is a vendor record. SupplierID is never caller-supplied; it is
// assigned once at creation from the "supplierId" sequence.
type Supplier struct {
	ID                 string     `json:"id" gorm:"type:uuid;primaryKey"`
	SupplierID         int64      `json:"supplierId" gorm:"not null;uniqueIndex"`
	SupplierName       string     `json:"supplierName" gorm:"size:100;not null;uniqueIndex"`
	ContactInformation string     `json:"contactInformation" gorm:"size:12;not null"`
	Address            string     `json:"address" gorm:"size:100;not null"`
	DateCreated        time.Time  `json:"dateCreated"`
	DateModified       *time.Time `json:"dateModified,omitempty"`
}
