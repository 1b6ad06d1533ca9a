package models

import (
	"time"
)

// Category groups inventory items. The numeric categoryId is supplied by the
// caller and is what items reference; it is independent of the storage id.
type Category struct {
	ID           string     `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID   int64      `json:"categoryId" gorm:"not null;index"`
	CategoryName string     `json:"categoryName" gorm:"size:100;not null;uniqueIndex"`
	Description  string     `json:"description" gorm:"size:500;not null"`
	DateCreated  time.Time  `json:"dateCreated"`
	DateModified *time.Time `json:"dateModified,omitempty"`
}
