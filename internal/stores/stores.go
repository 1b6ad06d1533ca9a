// Package stores holds the GORM-backed persistence for each entity. Stores
// translate driver errors into the service-level sentinels: a unique-index
// violation becomes services.ErrDuplicate and a missing record becomes
// services.ErrNotFound, so the services never see gorm error values.
package stores

import (
	"errors"

	"gorm.io/gorm"

	"github.com/skevingreen/ims-server/internal/services"
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return services.ErrDuplicate
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrNotFound
	}
	return err
}
