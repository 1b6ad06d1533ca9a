// Package sequence provides monotonic numeric id sequences keyed by name.
// Each sequence is backed by one row in the counters table; the increment
// and read happen in a single atomic statement, so concurrent callers always
// see distinct, strictly increasing values.
package sequence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// SupplierID is the sequence that assigns Supplier.SupplierID values.
const SupplierID = "supplierId"

// Generator hands out the next value of a named sequence.
type Generator interface {
	NextID(ctx context.Context, name string) (int64, error)
}

// PostgresGenerator increments a counter row with an upsert. The first call
// for a name creates the row at 1; later calls bump and return the new value.
// There is no non-atomic fallback: if the statement fails, the caller gets an
// error and no id.
type PostgresGenerator struct {
	db *gorm.DB
}

func NewPostgresGenerator(db *gorm.DB) *PostgresGenerator {
	return &PostgresGenerator{db: db}
}

func (g *PostgresGenerator) NextID(ctx context.Context, name string) (int64, error) {
	var seq int64
	err := g.db.WithContext(ctx).Raw(
		`INSERT INTO counters (name, seq) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		 RETURNING seq`,
		name,
	).Scan(&seq).Error
	if err != nil {
		return 0, fmt.Errorf("sequence %q increment failed: %w", name, err)
	}
	return seq, nil
}
