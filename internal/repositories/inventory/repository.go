// Package inventory provides the interface for parsed inventory persistence
package inventory

import (
	"context"

	"github.com/ahgbank/gbank-api/internal/entities/wow"
)

// Repository defines the interface for inventory record persistence.
// Records are one document per (character, item) pair; a parse run replaces
// the whole collection.
type Repository interface {
	// ReplaceAll replaces the inventory collection with the given entries.
	// New documents are written before stale ones are deleted so concurrent
	// readers never observe an empty intermediate state. Individual
	// document failures are logged and skipped, not propagated.
	// Returns errors.Internal only when the existing index cannot be read
	ReplaceAll(ctx context.Context, input ReplaceAllInput) (*ReplaceAllOutput, error)

	// ListAll retrieves every inventory record
	// Returns errors.Internal for storage failures
	ListAll(ctx context.Context, input ListAllInput) (*ListAllOutput, error)
}

// ReplaceAllInput defines the input for replacing the inventory collection
type ReplaceAllInput struct {
	Entries []wow.InventoryEntry
}

// ReplaceAllOutput defines the output for replacing the inventory collection
type ReplaceAllOutput struct {
	Written int
	Deleted int
	Failed  int
}

// ListAllInput defines the input for listing inventory records
type ListAllInput struct{}

// ListAllOutput defines the output for listing inventory records
type ListAllOutput struct {
	Entries []wow.InventoryEntry
}
