// Package scrapeditems provides the interface for the item metadata cache
package scrapeditems

import (
	"context"

	"github.com/ahgbank/gbank-api/internal/entities/wow"
)

// Repository defines the interface for scraped item persistence. Items are
// keyed by their canonical string id and shared read-mostly across runs:
// the enrichment resolver always looks here before any remote fetch.
type Repository interface {
	// Get retrieves a cached item by id
	// Returns errors.InvalidArgument for empty ids
	// Returns errors.NotFound if the item has never been scraped
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Upsert writes an item record, overwriting any previous version.
	// Idempotent: writing the same item twice is safe.
	// Returns errors.InvalidArgument for nil items or empty ids
	// Returns errors.Internal for storage failures
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)

	// ListByIDs retrieves cached items for a batch of ids.
	// Ids with no cached record are silently omitted from the result.
	// Returns errors.Internal for storage failures
	ListByIDs(ctx context.Context, input ListByIDsInput) (*ListByIDsOutput, error)
}

// GetInput defines the input for getting a cached item
type GetInput struct {
	ItemID string
}

// GetOutput defines the output for getting a cached item
type GetOutput struct {
	Item *wow.ScrapedItem
}

// UpsertInput defines the input for upserting a cached item
type UpsertInput struct {
	Item *wow.ScrapedItem
}

// UpsertOutput defines the output for upserting a cached item
type UpsertOutput struct {
	Item *wow.ScrapedItem
}

// ListByIDsInput defines the input for a batched item lookup
type ListByIDsInput struct {
	ItemIDs []string
}

// ListByIDsOutput defines the output for a batched item lookup
type ListByIDsOutput struct {
	Items []*wow.ScrapedItem
}
