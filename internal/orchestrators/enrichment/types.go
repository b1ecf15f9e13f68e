package enrichment

import (
	"github.com/ahgbank/gbank-api/internal/entities/wow"
)

// ResolveInput defines the input for resolving a single item
type ResolveInput struct {
	ItemID string
}

// ResolveOutput defines the output for resolving a single item
type ResolveOutput struct {
	Item *wow.ScrapedItem
	// FromCache reports whether the record came from the item cache
	// rather than an upstream fetch
	FromCache bool
}

// ResolveAllInput defines the input for resolving a batch of items
type ResolveAllInput struct {
	ItemIDs []string
}

// ResolveAllOutput defines the output for resolving a batch of items
type ResolveAllOutput struct {
	// Items maps each requested item id to its resolved record
	Items map[string]*wow.ScrapedItem
	// CacheHits counts how many ids were served from the cache
	CacheHits int
}
