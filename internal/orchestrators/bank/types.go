package bank

import (
	"github.com/ahgbank/gbank-api/internal/entities/wow"
)

// ParseDataInput defines the input for a full bank update
type ParseDataInput struct {
	// RawData is the raw SavedVariables dump pasted by the user
	RawData string
	// Username identifies who ran the update, for the provenance record
	Username string
}

// ParseDataOutput defines the output for a full bank update
type ParseDataOutput struct {
	// RunID identifies this update in the logs
	RunID string
	// Characters that contributed to the ledger, sorted
	Characters []string
	// DistinctItems counted across all characters
	DistinctItems int
	// CacheHits among the resolved items
	CacheHits int
	// Money is the persisted bank total
	Money wow.Money
	// EntriesWritten and EntriesDeleted report the inventory replacement
	EntriesWritten int
	EntriesDeleted int
	// SaveErrors counts persistence failures that were logged and skipped
	SaveErrors int
}

// BankGoldInput defines the input for reading the money total
type BankGoldInput struct{}

// BankGoldOutput defines the output for reading the money total
type BankGoldOutput struct {
	Money wow.Money
}

// GetLastUpdatedInput defines the input for reading the provenance record
type GetLastUpdatedInput struct{}

// GetLastUpdatedOutput defines the output for reading the provenance record
type GetLastUpdatedOutput struct {
	Provenance *wow.Provenance
}

// IsItemReservedInput defines the input for a reserved-item check
type IsItemReservedInput struct {
	ItemID string
}

// IsItemReservedOutput defines the output for a reserved-item check
type IsItemReservedOutput struct {
	Reserved bool
}

// ListInventoryInput defines the input for listing the inventory
type ListInventoryInput struct{}

// InventoryEntry is one inventory record joined with its cached metadata.
// Metadata is nil when the item could not be resolved.
type InventoryEntry struct {
	Record   wow.InventoryEntry
	Metadata *wow.ScrapedItem
}

// ListInventoryOutput defines the output for listing the inventory
type ListInventoryOutput struct {
	Entries []InventoryEntry
}
