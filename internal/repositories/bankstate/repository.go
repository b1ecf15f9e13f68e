// Package bankstate provides the interface for the singleton bank documents:
// the aggregated money total and the last-updated provenance record.
package bankstate

import (
	"context"

	"github.com/ahgbank/gbank-api/internal/entities/wow"
)

// Repository defines the interface for bank state persistence.
type Repository interface {
	// GetMoney retrieves the aggregated money total.
	// A bank that has never been saved reads as zero, not as an error.
	// Returns errors.Internal for storage failures
	GetMoney(ctx context.Context, input GetMoneyInput) (*GetMoneyOutput, error)

	// MergeMoney merge-writes the gold/silver/copper fields, leaving any
	// other fields on the document untouched.
	// Returns errors.Internal for storage failures
	MergeMoney(ctx context.Context, input MergeMoneyInput) (*MergeMoneyOutput, error)

	// GetProvenance retrieves who ran the last update and when
	// Returns errors.NotFound if no update has ever been recorded
	// Returns errors.Internal for storage failures
	GetProvenance(ctx context.Context, input GetProvenanceInput) (*GetProvenanceOutput, error)

	// SetProvenance overwrites the provenance record with the given
	// username and a repository-generated timestamp
	// Returns errors.InvalidArgument for empty usernames
	// Returns errors.Internal for storage failures
	SetProvenance(ctx context.Context, input SetProvenanceInput) (*SetProvenanceOutput, error)
}

// GetMoneyInput defines the input for reading the money total
type GetMoneyInput struct{}

// GetMoneyOutput defines the output for reading the money total
type GetMoneyOutput struct {
	Money wow.Money
}

// MergeMoneyInput defines the input for merge-writing the money total
type MergeMoneyInput struct {
	Money wow.Money
}

// MergeMoneyOutput defines the output for merge-writing the money total
type MergeMoneyOutput struct{}

// GetProvenanceInput defines the input for reading the provenance record
type GetProvenanceInput struct{}

// GetProvenanceOutput defines the output for reading the provenance record
type GetProvenanceOutput struct {
	Provenance *wow.Provenance
}

// SetProvenanceInput defines the input for overwriting the provenance record
type SetProvenanceInput struct {
	Username string
}

// SetProvenanceOutput defines the output for overwriting the provenance record
type SetProvenanceOutput struct {
	Provenance *wow.Provenance
}
