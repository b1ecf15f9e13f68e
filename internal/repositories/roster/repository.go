// Package roster provides the interface for allow-list and reserved-item persistence
package roster

import (
	"context"
)

// Repository defines the interface for roster persistence. The roster is
// the reference data a parse run is filtered against: which characters may
// contribute to the ledger and which item ids are reserved.
type Repository interface {
	// ListCharacters retrieves all allow-listed character names
	// Returns errors.Internal for storage failures
	ListCharacters(ctx context.Context, input ListCharactersInput) (*ListCharactersOutput, error)

	// AddCharacter adds a character name to the allow-list
	// Returns errors.InvalidArgument for empty names
	// Returns errors.AlreadyExists if the name is already listed
	AddCharacter(ctx context.Context, input AddCharacterInput) (*AddCharacterOutput, error)

	// RemoveCharacter removes a character name from the allow-list
	// Returns errors.InvalidArgument for empty names
	// Returns errors.NotFound if the name is not listed
	RemoveCharacter(ctx context.Context, input RemoveCharacterInput) (*RemoveCharacterOutput, error)

	// ListReservedItems retrieves all reserved item ids (canonical strings)
	// Returns errors.Internal for storage failures
	ListReservedItems(ctx context.Context, input ListReservedItemsInput) (*ListReservedItemsOutput, error)

	// AddReservedItem flags an item id as reserved
	// Returns errors.InvalidArgument for empty ids
	AddReservedItem(ctx context.Context, input AddReservedItemInput) (*AddReservedItemOutput, error)
}

// ListCharactersInput defines the input for listing allowed characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the output for listing allowed characters
type ListCharactersOutput struct {
	// Names are case-preserving; callers match case-insensitively.
	Names []string
}

// AddCharacterInput defines the input for adding an allowed character
type AddCharacterInput struct {
	Name string
}

// AddCharacterOutput defines the output for adding an allowed character
type AddCharacterOutput struct{}

// RemoveCharacterInput defines the input for removing an allowed character
type RemoveCharacterInput struct {
	Name string
}

// RemoveCharacterOutput defines the output for removing an allowed character
type RemoveCharacterOutput struct{}

// ListReservedItemsInput defines the input for listing reserved items
type ListReservedItemsInput struct{}

// ListReservedItemsOutput defines the output for listing reserved items
type ListReservedItemsOutput struct {
	ItemIDs []string
}

// AddReservedItemInput defines the input for flagging a reserved item
type AddReservedItemInput struct {
	ItemID string
}

// AddReservedItemOutput defines the output for flagging a reserved item
type AddReservedItemOutput struct{}
