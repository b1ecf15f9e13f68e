// Package bank implements the guild bank orchestrator. It drives the full
// update flow: parse a raw addon dump, aggregate the allow-listed holdings,
// enrich the item ids, and persist the result. It also serves the read side
// of the bank (gold total, provenance, inventory, reserved-item checks).
package bank

//go:generate mockgen -destination=mock/mock_service.go -package=bankmock github.com/ahgbank/gbank-api/internal/orchestrators/bank Service

import (
	"context"
	"log/slog"
	"sort"
	"strconv"

	"github.com/ahgbank/gbank-api/internal/entities/wow"
	"github.com/ahgbank/gbank-api/internal/errors"
	"github.com/ahgbank/gbank-api/internal/orchestrators/enrichment"
	"github.com/ahgbank/gbank-api/internal/pkg/idgen"
	"github.com/ahgbank/gbank-api/internal/repositories/bankstate"
	"github.com/ahgbank/gbank-api/internal/repositories/inventory"
	"github.com/ahgbank/gbank-api/internal/repositories/roster"
	"github.com/ahgbank/gbank-api/internal/repositories/scrapeditems"
	"github.com/ahgbank/gbank-api/internal/savedvars"
)

// Service defines the interface for guild bank operations
type Service interface {
	// ParseData runs a full bank update from a raw SavedVariables dump.
	// The parse itself is tolerant: malformed lines are skipped, and
	// persistence failures after aggregation are logged, not returned.
	ParseData(ctx context.Context, input *ParseDataInput) (*ParseDataOutput, error)

	// BankGold retrieves the aggregated money total
	BankGold(ctx context.Context, input *BankGoldInput) (*BankGoldOutput, error)

	// GetLastUpdated retrieves who ran the last update and when
	// Returns errors.NotFound if no update has ever run
	GetLastUpdated(ctx context.Context, input *GetLastUpdatedInput) (*GetLastUpdatedOutput, error)

	// IsItemReserved reports whether an item id is flagged as reserved
	IsItemReserved(ctx context.Context, input *IsItemReservedInput) (*IsItemReservedOutput, error)

	// ListInventory retrieves every inventory record, each joined with its
	// cached item metadata when available
	ListInventory(ctx context.Context, input *ListInventoryInput) (*ListInventoryOutput, error)
}

// Config holds the dependencies for the bank orchestrator
type Config struct {
	RosterRepo    roster.Repository
	InventoryRepo inventory.Repository
	BankStateRepo bankstate.Repository
	ItemRepo      scrapeditems.Repository
	ItemResolver  enrichment.Service
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.RosterRepo == nil {
		return errors.InvalidArgument("roster repo cannot be nil")
	}
	if c.InventoryRepo == nil {
		return errors.InvalidArgument("inventory repo cannot be nil")
	}
	if c.BankStateRepo == nil {
		return errors.InvalidArgument("bank state repo cannot be nil")
	}
	if c.ItemRepo == nil {
		return errors.InvalidArgument("item repo cannot be nil")
	}
	if c.ItemResolver == nil {
		return errors.InvalidArgument("item resolver cannot be nil")
	}
	if c.IDGenerator == nil {
		return errors.InvalidArgument("id generator cannot be nil")
	}
	return nil
}

type orchestrator struct {
	rosterRepo    roster.Repository
	inventoryRepo inventory.Repository
	bankStateRepo bankstate.Repository
	itemRepo      scrapeditems.Repository
	itemResolver  enrichment.Service
	idGen         idgen.Generator
}

// NewOrchestrator creates a new bank orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		rosterRepo:    cfg.RosterRepo,
		inventoryRepo: cfg.InventoryRepo,
		bankStateRepo: cfg.BankStateRepo,
		itemRepo:      cfg.ItemRepo,
		itemResolver:  cfg.ItemResolver,
		idGen:         cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) ParseData(ctx context.Context, input *ParseDataInput) (*ParseDataOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RawData == "" {
		return nil, errors.InvalidArgument("raw data is required")
	}
	if input.Username == "" {
		return nil, errors.InvalidArgument("username is required")
	}

	runID := o.idGen.Generate()
	log := slog.With("run_id", runID, "username", input.Username)
	log.InfoContext(ctx, "starting bank update", "raw_bytes", len(input.RawData))

	// The allow-list is reference data; without it nothing can be
	// attributed, so this failure does abort the run.
	allowed, err := o.rosterRepo.ListCharacters(ctx, roster.ListCharactersInput{})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load character allow-list")
	}

	result := savedvars.Parse(input.RawData, allowed.Names)

	resolved, err := o.itemResolver.ResolveAll(ctx, &enrichment.ResolveAllInput{ItemIDs: result.ItemIDs})
	if err != nil {
		return nil, errors.Wrap(err, "failed to enrich items")
	}

	entries := flattenLedger(ctx, result.Ledger)
	money := wow.MoneyFromCopper(result.TotalMoney())

	out := &ParseDataOutput{
		RunID:         runID,
		Characters:    characterNames(result.Ledger),
		DistinctItems: len(result.ItemIDs),
		CacheHits:     resolved.CacheHits,
		Money:         money,
	}

	// Aggregation succeeded; from here on failures are recorded in the
	// output and logged but do not fail the run.
	replaced, err := o.inventoryRepo.ReplaceAll(ctx, inventory.ReplaceAllInput{Entries: entries})
	if err != nil {
		log.ErrorContext(ctx, "failed to replace inventory", "error", err)
		out.SaveErrors++
	} else {
		out.EntriesWritten = replaced.Written
		out.EntriesDeleted = replaced.Deleted
		out.SaveErrors += replaced.Failed
	}

	if _, err := o.bankStateRepo.MergeMoney(ctx, bankstate.MergeMoneyInput{Money: money}); err != nil {
		log.ErrorContext(ctx, "failed to merge money total", "error", err)
		out.SaveErrors++
	}

	if _, err := o.bankStateRepo.SetProvenance(ctx, bankstate.SetProvenanceInput{Username: input.Username}); err != nil {
		log.ErrorContext(ctx, "failed to record provenance", "error", err)
		out.SaveErrors++
	}

	log.InfoContext(ctx, "bank update complete",
		"characters", len(out.Characters),
		"distinct_items", out.DistinctItems,
		"cache_hits", out.CacheHits,
		"entries_written", out.EntriesWritten,
		"save_errors", out.SaveErrors,
		"gold", money.Gold)

	return out, nil
}

// flattenLedger turns per-character holdings into sorted inventory entries.
// Item ids that cannot parse as integers are logged and dropped; they would
// be unrepresentable in the persisted documents.
func flattenLedger(ctx context.Context, ledger wow.Ledger) []wow.InventoryEntry {
	entries := make([]wow.InventoryEntry, 0, len(ledger))
	for name, holdings := range ledger {
		for itemID, count := range holdings.Items {
			id, err := strconv.ParseInt(itemID, 10, 64)
			if err != nil {
				slog.WarnContext(ctx, "skipping non-numeric item id", "item_id", itemID, "character", name)
				continue
			}
			entries = append(entries, wow.InventoryEntry{
				Character: name,
				ItemID:    id,
				Count:     count,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Character != entries[j].Character {
			return entries[i].Character < entries[j].Character
		}
		return entries[i].ItemID < entries[j].ItemID
	})

	return entries
}

func characterNames(ledger wow.Ledger) []string {
	names := make([]string, 0, len(ledger))
	for name := range ledger {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (o *orchestrator) BankGold(ctx context.Context, _ *BankGoldInput) (*BankGoldOutput, error) {
	money, err := o.bankStateRepo.GetMoney(ctx, bankstate.GetMoneyInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get money total")
	}

	return &BankGoldOutput{Money: money.Money}, nil
}

func (o *orchestrator) GetLastUpdated(ctx context.Context, _ *GetLastUpdatedInput) (*GetLastUpdatedOutput, error) {
	prov, err := o.bankStateRepo.GetProvenance(ctx, bankstate.GetProvenanceInput{})
	if err != nil {
		return nil, err
	}

	return &GetLastUpdatedOutput{Provenance: prov.Provenance}, nil
}

func (o *orchestrator) IsItemReserved(ctx context.Context, input *IsItemReservedInput) (*IsItemReservedOutput, error) {
	if input == nil || input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	reserved, err := o.rosterRepo.ListReservedItems(ctx, roster.ListReservedItemsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reserved items")
	}

	for _, id := range reserved.ItemIDs {
		if id == input.ItemID {
			return &IsItemReservedOutput{Reserved: true}, nil
		}
	}

	return &IsItemReservedOutput{Reserved: false}, nil
}

func (o *orchestrator) ListInventory(ctx context.Context, _ *ListInventoryInput) (*ListInventoryOutput, error) {
	records, err := o.inventoryRepo.ListAll(ctx, inventory.ListAllInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	ids := make([]string, 0, len(records.Entries))
	seen := make(map[string]struct{}, len(records.Entries))
	for _, entry := range records.Entries {
		id := strconv.FormatInt(entry.ItemID, 10)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	// Cache-only batch lookup; the read path never triggers remote fetches.
	metadata := make(map[string]*wow.ScrapedItem)
	if len(ids) > 0 {
		items, err := o.itemRepo.ListByIDs(ctx, scrapeditems.ListByIDsInput{ItemIDs: ids})
		if err != nil {
			// Metadata is a nicety here; serve the bare records if the
			// cache is unreadable.
			slog.WarnContext(ctx, "failed to load item metadata for listing", "error", err)
		} else {
			for _, item := range items.Items {
				metadata[item.ItemID] = item
			}
		}
	}

	out := &ListInventoryOutput{Entries: make([]InventoryEntry, 0, len(records.Entries))}
	for _, entry := range records.Entries {
		out.Entries = append(out.Entries, InventoryEntry{
			Record:   entry,
			Metadata: metadata[strconv.FormatInt(entry.ItemID, 10)],
		})
	}

	sort.Slice(out.Entries, func(i, j int) bool {
		a, b := out.Entries[i].Record, out.Entries[j].Record
		if a.Character != b.Character {
			return a.Character < b.Character
		}
		return a.ItemID < b.ItemID
	})

	return out, nil
}
