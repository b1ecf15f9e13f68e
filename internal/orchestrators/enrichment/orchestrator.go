// Package enrichment implements the item enrichment orchestrator. It resolves
// item ids to scraped metadata, serving from the item cache when possible and
// falling back to Wowhead for anything not yet seen.
package enrichment

//go:generate mockgen -destination=mock/mock_service.go -package=enrichmentmock github.com/ahgbank/gbank-api/internal/orchestrators/enrichment Service

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ahgbank/gbank-api/internal/clients/wowhead"
	"github.com/ahgbank/gbank-api/internal/entities/wow"
	"github.com/ahgbank/gbank-api/internal/errors"
	"github.com/ahgbank/gbank-api/internal/repositories/scrapeditems"
)

// DefaultConcurrency bounds how many Wowhead fetches run at once.
const DefaultConcurrency = 8

// Service defines the interface for item enrichment operations
type Service interface {
	// Resolve returns the metadata for one item id, fetching and caching
	// it on a cache miss. Failures degrade to a placeholder record rather
	// than an error, so a flaky upstream never blocks a bank update.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// ResolveAll resolves a batch of item ids concurrently and returns
	// once every id has a record (real or placeholder)
	ResolveAll(ctx context.Context, input *ResolveAllInput) (*ResolveAllOutput, error)
}

// Config holds the dependencies for the enrichment orchestrator
type Config struct {
	ItemRepo      scrapeditems.Repository
	WowheadClient wowhead.Client
	// Concurrency caps parallel upstream fetches (optional, defaults to 8)
	Concurrency int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.ItemRepo == nil {
		return errors.InvalidArgument("item repo cannot be nil")
	}
	if c.WowheadClient == nil {
		return errors.InvalidArgument("wowhead client cannot be nil")
	}
	if c.Concurrency == 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.Concurrency < 0 {
		return errors.InvalidArgument("concurrency cannot be negative")
	}
	return nil
}

type orchestrator struct {
	itemRepo      scrapeditems.Repository
	wowheadClient wowhead.Client
	concurrency   int
}

// NewOrchestrator creates a new enrichment orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		itemRepo:      cfg.ItemRepo,
		wowheadClient: cfg.WowheadClient,
		concurrency:   cfg.Concurrency,
	}, nil
}

func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil || input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	cached, err := o.itemRepo.Get(ctx, scrapeditems.GetInput{ItemID: input.ItemID})
	if err == nil {
		return &ResolveOutput{Item: cached.Item, FromCache: true}, nil
	}
	if !errors.IsNotFound(err) {
		// Degrade rather than fail: the cache being unreachable should
		// not abort a bank update.
		slog.WarnContext(ctx, "item cache read failed",
			"item_id", input.ItemID,
			"error", err)
	}

	return &ResolveOutput{Item: o.fetchAndCache(ctx, input.ItemID)}, nil
}

// fetchAndCache scrapes one item from Wowhead and stores it. Any failure in
// the fetch, the icon download, or the cache write yields a placeholder.
func (o *orchestrator) fetchAndCache(ctx context.Context, itemID string) *wow.ScrapedItem {
	data, err := o.wowheadClient.GetItem(ctx, itemID)
	if err != nil {
		slog.WarnContext(ctx, "item fetch failed, using placeholder",
			"item_id", itemID,
			"error", err)
		return wow.PlaceholderItem(itemID)
	}

	iconData, err := o.wowheadClient.GetIconData(ctx, data.Icon)
	if err != nil {
		slog.WarnContext(ctx, "icon fetch failed, using placeholder",
			"item_id", itemID,
			"icon", data.Icon,
			"error", err)
		return wow.PlaceholderItem(itemID)
	}

	item := &wow.ScrapedItem{
		ItemID:  itemID,
		Name:    data.Name,
		Quality: wow.QualityFromLabel(data.Quality),
		Icon:    iconData,
		URL:     data.URL,
	}

	if _, err := o.itemRepo.Upsert(ctx, scrapeditems.UpsertInput{Item: item}); err != nil {
		slog.WarnContext(ctx, "item cache write failed, using placeholder",
			"item_id", itemID,
			"error", err)
		return wow.PlaceholderItem(itemID)
	}

	return item
}

func (o *orchestrator) ResolveAll(ctx context.Context, input *ResolveAllInput) (*ResolveAllOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &ResolveAllOutput{Items: make(map[string]*wow.ScrapedItem, len(input.ItemIDs))}
	if len(input.ItemIDs) == 0 {
		return out, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for _, itemID := range input.ItemIDs {
		if itemID == "" {
			continue
		}
		itemID := itemID
		g.Go(func() error {
			resolved, err := o.Resolve(gctx, &ResolveInput{ItemID: itemID})
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			out.Items[itemID] = resolved.Item
			if resolved.FromCache {
				out.CacheHits++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to resolve items")
	}

	return out, nil
}
