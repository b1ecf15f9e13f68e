package main

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ahgbank/gbank-api/internal/clients/wowhead"
	"github.com/ahgbank/gbank-api/internal/handlers/httpv1"
	"github.com/ahgbank/gbank-api/internal/orchestrators/bank"
	"github.com/ahgbank/gbank-api/internal/orchestrators/enrichment"
	"github.com/ahgbank/gbank-api/internal/pkg/idgen"
	redisclient "github.com/ahgbank/gbank-api/internal/redis"
	"github.com/ahgbank/gbank-api/internal/repositories/bankstate"
	"github.com/ahgbank/gbank-api/internal/repositories/inventory"
	"github.com/ahgbank/gbank-api/internal/repositories/roster"
	"github.com/ahgbank/gbank-api/internal/repositories/scrapeditems"
)

type config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	WowheadBaseURL     string        `env:"WOWHEAD_BASE_URL"`
	WowheadPageBaseURL string        `env:"WOWHEAD_PAGE_BASE_URL"`
	WowheadIconBaseURL string        `env:"WOWHEAD_ICON_BASE_URL"`
	WowheadTimeout     time.Duration `env:"WOWHEAD_TIMEOUT" envDefault:"30s"`

	EnrichmentConcurrency int `env:"ENRICHMENT_CONCURRENCY" envDefault:"8"`
}

func loadConfig() (*config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := &config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// services bundles everything the commands wire up from one config.
type services struct {
	handler *httpv1.Handler
	bank    bank.Service
}

func buildServices(cfg *config) (*services, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	rosterRepo, err := roster.NewRedis(&roster.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create roster repository: %w", err)
	}
	inventoryRepo, err := inventory.NewRedis(&inventory.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory repository: %w", err)
	}
	bankStateRepo, err := bankstate.NewRedis(&bankstate.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create bank state repository: %w", err)
	}
	itemRepo, err := scrapeditems.NewRedis(&scrapeditems.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create scraped items repository: %w", err)
	}

	wowheadClient, err := wowhead.New(&wowhead.Config{
		BaseURL:     cfg.WowheadBaseURL,
		PageBaseURL: cfg.WowheadPageBaseURL,
		IconBaseURL: cfg.WowheadIconBaseURL,
		HTTPTimeout: cfg.WowheadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create wowhead client: %w", err)
	}

	enrichmentService, err := enrichment.NewOrchestrator(&enrichment.Config{
		ItemRepo:      itemRepo,
		WowheadClient: wowheadClient,
		Concurrency:   cfg.EnrichmentConcurrency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create enrichment orchestrator: %w", err)
	}

	bankService, err := bank.NewOrchestrator(&bank.Config{
		RosterRepo:    rosterRepo,
		InventoryRepo: inventoryRepo,
		BankStateRepo: bankStateRepo,
		ItemRepo:      itemRepo,
		ItemResolver:  enrichmentService,
		IDGenerator:   idgen.NewUUID("run"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bank orchestrator: %w", err)
	}

	handler, err := httpv1.NewHandler(&httpv1.Config{
		BankService:       bankService,
		EnrichmentService: enrichmentService,
		RosterRepo:        rosterRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create http handler: %w", err)
	}

	return &services{
		handler: handler,
		bank:    bankService,
	}, nil
}
