// Package httpv1 exposes the guild bank over HTTP. Routes are JSON in and
// JSON out; orchestrator error codes map onto HTTP status codes.
package httpv1

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ahgbank/gbank-api/internal/entities/wow"
	"github.com/ahgbank/gbank-api/internal/errors"
	"github.com/ahgbank/gbank-api/internal/orchestrators/bank"
	"github.com/ahgbank/gbank-api/internal/orchestrators/enrichment"
	"github.com/ahgbank/gbank-api/internal/repositories/roster"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	BankService       bank.Service
	EnrichmentService enrichment.Service
	RosterRepo        roster.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.BankService == nil {
		return errors.InvalidArgument("bank service cannot be nil")
	}
	if c.EnrichmentService == nil {
		return errors.InvalidArgument("enrichment service cannot be nil")
	}
	if c.RosterRepo == nil {
		return errors.InvalidArgument("roster repo cannot be nil")
	}
	return nil
}

// Handler handles HTTP requests for the guild bank.
type Handler struct {
	bankService       bank.Service
	enrichmentService enrichment.Service
	rosterRepo        roster.Repository
}

// NewHandler creates a new HTTP handler.
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		bankService:       cfg.BankService,
		enrichmentService: cfg.EnrichmentService,
		rosterRepo:        cfg.RosterRepo,
	}, nil
}

// RegisterRoutes registers the bank routes under /v1.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	v1 := app.Group("/v1")

	bankGroup := v1.Group("/bank")
	bankGroup.Post("/parse", h.HandleParse)
	bankGroup.Get("/gold", h.HandleGold)
	bankGroup.Get("/updated", h.HandleUpdated)
	bankGroup.Get("/inventory", h.HandleInventory)

	items := v1.Group("/items")
	items.Get("/:itemID", h.HandleGetItem)
	items.Get("/:itemID/reserved", h.HandleItemReserved)

	rosterGroup := v1.Group("/roster")
	rosterGroup.Get("/characters", h.HandleListCharacters)
	rosterGroup.Post("/characters", h.HandleAddCharacter)
	rosterGroup.Delete("/characters/:name", h.HandleRemoveCharacter)
	rosterGroup.Get("/reserved", h.HandleListReserved)
	rosterGroup.Post("/reserved", h.HandleAddReserved)
}

// errorResponse maps an orchestrator error onto an HTTP status and JSON body.
func errorResponse(c *fiber.Ctx, err error) error {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= fiber.StatusInternalServerError {
		slog.ErrorContext(c.Context(), "request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": errors.GetMessage(err)})
}

type parseRequest struct {
	Data     string `json:"data"`
	Username string `json:"username"`
}

// HandleParse runs a full bank update from a pasted addon dump.
func (h *Handler) HandleParse(c *fiber.Ctx) error {
	var req parseRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, errors.InvalidArgument("request body must be JSON"))
	}

	out, err := h.bankService.ParseData(c.Context(), &bank.ParseDataInput{
		RawData:  req.Data,
		Username: req.Username,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"run_id":          out.RunID,
		"characters":      out.Characters,
		"distinct_items":  out.DistinctItems,
		"cache_hits":      out.CacheHits,
		"money":           moneyJSON(out.Money),
		"entries_written": out.EntriesWritten,
		"entries_deleted": out.EntriesDeleted,
		"save_errors":     out.SaveErrors,
	})
}

// HandleGold returns the aggregated money total.
func (h *Handler) HandleGold(c *fiber.Ctx) error {
	out, err := h.bankService.BankGold(c.Context(), &bank.BankGoldInput{})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(moneyJSON(out.Money))
}

// HandleUpdated returns who ran the last update and when.
func (h *Handler) HandleUpdated(c *fiber.Ctx) error {
	out, err := h.bankService.GetLastUpdated(c.Context(), &bank.GetLastUpdatedInput{})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"username":  out.Provenance.Username,
		"timestamp": out.Provenance.Timestamp.Format(time.RFC3339),
	})
}

// HandleInventory returns every inventory record with cached item metadata.
func (h *Handler) HandleInventory(c *fiber.Ctx) error {
	out, err := h.bankService.ListInventory(c.Context(), &bank.ListInventoryInput{})
	if err != nil {
		return errorResponse(c, err)
	}

	entries := make([]fiber.Map, 0, len(out.Entries))
	for _, entry := range out.Entries {
		m := fiber.Map{
			"character": entry.Record.Character,
			"item_id":   entry.Record.ItemID,
			"count":     entry.Record.Count,
		}
		if entry.Metadata != nil {
			m["item"] = entry.Metadata
		}
		entries = append(entries, m)
	}

	return c.JSON(fiber.Map{"entries": entries})
}

// HandleGetItem resolves one item id, fetching and caching it if needed.
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	out, err := h.enrichmentService.Resolve(c.Context(), &enrichment.ResolveInput{
		ItemID: c.Params("itemID"),
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(out.Item)
}

// HandleItemReserved reports whether an item id is flagged as reserved.
func (h *Handler) HandleItemReserved(c *fiber.Ctx) error {
	out, err := h.bankService.IsItemReserved(c.Context(), &bank.IsItemReservedInput{
		ItemID: c.Params("itemID"),
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"reserved": out.Reserved})
}

// HandleListCharacters returns the character allow-list.
func (h *Handler) HandleListCharacters(c *fiber.Ctx) error {
	out, err := h.rosterRepo.ListCharacters(c.Context(), roster.ListCharactersInput{})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"characters": out.Names})
}

type characterRequest struct {
	Name string `json:"name"`
}

// HandleAddCharacter adds a character name to the allow-list.
func (h *Handler) HandleAddCharacter(c *fiber.Ctx) error {
	var req characterRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, errors.InvalidArgument("request body must be JSON"))
	}

	if _, err := h.rosterRepo.AddCharacter(c.Context(), roster.AddCharacterInput{Name: req.Name}); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"name": req.Name})
}

// HandleRemoveCharacter removes a character name from the allow-list.
func (h *Handler) HandleRemoveCharacter(c *fiber.Ctx) error {
	name := c.Params("name")
	if _, err := h.rosterRepo.RemoveCharacter(c.Context(), roster.RemoveCharacterInput{Name: name}); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListReserved returns all reserved item ids.
func (h *Handler) HandleListReserved(c *fiber.Ctx) error {
	out, err := h.rosterRepo.ListReservedItems(c.Context(), roster.ListReservedItemsInput{})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"item_ids": out.ItemIDs})
}

type reservedRequest struct {
	ItemID string `json:"item_id"`
}

// HandleAddReserved flags an item id as reserved.
func (h *Handler) HandleAddReserved(c *fiber.Ctx) error {
	var req reservedRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, errors.InvalidArgument("request body must be JSON"))
	}

	if _, err := h.rosterRepo.AddReservedItem(c.Context(), roster.AddReservedItemInput{ItemID: req.ItemID}); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item_id": req.ItemID})
}

func moneyJSON(m wow.Money) fiber.Map {
	return fiber.Map{
		"gold":         m.Gold,
		"silver":       m.Silver,
		"copper":       m.Copper,
		"total_copper": m.TotalCopper(),
	}
}
