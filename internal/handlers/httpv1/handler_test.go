package httpv1_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ahgbank/gbank-api/internal/entities/wow"
	"github.com/ahgbank/gbank-api/internal/errors"
	"github.com/ahgbank/gbank-api/internal/handlers/httpv1"
	"github.com/ahgbank/gbank-api/internal/orchestrators/bank"
	bankmock "github.com/ahgbank/gbank-api/internal/orchestrators/bank/mock"
	"github.com/ahgbank/gbank-api/internal/orchestrators/enrichment"
	enrichmentmock "github.com/ahgbank/gbank-api/internal/orchestrators/enrichment/mock"
	"github.com/ahgbank/gbank-api/internal/repositories/roster"
	"github.com/ahgbank/gbank-api/internal/testutils"
)

func setupTestApp(t *testing.T) (*fiber.App, *bankmock.MockService, *enrichmentmock.MockService, roster.Repository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockBank := bankmock.NewMockService(ctrl)
	mockEnrichment := enrichmentmock.NewMockService(ctrl)

	client, cleanup := testutils.CreateTestRedisClient(t)
	t.Cleanup(cleanup)
	rosterRepo, err := roster.NewRedis(&roster.RedisConfig{Client: client})
	require.NoError(t, err)

	handler, err := httpv1.NewHandler(&httpv1.Config{
		BankService:       mockBank,
		EnrichmentService: mockEnrichment,
		RosterRepo:        rosterRepo,
	})
	require.NoError(t, err)

	app := fiber.New()
	handler.RegisterRoutes(app)
	return app, mockBank, mockEnrichment, rosterRepo
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&m))
	return m
}

func TestHandleParse(t *testing.T) {
	app, mockBank, _, _ := setupTestApp(t)

	mockBank.EXPECT().
		ParseData(gomock.Any(), &bank.ParseDataInput{RawData: "dump", Username: "guildmaster"}).
		Return(&bank.ParseDataOutput{
			RunID:          "run_1",
			Characters:     []string{"Thrall"},
			DistinctItems:  1,
			Money:          wow.Money{Gold: 15},
			EntriesWritten: 1,
		}, nil)

	req := httptest.NewRequest("POST", "/v1/bank/parse",
		strings.NewReader(`{"data":"dump","username":"guildmaster"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "run_1", body["run_id"])
	assert.Equal(t, float64(1), body["entries_written"])
}

func TestHandleParseValidationError(t *testing.T) {
	app, mockBank, _, _ := setupTestApp(t)

	mockBank.EXPECT().
		ParseData(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("raw data is required"))

	req := httptest.NewRequest("POST", "/v1/bank/parse", strings.NewReader(`{"username":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "raw data is required", body["error"])
}

func TestHandleGold(t *testing.T) {
	app, mockBank, _, _ := setupTestApp(t)

	mockBank.EXPECT().
		BankGold(gomock.Any(), gomock.Any()).
		Return(&bank.BankGoldOutput{Money: wow.Money{Gold: 24, Silver: 99, Copper: 99}}, nil)

	req := httptest.NewRequest("GET", "/v1/bank/gold", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, float64(24), body["gold"])
	assert.Equal(t, float64(99), body["silver"])
	assert.Equal(t, float64(99), body["copper"])
	assert.Equal(t, float64(249999), body["total_copper"])
}

func TestHandleUpdated(t *testing.T) {
	app, mockBank, _, _ := setupTestApp(t)

	ts := time.Date(2024, 3, 15, 20, 30, 0, 0, time.UTC)
	mockBank.EXPECT().
		GetLastUpdated(gomock.Any(), gomock.Any()).
		Return(&bank.GetLastUpdatedOutput{
			Provenance: &wow.Provenance{Username: "guildmaster", Timestamp: ts},
		}, nil)

	req := httptest.NewRequest("GET", "/v1/bank/updated", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "guildmaster", body["username"])
	assert.Equal(t, "2024-03-15T20:30:00Z", body["timestamp"])
}

func TestHandleUpdatedNeverRun(t *testing.T) {
	app, mockBank, _, _ := setupTestApp(t)

	mockBank.EXPECT().
		GetLastUpdated(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no update has been recorded yet"))

	req := httptest.NewRequest("GET", "/v1/bank/updated", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleInventory(t *testing.T) {
	app, mockBank, _, _ := setupTestApp(t)

	mockBank.EXPECT().
		ListInventory(gomock.Any(), gomock.Any()).
		Return(&bank.ListInventoryOutput{
			Entries: []bank.InventoryEntry{
				{
					Record: wow.InventoryEntry{Character: "Thrall", ItemID: 12345, Count: 3},
					Metadata: &wow.ScrapedItem{
						ItemID:  "12345",
						Name:    "Cured Ham Steak",
						Quality: wow.QualityCommon,
					},
				},
				{
					Record: wow.InventoryEntry{Character: "Thrall", ItemID: 19019, Count: 1},
				},
			},
		}, nil)

	req := httptest.NewRequest("GET", "/v1/bank/inventory", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	entries := body["entries"].([]any)
	require.Len(t, entries, 2)

	first := entries[0].(map[string]any)
	assert.Equal(t, "Thrall", first["character"])
	assert.Equal(t, "Cured Ham Steak", first["item"].(map[string]any)["name"])

	second := entries[1].(map[string]any)
	_, hasItem := second["item"]
	assert.False(t, hasItem, "records without cached metadata carry no item field")
}

func TestHandleGetItem(t *testing.T) {
	app, _, mockEnrichment, _ := setupTestApp(t)

	mockEnrichment.EXPECT().
		Resolve(gomock.Any(), &enrichment.ResolveInput{ItemID: "19019"}).
		Return(&enrichment.ResolveOutput{
			Item: &wow.ScrapedItem{
				ItemID:  "19019",
				Name:    "Thunderfury, Blessed Blade of the Windseeker",
				Quality: wow.QualityLegendary,
			},
		}, nil)

	req := httptest.NewRequest("GET", "/v1/items/19019", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Thunderfury, Blessed Blade of the Windseeker", body["name"])
	assert.Equal(t, float64(wow.QualityLegendary), body["quality"])
}

func TestHandleItemReserved(t *testing.T) {
	app, mockBank, _, _ := setupTestApp(t)

	mockBank.EXPECT().
		IsItemReserved(gomock.Any(), &bank.IsItemReservedInput{ItemID: "19019"}).
		Return(&bank.IsItemReservedOutput{Reserved: true}, nil)

	req := httptest.NewRequest("GET", "/v1/items/19019/reserved", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["reserved"])
}

func TestRosterCharacterLifecycle(t *testing.T) {
	app, _, _, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/v1/roster/characters", strings.NewReader(`{"name":"Thrall"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	// Duplicate add conflicts.
	req = httptest.NewRequest("POST", "/v1/roster/characters", strings.NewReader(`{"name":"Thrall"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)

	req = httptest.NewRequest("GET", "/v1/roster/characters", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, []any{"Thrall"}, body["characters"])

	req = httptest.NewRequest("DELETE", "/v1/roster/characters/Thrall", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)

	req = httptest.NewRequest("DELETE", "/v1/roster/characters/Thrall", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestRosterReserved(t *testing.T) {
	app, _, _, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/v1/roster/reserved", strings.NewReader(`{"item_id":"19019"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	req = httptest.NewRequest("GET", "/v1/roster/reserved", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, []any{"19019"}, body["item_ids"])
}
