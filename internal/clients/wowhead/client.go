// Package wowhead is the client for the Wowhead classic item pages.
//
// Wowhead exposes each item as an XML page (item=<id>&xml) and serves the
// item icons from a separate asset host. Both are wrapped behind one
// interface so the enrichment resolver can be tested without the network.
package wowhead

//go:generate mockgen -destination=mock/mock_client.go -package=wowheadmock github.com/ahgbank/gbank-api/internal/clients/wowhead Client

import (
	"context"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ahgbank/gbank-api/internal/errors"
)

// Browser-like User-Agent; Wowhead rejects obvious bot requests.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ItemData is the raw metadata scraped from an item page.
type ItemData struct {
	ItemID  string
	Name    string
	Quality string // quality label, e.g. "Epic"
	Icon    string // icon asset key, e.g. "inv_sword_39"
	URL     string
}

// Client defines the interface for Wowhead interactions
type Client interface {
	// GetItem fetches and parses the XML page for an item id
	GetItem(ctx context.Context, itemID string) (*ItemData, error)

	// GetIconData fetches an icon by asset key and returns it encoded
	// as a base64 JPEG data URI
	GetIconData(ctx context.Context, icon string) (string, error)
}

// Config contains configuration options for the Wowhead client.
type Config struct {
	// BaseURL for the XML item pages (optional, defaults to https://classic.wowhead.com)
	BaseURL string
	// PageBaseURL for the canonical item URL stored with each record
	// (optional, defaults to https://www.wowhead.com/classic)
	PageBaseURL string
	// IconBaseURL for the icon assets (optional, defaults to
	// https://wow.zamimg.com/images/wow/icons/large)
	IconBaseURL string
	// HTTPTimeout for requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://classic.wowhead.com"
	}
	if cfg.PageBaseURL == "" {
		cfg.PageBaseURL = "https://www.wowhead.com/classic"
	}
	if cfg.IconBaseURL == "" {
		cfg.IconBaseURL = "https://wow.zamimg.com/images/wow/icons/large"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	return nil
}

type client struct {
	baseURL     string
	pageBaseURL string
	iconBaseURL string
	httpClient  *http.Client
}

// New creates a new Wowhead client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:     cfg.BaseURL,
		pageBaseURL: cfg.PageBaseURL,
		iconBaseURL: cfg.IconBaseURL,
		httpClient:  httpClient,
	}, nil
}

// itemEnvelope mirrors the <wowhead> XML document.
type itemEnvelope struct {
	XMLName xml.Name     `xml:"wowhead"`
	Error   string       `xml:"error"`
	Item    *itemPayload `xml:"item"`
}

type itemPayload struct {
	Name    string `xml:"name"`
	Quality string `xml:"quality"`
	Icon    string `xml:"icon"`
}

func (c *client) GetItem(ctx context.Context, itemID string) (*ItemData, error) {
	if itemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}

	url := fmt.Sprintf("%s/item=%s&xml", c.baseURL, itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build item request for %s", itemID)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("failed to fetch item %s", itemID))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.NotFoundf("item %s not found", itemID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("unexpected status %d fetching item %s", resp.StatusCode, itemID)
	}

	var envelope itemEnvelope
	if err := xml.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrapf(err, "failed to parse item XML for %s", itemID)
	}

	// Wowhead reports unknown items inside a 200 response.
	if envelope.Error != "" || envelope.Item == nil {
		return nil, errors.NotFoundf("item %s not found", itemID)
	}

	return &ItemData{
		ItemID:  itemID,
		Name:    envelope.Item.Name,
		Quality: envelope.Item.Quality,
		Icon:    envelope.Item.Icon,
		URL:     fmt.Sprintf("%s/item=%s", c.pageBaseURL, itemID),
	}, nil
}

func (c *client) GetIconData(ctx context.Context, icon string) (string, error) {
	if icon == "" {
		return "", errors.InvalidArgument("icon key cannot be empty")
	}

	url := fmt.Sprintf("%s/%s.jpg", c.iconBaseURL, icon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrapf(err, "failed to build icon request for %s", icon)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("failed to fetch icon %s", icon))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return "", errors.NotFoundf("icon %s not found", icon)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Unavailablef("unexpected status %d fetching icon %s", resp.StatusCode, icon)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read icon %s", icon)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}
