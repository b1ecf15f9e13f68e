// Package wow implements the World of Warcraft guild bank entities
package wow

import "fmt"

// Quality is the item quality ordinal as shown on Wowhead (Poor..Legendary).
type Quality int32

// Item qualities
const (
	QualityPoor      Quality = 0
	QualityCommon    Quality = 1
	QualityUncommon  Quality = 2
	QualityRare      Quality = 3
	QualityEpic      Quality = 4
	QualityLegendary Quality = 5
)

var qualityLabels = map[string]Quality{
	"Poor":      QualityPoor,
	"Common":    QualityCommon,
	"Uncommon":  QualityUncommon,
	"Rare":      QualityRare,
	"Epic":      QualityEpic,
	"Legendary": QualityLegendary,
}

// QualityFromLabel maps a Wowhead quality label to its ordinal.
// Unrecognized labels default to Common.
func QualityFromLabel(label string) Quality {
	if q, ok := qualityLabels[label]; ok {
		return q
	}
	return QualityCommon
}

// ScrapedItem is the cached descriptive metadata for an item id.
// Created on first successful enrichment and refreshed by idempotent upserts.
type ScrapedItem struct {
	ItemID  string  `json:"item_id"`
	Name    string  `json:"name"`
	Quality Quality `json:"quality"`
	Icon    string  `json:"icon"` // base64 data URI, empty for placeholders
	URL     string  `json:"url"`
}

// PlaceholderItem is the degraded record returned when enrichment fails.
func PlaceholderItem(itemID string) *ScrapedItem {
	return &ScrapedItem{
		ItemID:  itemID,
		Name:    fmt.Sprintf("Unknown Item (%s)", itemID),
		Quality: QualityCommon,
		Icon:    "",
		URL:     "#",
	}
}
