package wow

import "time"

// CharacterSnapshot holds the per-character fields extracted from a dump.
// Rebuilt fully on each parse run; never persisted on its own.
type CharacterSnapshot struct {
	Name  string
	Race  string
	Class string
	Level int32
}

// Holdings is one character's bankable inventory: item id -> count plus
// the character's copper total. Item ids are canonical strings.
type Holdings struct {
	Items map[string]int64
	Money int64
}

// NewHoldings returns empty holdings.
func NewHoldings() *Holdings {
	return &Holdings{Items: make(map[string]int64)}
}

// Ledger maps character name to holdings for one parse run.
type Ledger map[string]*Holdings

// TotalMoney sums the money fields across all characters.
func (l Ledger) TotalMoney() int64 {
	var total int64
	for _, h := range l {
		total += h.Money
	}
	return total
}

// Money is a copper total decomposed into display units.
// 1 gold = 100 silver = 10000 copper.
type Money struct {
	Gold   int64 `json:"gold"`
	Silver int64 `json:"silver"`
	Copper int64 `json:"copper"`
}

// MoneyFromCopper decomposes a copper total.
// Invariant: Gold*10000 + Silver*100 + Copper == total for total >= 0.
func MoneyFromCopper(total int64) Money {
	return Money{
		Gold:   total / 10000,
		Silver: (total % 10000) / 100,
		Copper: total % 100,
	}
}

// TotalCopper recomposes the copper total.
func (m Money) TotalCopper() int64 {
	return m.Gold*10000 + m.Silver*100 + m.Copper
}

// InventoryEntry is one persisted (character, item) pair.
// The stored item id is numeric, matching the original document schema.
type InventoryEntry struct {
	Character string `json:"character"`
	ItemID    int64  `json:"item_id"`
	Count     int64  `json:"count"`
}

// Provenance records who ran the last update and when.
type Provenance struct {
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
}
