package savedvars

import (
	"sort"
	"strings"

	"github.com/ahgbank/gbank-api/internal/entities/wow"
)

// hearthstoneItemID is excluded unconditionally: every character carries
// one and it is not bankable.
const hearthstoneItemID = "6948"

// Result is the output of one aggregation run.
type Result struct {
	// Ledger maps character name to accumulated items and money.
	Ledger wow.Ledger
	// Snapshots holds the race/class/level fields seen per character.
	Snapshots map[string]*wow.CharacterSnapshot
	// ItemIDs are the distinct item ids encountered, sorted.
	ItemIDs []string
}

// TotalMoney sums money across all characters in the ledger.
func (r *Result) TotalMoney() int64 {
	return r.Ledger.TotalMoney()
}

// Aggregator accumulates per-character item counts and currency totals
// across a line stream. It owns the in-progress ledger for exactly one run;
// create a fresh one per parse.
type Aggregator struct {
	tracker   *Tracker
	ledger    wow.Ledger
	snapshots map[string]*wow.CharacterSnapshot
	itemIDs   map[string]struct{}
}

// NewAggregator creates an aggregator filtering on the given allow-list.
// Names are matched case-insensitively.
func NewAggregator(allowList []string) *Aggregator {
	allowed := make(map[string]struct{}, len(allowList))
	for _, name := range allowList {
		allowed[strings.ToLower(name)] = struct{}{}
	}

	return &Aggregator{
		tracker:   NewTracker(allowed),
		ledger:    make(wow.Ledger),
		snapshots: make(map[string]*wow.CharacterSnapshot),
		itemIDs:   make(map[string]struct{}),
	}
}

// ProcessLine consumes one normalized line. Lines must be fed strictly in
// input order since the tracker state depends on prior lines. Malformed
// lines classify as irrelevant and are skipped without error.
func (a *Aggregator) ProcessLine(line string) {
	tok := Classify(line)
	a.tracker.Observe(tok)

	name, ok := a.tracker.Extractable()
	if !ok {
		return
	}

	holdings := a.ledger[name]
	if holdings == nil {
		holdings = wow.NewHoldings()
		a.ledger[name] = holdings
	}
	snap := a.snapshots[name]
	if snap == nil {
		snap = &wow.CharacterSnapshot{Name: name}
		a.snapshots[name] = snap
	}

	switch tok.Kind {
	case KindRace:
		snap.Race = tok.Value
	case KindClass:
		snap.Class = tok.Value
	case KindLevel:
		snap.Level = tok.Level
	case KindItem:
		if tok.ItemID == hearthstoneItemID {
			return
		}
		holdings.Items[tok.ItemID] += tok.Count
		a.itemIDs[tok.ItemID] = struct{}{}
	case KindMoney:
		holdings.Money += tok.Money
	}
}

// Result finalizes the run and hands the ledger off wholesale.
func (a *Aggregator) Result() *Result {
	ids := make([]string, 0, len(a.itemIDs))
	for id := range a.itemIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Result{
		Ledger:    a.ledger,
		Snapshots: a.snapshots,
		ItemIDs:   ids,
	}
}

// Parse normalizes a raw dump and aggregates it in one pass.
func Parse(raw string, allowList []string) *Result {
	agg := NewAggregator(allowList)
	for _, line := range Normalize(raw) {
		agg.ProcessLine(line)
	}
	return agg.Result()
}
