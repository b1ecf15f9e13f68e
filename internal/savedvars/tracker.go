package savedvars

import "strings"

// Tracker maintains the active character context while walking a dump line
// by line: which character section we are inside, whether that character is
// on the allow-list, and whether the cursor sits inside an equip section.
//
// The allow-list is matched case-insensitively. Equip sections describe
// currently worn gear and must never leak into bankable inventory, so
// extraction is only permitted outside them.
type Tracker struct {
	allowed map[string]struct{}

	name      string
	isAllowed bool
	inEquip   bool
}

// NewTracker creates a tracker over a set of lowercase allowed names.
func NewTracker(allowed map[string]struct{}) *Tracker {
	return &Tracker{allowed: allowed}
}

// Observe advances the tracker state for one classified line.
// A character header always resets equip tracking, even for disallowed
// characters, so state cannot leak across character boundaries.
func (t *Tracker) Observe(tok Token) {
	switch tok.Kind {
	case KindCharacterHeader:
		t.name = tok.Name
		_, t.isAllowed = t.allowed[strings.ToLower(tok.Name)]
		t.inEquip = false
	case KindEquipOpen:
		// An equip table that closes on its own line leaves no section
		// to track.
		t.inEquip = !tok.Closes
	case KindSectionClose:
		if t.inEquip {
			t.inEquip = false
		}
	}
}

// Extractable reports whether field extraction may happen right now, and
// for which character: one must be active, allow-listed, and the cursor
// must not be inside an equip section.
func (t *Tracker) Extractable() (string, bool) {
	if t.name == "" || !t.isAllowed || t.inEquip {
		return "", false
	}
	return t.name, true
}

// InEquipSection reports whether the cursor is inside an equip section.
func (t *Tracker) InEquipSection() bool {
	return t.inEquip
}
