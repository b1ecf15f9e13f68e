package savedvars

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies what a normalized dump line contains.
type Kind int

// Line kinds, in classification precedence order.
const (
	KindIrrelevant Kind = iota
	KindCharacterHeader
	KindEquipOpen
	KindSectionClose
	KindRace
	KindClass
	KindLevel
	KindItem
	KindMoney
)

// Token is the classified content of a single line. Only the fields
// relevant to the Kind are populated.
type Token struct {
	Kind   Kind
	Name   string // KindCharacterHeader
	Value  string // KindRace, KindClass
	Level  int32  // KindLevel
	ItemID string // KindItem, canonical string form
	Count  int64  // KindItem, defaults to 1
	Money  int64  // KindMoney
	Closes bool   // KindEquipOpen, the table opens and closes on the same line
}

var (
	// A character section opens with an 8-space-indented quoted key of
	// Unicode letters introducing a nested table.
	characterHeaderRegex = regexp.MustCompile(`^ {8}\["(\p{L}+)"\] = \{$`)

	raceRegex  = regexp.MustCompile(`\["race"\]\s*=\s*"([^"]+)",`)
	classRegex = regexp.MustCompile(`\["class"\]\s*=\s*"([^"]+)",`)
	levelRegex = regexp.MustCompile(`\["level"\]\s*=\s*(\d+),`)

	// Item strings carry the id plus seven colon-separated fields and an
	// optional ";count" suffix, either as an indexed table entry or bare.
	indexedItemRegex = regexp.MustCompile(`\[\d+\]\s*=\s*"(\d+)(?::\d+){7};?(\d*)"`)
	bareItemRegex    = regexp.MustCompile(`(\d+)(?::\d+){7};?(\d*)`)

	firstIntRegex = regexp.MustCompile(`\d+`)
)

// Classify recognizes a single normalized line. Structural markers win over
// field content; anything unrecognized is KindIrrelevant.
func Classify(line string) Token {
	if m := characterHeaderRegex.FindStringSubmatch(line); m != nil {
		return Token{Kind: KindCharacterHeader, Name: m[1]}
	}

	trimmed := strings.TrimSpace(line)

	// An empty one-line table ("= { },") opens and closes in one step.
	if strings.Contains(line, `["equip"]`) {
		return Token{Kind: KindEquipOpen, Closes: strings.HasSuffix(trimmed, "},")}
	}

	if strings.HasSuffix(trimmed, "},") || trimmed == "}" {
		return Token{Kind: KindSectionClose}
	}

	if m := raceRegex.FindStringSubmatch(line); m != nil {
		return Token{Kind: KindRace, Value: m[1]}
	}

	if m := classRegex.FindStringSubmatch(line); m != nil {
		return Token{Kind: KindClass, Value: m[1]}
	}

	if m := levelRegex.FindStringSubmatch(line); m != nil {
		level, err := strconv.ParseInt(m[1], 10, 32)
		if err != nil {
			return Token{Kind: KindIrrelevant}
		}
		return Token{Kind: KindLevel, Level: int32(level)}
	}

	if tok, ok := classifyItem(line); ok {
		return tok
	}

	if strings.Contains(line, "money") {
		if m := firstIntRegex.FindString(line); m != "" {
			money, err := strconv.ParseInt(m, 10, 64)
			if err == nil {
				return Token{Kind: KindMoney, Money: money}
			}
		}
	}

	return Token{Kind: KindIrrelevant}
}

// classifyItem matches the two accepted item-slot shapes: the indexed table
// form and the bare form. The bare form is only tried on lines without a
// leading index bracket so it cannot shadow other table entries.
func classifyItem(line string) (Token, bool) {
	m := indexedItemRegex.FindStringSubmatch(line)
	if m == nil && !strings.Contains(line, "[") {
		m = bareItemRegex.FindStringSubmatch(line)
	}
	if m == nil {
		return Token{}, false
	}

	count := int64(1)
	if m[2] != "" {
		parsed, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return Token{}, false
		}
		count = parsed
	}

	return Token{Kind: KindItem, ItemID: m[1], Count: count}, true
}
