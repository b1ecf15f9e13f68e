package wow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahgbank/gbank-api/internal/entities/wow"
)

func TestMoneyFromCopper(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		want  wow.Money
	}{
		{name: "zero", total: 0, want: wow.Money{}},
		{name: "copper only", total: 99, want: wow.Money{Copper: 99}},
		{name: "exact silver", total: 100, want: wow.Money{Silver: 1}},
		{name: "exact gold", total: 10000, want: wow.Money{Gold: 1}},
		{name: "mixed", total: 150000, want: wow.Money{Gold: 15}},
		{name: "all units", total: 249999, want: wow.Money{Gold: 24, Silver: 99, Copper: 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wow.MoneyFromCopper(tt.total)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.total, got.TotalCopper(), "decomposition must be lossless")
		})
	}
}

func TestLedgerTotalMoney(t *testing.T) {
	ledger := wow.Ledger{
		"Thrall": &wow.Holdings{Money: 150000},
		"Jaina":  &wow.Holdings{Money: 99999},
	}
	assert.Equal(t, int64(249999), ledger.TotalMoney())

	assert.Zero(t, wow.Ledger{}.TotalMoney())
}

func TestQualityFromLabel(t *testing.T) {
	assert.Equal(t, wow.QualityLegendary, wow.QualityFromLabel("Legendary"))
	assert.Equal(t, wow.QualityPoor, wow.QualityFromLabel("Poor"))
	assert.Equal(t, wow.QualityCommon, wow.QualityFromLabel("something else"))
}

func TestPlaceholderItem(t *testing.T) {
	item := wow.PlaceholderItem("6948")

	assert.Equal(t, "6948", item.ItemID)
	assert.Equal(t, "Unknown Item (6948)", item.Name)
	assert.Equal(t, wow.QualityCommon, item.Quality)
	assert.Empty(t, item.Icon)
	assert.Equal(t, "#", item.URL)
}
