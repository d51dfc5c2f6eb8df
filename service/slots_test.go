package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotPayout_Triples(t *testing.T) {
	tests := []struct {
		name   string
		reels  [3]string
		stake  int64
		payout int64
	}{
		{"triple sevens", [3]string{"7️⃣", "7️⃣", "7️⃣"}, 100, 10000},
		{"triple diamonds", [3]string{"💎", "💎", "💎"}, 100, 5000},
		{"triple stars", [3]string{"⭐", "⭐", "⭐"}, 100, 2500},
		{"triple grapes", [3]string{"🍇", "🍇", "🍇"}, 100, 1000},
		{"triple cherries", [3]string{"🍒", "🍒", "🍒"}, 100, 1000},
		{"triple lemons", [3]string{"🍋", "🍋", "🍋"}, 100, 1000},
		{"triple oranges", [3]string{"🍊", "🍊", "🍊"}, 100, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.payout, slotPayout(tt.reels, tt.stake))
		})
	}
}

func TestSlotPayout_Pair(t *testing.T) {
	assert.Equal(t, int64(200), slotPayout([3]string{"🍒", "🍒", "🍋"}, 100))
	assert.Equal(t, int64(200), slotPayout([3]string{"🍒", "🍋", "🍒"}, 100))
	assert.Equal(t, int64(200), slotPayout([3]string{"🍋", "🍒", "🍒"}, 100))
}

func TestSlotPayout_NoMatch(t *testing.T) {
	assert.Equal(t, int64(0), slotPayout([3]string{"🍒", "🍋", "🍊"}, 100))
}

func TestSpinReels_ValidSymbols(t *testing.T) {
	valid := make(map[string]bool)
	for _, s := range slotSymbols {
		valid[s.symbol] = true
	}

	for i := 0; i < 100; i++ {
		reels := spinReels()
		for _, symbol := range reels {
			assert.True(t, valid[symbol], "unexpected symbol %q", symbol)
		}
	}
}
