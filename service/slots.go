package service

import (
	"math/rand"
)

// slotSymbols is the fixed reel table. Weights are relative draw odds;
// rarer symbols pay more on a triple.
var slotSymbols = []struct {
	symbol string
	weight int
}{
	{"🍒", 30},
	{"🍋", 25},
	{"🍊", 20},
	{"🍇", 15},
	{"💎", 5},
	{"⭐", 3},
	{"7️⃣", 2},
}

var slotTotalWeight = func() int {
	total := 0
	for _, s := range slotSymbols {
		total += s.weight
	}
	return total
}()

// spinReels draws three independent weighted symbols
func spinReels() [3]string {
	var reels [3]string
	for i := range reels {
		reels[i] = drawSymbol()
	}
	return reels
}

func drawSymbol() string {
	n := rand.Intn(slotTotalWeight)
	for _, s := range slotSymbols {
		n -= s.weight
		if n < 0 {
			return s.symbol
		}
	}
	return slotSymbols[len(slotSymbols)-1].symbol
}

// slotPayout computes the payout for a spin. Rules are mutually exclusive
// and exhaustive: a triple pays by symbol tier, any pair pays 2x, anything
// else pays nothing.
func slotPayout(reels [3]string, stake int64) int64 {
	if reels[0] == reels[1] && reels[1] == reels[2] {
		switch reels[0] {
		case "7️⃣":
			return stake * 100
		case "💎":
			return stake * 50
		case "⭐":
			return stake * 25
		default:
			return stake * 10
		}
	}

	if reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2] {
		return stake * 2
	}

	return 0
}
