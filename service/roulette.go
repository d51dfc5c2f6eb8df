package service

import (
	"math/rand"
	"strconv"
)

// American wheel: 0, 00 and 1-36. The house numbers satisfy no outside bet.
var rouletteSlots = func() []string {
	slots := []string{"0", "00"}
	for i := 1; i <= 36; i++ {
		slots = append(slots, strconv.Itoa(i))
	}
	return slots
}()

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// validRouletteChoice reports whether a choice is in the recognized set:
// red, black, odd, even, low, high, or an exact slot (0-36, 00). Checked at
// validation time, before any lock or debit.
func validRouletteChoice(choice string) bool {
	switch choice {
	case "red", "black", "odd", "even", "low", "high", "0", "00":
		return true
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > 36 {
		return false
	}
	// Only canonical numerals match drawn slots, so "07" or "+7" must
	// not validate.
	return strconv.Itoa(n) == choice
}

// spinWheel draws one uniformly random wheel slot
func spinWheel() string {
	return rouletteSlots[rand.Intn(len(rouletteSlots))]
}

// roulettePayout computes the payout for a spin. Exact slot match pays 35x;
// a correct color, parity or range pays 2x; 0 and 00 lose every outside bet.
func roulettePayout(choice, result string, stake int64) int64 {
	if choice == result {
		return stake * 35
	}

	if result == "0" || result == "00" {
		return 0
	}

	n, err := strconv.Atoi(result)
	if err != nil {
		return 0
	}

	switch choice {
	case "red":
		if redNumbers[n] {
			return stake * 2
		}
	case "black":
		if !redNumbers[n] {
			return stake * 2
		}
	case "odd":
		if n%2 == 1 {
			return stake * 2
		}
	case "even":
		if n%2 == 0 {
			return stake * 2
		}
	case "low":
		if n >= 1 && n <= 18 {
			return stake * 2
		}
	case "high":
		if n >= 19 && n <= 36 {
			return stake * 2
		}
	}

	return 0
}
