package common

import (
	"fmt"
	"strings"
	"time"
)

// FormatAmount formats a currency amount with thousand separators
func FormatAmount(amount int64) string {
	str := fmt.Sprintf("%d", amount)
	if amount < 0 {
		return "-" + FormatAmount(-amount)
	}

	n := len(str)
	if n <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatNet formats a signed net result with an explicit sign
func FormatNet(net int64) string {
	if net >= 0 {
		return "+" + FormatAmount(net)
	}
	return FormatAmount(net)
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays
// in the user's local timezone. Format types: "t" = short time, "R" =
// relative time, "f" = short date/time.
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}
