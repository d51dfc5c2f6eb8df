package gambling

import (
	"fmt"
	"strings"

	"killfeed/bot/common"
	"killfeed/models"

	"github.com/bwmarrin/discordgo"
)

const (
	colorWin     = 0x2ECC71
	colorLoss    = 0xE74C3C
	colorNeutral = 0x3498DB
)

func resultColor(net int64) int {
	switch {
	case net > 0:
		return colorWin
	case net < 0:
		return colorLoss
	default:
		return colorNeutral
	}
}

func slotsEmbed(result *models.SlotResult) *discordgo.MessageEmbed {
	title := "🎰 Slots"
	if result.Won() {
		title = "🎰 Slots - Winner!"
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("# %s", strings.Join(result.Reels[:], " | ")),
		Color:       resultColor(result.NetResult),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Bet", Value: common.FormatAmount(result.Stake), Inline: true},
			{Name: "Net", Value: common.FormatNet(result.NetResult), Inline: true},
			{Name: "Balance", Value: common.FormatAmount(result.NewBalance), Inline: true},
		},
	}
}

func rouletteEmbed(result *models.RouletteResult) *discordgo.MessageEmbed {
	title := "🎡 Roulette"
	if result.Won() {
		title = "🎡 Roulette - Winner!"
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("The ball landed on **%s**. You bet on **%s**.", result.Result, result.Choice),
		Color:       resultColor(result.NetResult),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Bet", Value: common.FormatAmount(result.Stake), Inline: true},
			{Name: "Net", Value: common.FormatNet(result.NetResult), Inline: true},
			{Name: "Balance", Value: common.FormatAmount(result.NewBalance), Inline: true},
		},
	}
}

func blackjackEmbed(upd *models.BlackjackUpdate) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🃏 Blackjack",
		Color: colorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("Your hand (%d)", upd.PlayerValue),
				Value:  strings.Join(upd.PlayerCards, "  "),
				Inline: false,
			},
			{
				Name:   fmt.Sprintf("Dealer (%d)", upd.DealerValue),
				Value:  strings.Join(upd.DealerCards, "  "),
				Inline: false,
			},
		},
	}

	if upd.Finished {
		embed.Color = resultColor(upd.NetResult)
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Result", Value: upd.Outcome, Inline: false},
			&discordgo.MessageEmbedField{Name: "Bet", Value: common.FormatAmount(upd.Stake), Inline: true},
			&discordgo.MessageEmbedField{Name: "Net", Value: common.FormatNet(upd.NetResult), Inline: true},
			&discordgo.MessageEmbedField{Name: "Balance", Value: common.FormatAmount(upd.NewBalance), Inline: true},
		)
	} else {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Bet: %s | Hit or Stand?", common.FormatAmount(upd.Stake)),
		}
	}

	return embed
}

func balanceEmbed(displayName string, wallet *models.Wallet, recent []*models.WalletEvent) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("💰 %s's wallet", displayName),
		Color: colorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: common.FormatAmount(wallet.Balance), Inline: true},
			{Name: "Lifetime earned", Value: common.FormatAmount(wallet.TotalEarned), Inline: true},
			{Name: "Lifetime spent", Value: common.FormatAmount(wallet.TotalSpent), Inline: true},
		},
	}

	if len(recent) > 0 {
		var sb strings.Builder
		for _, event := range recent {
			sb.WriteString(fmt.Sprintf("%s `%s` %s\n",
				common.FormatNet(event.Amount), event.EventType,
				common.FormatDiscordTimestamp(event.CreatedAt, "R")))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Recent activity", Value: sb.String(), Inline: false,
		})
	}

	return embed
}
