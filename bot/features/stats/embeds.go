package stats

import (
	"fmt"
	"strings"

	"killfeed/models"

	"github.com/bwmarrin/discordgo"
)

const embedColor = 0x9B59B6

func statsEmbed(displayName string, combined *models.CombinedStats) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Kills", Value: fmt.Sprintf("%d", combined.Kills), Inline: true},
		{Name: "Deaths", Value: fmt.Sprintf("%d", combined.Deaths), Inline: true},
		{Name: "K/D", Value: fmt.Sprintf("%.2f", combined.KDR), Inline: true},
		{Name: "Best streak", Value: fmt.Sprintf("%d", combined.BestStreak), Inline: true},
		{Name: "Longest kill", Value: fmt.Sprintf("%.1fm", combined.PersonalBestDistance), Inline: true},
		{Name: "Suicides", Value: fmt.Sprintf("%d", combined.Suicides), Inline: true},
	}

	if combined.FavoriteWeapon != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Favorite weapon", Value: combined.FavoriteWeapon, Inline: true,
		})
	}
	if combined.Rival != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Rival", Value: combined.Rival, Inline: true,
		})
	}
	if combined.Nemesis != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Nemesis", Value: combined.Nemesis, Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("⚔️ %s's combat record", displayName),
		Color:  embedColor,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Across %d server(s)", combined.ServersPlayed),
		},
	}
}

func leaderboardEmbed(serverID, stat string, rows []*models.PvPStats) *discordgo.MessageEmbed {
	if len(rows) == 0 {
		return &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🏆 %s leaderboard", stat),
			Description: "No stats recorded on this server yet.",
			Color:       embedColor,
		}
	}

	var sb strings.Builder
	medals := []string{"🥇", "🥈", "🥉"}
	for idx, row := range rows {
		rank := fmt.Sprintf("%d.", idx+1)
		if idx < len(medals) {
			rank = medals[idx]
		}

		var value string
		switch stat {
		case "deaths":
			value = fmt.Sprintf("%d deaths", row.Deaths)
		case "kdr":
			value = fmt.Sprintf("%.2f K/D", row.KDR)
		case "streak":
			value = fmt.Sprintf("%d streak", row.BestStreak)
		case "distance":
			value = fmt.Sprintf("%.1fm", row.PersonalBestDistance)
		default:
			value = fmt.Sprintf("%d kills", row.Kills)
		}

		sb.WriteString(fmt.Sprintf("%s **%s** - %s\n", rank, row.PlayerName, value))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 %s leaderboard", stat),
		Description: sb.String(),
		Color:       embedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Server: " + serverID,
		},
	}
}
