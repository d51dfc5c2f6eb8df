package stats

import (
	"killfeed/service"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the PvP statistics slash commands
type Feature struct {
	statsService service.StatsService
}

func New(statsService service.StatsService) *Feature {
	return &Feature{statsService: statsService}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "stats":
		f.handleStats(s, i)
	case "leaderboard":
		f.handleLeaderboard(s, i)
	}
}
