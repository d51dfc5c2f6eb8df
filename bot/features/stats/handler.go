package stats

import (
	"context"
	"errors"
	"strconv"

	"killfeed/bot/common"
	"killfeed/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// Default to the caller; an optional user option checks someone else
	targetID := i.Member.User.ID
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			targetID = opt.UserValue(s).ID
		}
	}
	discordID, err := strconv.ParseInt(targetID, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	combined, err := f.statsService.GetPlayerStats(ctx, guildID, discordID)
	if err != nil {
		if errors.Is(err, service.ErrNoLinkedCharacters) {
			common.RespondWithError(s, i, "No linked characters. Use /link to connect a character first.")
			return
		}
		log.Errorf("Error getting stats for user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to retrieve stats. Please try again.")
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, targetID)
	if err := common.RespondWithEmbed(s, i, statsEmbed(displayName, combined), nil, false); err != nil {
		log.Errorf("Error responding to stats command: %v", err)
	}
}

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var serverID, stat string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "server":
			serverID = opt.StringValue()
		case "stat":
			stat = opt.StringValue()
		}
	}
	if stat == "" {
		stat = "kills"
	}

	rows, err := f.statsService.GetLeaderboard(ctx, guildID, serverID, stat, 10)
	if err != nil {
		log.Errorf("Error getting %s leaderboard for guild %d: %v", stat, guildID, err)
		common.RespondWithError(s, i, "Unable to retrieve the leaderboard. Please try again.")
		return
	}

	if err := common.RespondWithEmbed(s, i, leaderboardEmbed(serverID, stat, rows), nil, false); err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}
