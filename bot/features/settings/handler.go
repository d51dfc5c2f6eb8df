package settings

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"killfeed/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to settings command: %v", err)
	}
}

// handleKillfeedChannel sets or clears the channel kill events are posted to
func (f *Feature) handleKillfeedChannel(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var channelID *int64
	for _, opt := range sub.Options {
		if opt.Name == "channel" {
			id, err := strconv.ParseInt(opt.ChannelValue(s).ID, 10, 64)
			if err != nil {
				common.RespondWithError(s, i, "Unable to process request. Please try again.")
				return
			}
			channelID = &id
		}
	}

	if err := f.settingsService.UpdateKillfeedChannel(ctx, guildID, channelID); err != nil {
		log.Errorf("Error updating killfeed channel for guild %d: %v", guildID, err)
		common.RespondWithError(s, i, "Unable to update the killfeed channel. Please try again.")
		return
	}

	if channelID == nil {
		respond(s, i, "✅ Killfeed posting disabled.")
	} else {
		respond(s, i, fmt.Sprintf("✅ Kill events will be posted to <#%d>.", *channelID))
	}
}

// handlePremium grants or revokes premium for one game server
func (f *Feature) handlePremium(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var serverID string
	var days int64
	for _, opt := range sub.Options {
		switch opt.Name {
		case "server":
			serverID = opt.StringValue()
		case "days":
			days = opt.IntValue()
		}
	}

	var expiresAt *time.Time
	if days > 0 {
		expiry := time.Now().Add(time.Duration(days) * 24 * time.Hour)
		expiresAt = &expiry
	}

	if err := f.premiumService.SetServerPremium(ctx, guildID, serverID, expiresAt); err != nil {
		log.Errorf("Error setting premium for server %s: %v", serverID, err)
		common.RespondWithError(s, i, "Unable to update premium status. Please try again.")
		return
	}

	if expiresAt == nil {
		respond(s, i, fmt.Sprintf("✅ Premium revoked for **%s**.", serverID))
	} else {
		respond(s, i, fmt.Sprintf("✅ Premium active for **%s** until %s.",
			serverID, common.FormatDiscordTimestamp(*expiresAt, "D")))
	}
}
