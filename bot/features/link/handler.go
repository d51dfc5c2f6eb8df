package link

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"killfeed/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func parseIDs(i *discordgo.InteractionCreate) (guildID, discordID int64, ok bool) {
	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	discordID, err = strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return guildID, discordID, true
}

func characterOption(i *discordgo.InteractionCreate) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "character" {
			return opt.StringValue()
		}
	}
	return ""
}

func (f *Feature) handleLink(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, discordID, ok := parseIDs(i)
	if !ok {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	character := characterOption(i)
	player, err := f.playerService.LinkCharacter(ctx, guildID, discordID, character)
	if err != nil {
		log.Errorf("Error linking character %q for user %d: %v", character, discordID, err)
		common.RespondWithError(s, i, "Unable to link that character. Please try again.")
		return
	}

	message := fmt.Sprintf("✅ Linked **%s**. Your characters: %s",
		character, strings.Join(player.LinkedCharacters, ", "))
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to link command: %v", err)
	}
}

func (f *Feature) handleUnlink(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, discordID, ok := parseIDs(i)
	if !ok {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	character := characterOption(i)
	if err := f.playerService.UnlinkCharacter(ctx, guildID, discordID, character); err != nil {
		log.Errorf("Error unlinking character %q for user %d: %v", character, discordID, err)
		common.RespondWithError(s, i, "Unable to unlink that character. Please try again.")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("✅ Unlinked **%s**.", character),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to unlink command: %v", err)
	}
}
