package gambling

import (
	"context"
	"strconv"

	"killfeed/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// parseIDs extracts the guild and user snowflakes from an interaction
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

// requirePremium gates the casino behind an active premium server. Entitlement
// check failures close the casino rather than opening it for free.
func (f *Feature) requirePremium(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, guildID int64) bool {
	premium, err := f.premiumService.IsPremiumGuild(ctx, guildID)
	if err != nil {
		log.Errorf("Error checking premium for guild %d: %v", guildID, err)
		common.RespondWithError(s, i, "Unable to verify premium status. Please try again.")
		return false
	}
	if !premium {
		common.RespondWithError(s, i, "The casino requires an active premium server for this guild.")
		return false
	}
	return true
}

func optionInt(i *discordgo.InteractionCreate, name string) (int64, bool) {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.IntValue(), true
		}
	}
	return 0, false
}

func optionString(i *discordgo.InteractionCreate, name string) (string, bool) {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue(), true
		}
	}
	return "", false
}

func (f *Feature) handleSlots(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, discordID, ok := parseIDs(i)
	if !ok {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	if !f.requirePremium(ctx, s, i, guildID) {
		return
	}

	stake, _ := optionInt(i, "bet")
	result, err := f.gamblingService.PlaySlots(ctx, guildID, discordID, stake)
	if err != nil {
		common.RespondWithError(s, i, common.BetErrorMessage(err))
		return
	}

	if err := common.RespondWithEmbed(s, i, slotsEmbed(result), nil, false); err != nil {
		log.Errorf("Error responding to slots command: %v", err)
	}
}

func (f *Feature) handleRoulette(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, discordID, ok := parseIDs(i)
	if !ok {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	if !f.requirePremium(ctx, s, i, guildID) {
		return
	}

	stake, _ := optionInt(i, "bet")
	choice, _ := optionString(i, "choice")
	result, err := f.gamblingService.PlayRoulette(ctx, guildID, discordID, stake, choice)
	if err != nil {
		common.RespondWithError(s, i, common.BetErrorMessage(err))
		return
	}

	if err := common.RespondWithEmbed(s, i, rouletteEmbed(result), nil, false); err != nil {
		log.Errorf("Error responding to roulette command: %v", err)
	}
}

func (f *Feature) handleBlackjack(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, discordID, ok := parseIDs(i)
	if !ok {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	if !f.requirePremium(ctx, s, i, guildID) {
		return
	}

	stake, _ := optionInt(i, "bet")
	upd, err := f.gamblingService.StartBlackjack(ctx, guildID, discordID, stake)
	if err != nil {
		common.RespondWithError(s, i, common.BetErrorMessage(err))
		return
	}

	if err := common.RespondWithEmbed(s, i, blackjackEmbed(upd), blackjackComponents(upd), false); err != nil {
		log.Errorf("Error responding to blackjack command: %v", err)
	}
}

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, discordID, ok := parseIDs(i)
	if !ok {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	wallet, err := f.gamblingService.GetBalance(ctx, guildID, discordID)
	if err != nil {
		log.Errorf("Error getting balance for user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	// Recent activity is decoration; the balance still renders without it
	recent, err := f.gamblingService.GetRecentEvents(ctx, guildID, discordID, 5)
	if err != nil {
		log.Warnf("Error getting recent events for user %d: %v", discordID, err)
	}

	displayName := common.GetDisplayName(s, i.GuildID, i.Member.User.ID)
	if err := common.RespondWithEmbed(s, i, balanceEmbed(displayName, wallet, recent), nil, false); err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}
