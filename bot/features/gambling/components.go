package gambling

import (
	"context"
	"strings"

	"killfeed/bot/common"
	"killfeed/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	blackjackHitID   = "blackjack_hit"
	blackjackStandID = "blackjack_stand"
)

// blackjackComponents returns the Hit and Stand buttons, or nothing for a
// finished game
func blackjackComponents(upd *models.BlackjackUpdate) []discordgo.MessageComponent {
	if upd.Finished {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Hit",
					Style:    discordgo.PrimaryButton,
					CustomID: blackjackHitID,
				},
				discordgo.Button{
					Label:    "Stand",
					Style:    discordgo.SecondaryButton,
					CustomID: blackjackStandID,
				},
			},
		},
	}
}

// HandleInteraction processes blackjack button presses. The session registry
// is keyed by account, so only the player who started the game has one; any
// other guild member pressing the buttons gets a no-game error.
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	if !strings.HasPrefix(customID, "blackjack_") {
		return
	}

	ctx := context.Background()
	guildID, discordID, ok := parseIDs(i)
	if !ok {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var (
		upd *models.BlackjackUpdate
		err error
	)
	switch customID {
	case blackjackHitID:
		upd, err = f.gamblingService.BlackjackHit(ctx, guildID, discordID)
	case blackjackStandID:
		upd, err = f.gamblingService.BlackjackStand(ctx, guildID, discordID)
	default:
		return
	}

	if err != nil {
		common.RespondWithError(s, i, common.BetErrorMessage(err))
		return
	}

	if err := common.UpdateWithEmbed(s, i, blackjackEmbed(upd), blackjackComponents(upd)); err != nil {
		log.Errorf("Error updating blackjack message: %v", err)
	}
}
