package gambling

import (
	"killfeed/service"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the casino slash commands and the blackjack buttons
type Feature struct {
	gamblingService service.GamblingService
	premiumService  service.PremiumService
}

func New(gamblingService service.GamblingService, premiumService service.PremiumService) *Feature {
	return &Feature{
		gamblingService: gamblingService,
		premiumService:  premiumService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "slots":
		f.handleSlots(s, i)
	case "roulette":
		f.handleRoulette(s, i)
	case "blackjack":
		f.handleBlackjack(s, i)
	case "balance":
		f.handleBalance(s, i)
	}
}
