package settings

import (
	"killfeed/service"

	"github.com/bwmarrin/discordgo"
)

// Feature handles admin configuration slash commands
type Feature struct {
	settingsService service.GuildSettingsService
	premiumService  service.PremiumService
}

func New(settingsService service.GuildSettingsService, premiumService service.PremiumService) *Feature {
	return &Feature{
		settingsService: settingsService,
		premiumService:  premiumService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.ApplicationCommandData().Name != "settings" {
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "killfeed-channel":
		f.handleKillfeedChannel(s, i, options[0])
	case "premium":
		f.handlePremium(s, i, options[0])
	}
}
