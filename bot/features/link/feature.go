package link

import (
	"killfeed/service"

	"github.com/bwmarrin/discordgo"
)

// Feature handles character linking slash commands
type Feature struct {
	playerService service.PlayerService
}

func New(playerService service.PlayerService) *Feature {
	return &Feature{playerService: playerService}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "link":
		f.handleLink(s, i)
	case "unlink":
		f.handleUnlink(s, i)
	}
}
