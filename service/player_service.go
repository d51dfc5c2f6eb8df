package service

import (
	"context"
	"fmt"
	"strings"

	"killfeed/models"

	log "github.com/sirupsen/logrus"
)

type playerService struct {
	players PlayerRepository
}

// NewPlayerService creates a new player service
func NewPlayerService(players PlayerRepository) PlayerService {
	return &playerService{players: players}
}

func (s *playerService) LinkCharacter(ctx context.Context, guildID, discordID int64, character string) (*models.Player, error) {
	character = strings.TrimSpace(character)
	if character == "" {
		return nil, fmt.Errorf("character name cannot be empty")
	}

	player, err := s.players.LinkCharacter(ctx, guildID, discordID, character)
	if err != nil {
		return nil, fmt.Errorf("failed to link character: %w", err)
	}

	log.WithFields(log.Fields{
		"guildID":   guildID,
		"discordID": discordID,
		"character": character,
	}).Info("Linked character to player")

	return player, nil
}

func (s *playerService) UnlinkCharacter(ctx context.Context, guildID, discordID int64, character string) error {
	character = strings.TrimSpace(character)
	if character == "" {
		return fmt.Errorf("character name cannot be empty")
	}

	if err := s.players.UnlinkCharacter(ctx, guildID, discordID, character); err != nil {
		return fmt.Errorf("failed to unlink character: %w", err)
	}

	log.WithFields(log.Fields{
		"guildID":   guildID,
		"discordID": discordID,
		"character": character,
	}).Info("Unlinked character from player")

	return nil
}

func (s *playerService) GetLinkedPlayer(ctx context.Context, guildID, discordID int64) (*models.Player, error) {
	player, err := s.players.GetByDiscordID(ctx, guildID, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}
