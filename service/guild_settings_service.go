package service

import (
	"context"
	"fmt"

	"killfeed/models"

	log "github.com/sirupsen/logrus"
)

type guildSettingsService struct {
	settings GuildSettingsRepository
}

// NewGuildSettingsService creates a new guild settings service
func NewGuildSettingsService(settings GuildSettingsRepository) GuildSettingsService {
	return &guildSettingsService{settings: settings}
}

func (s *guildSettingsService) GetOrCreateSettings(ctx context.Context, guildID int64) (*models.GuildSettings, error) {
	settings, err := s.settings.GetOrCreate(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}
	return settings, nil
}

func (s *guildSettingsService) UpdateKillfeedChannel(ctx context.Context, guildID int64, channelID *int64) error {
	if err := s.settings.UpdateKillfeedChannel(ctx, guildID, channelID); err != nil {
		return fmt.Errorf("failed to update killfeed channel: %w", err)
	}

	log.WithFields(log.Fields{
		"guildID":   guildID,
		"channelID": channelID,
	}).Info("Updated killfeed channel")

	return nil
}
