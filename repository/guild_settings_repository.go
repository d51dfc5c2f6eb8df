package repository

import (
	"context"
	"fmt"

	"killfeed/database"
	"killfeed/models"
)

// GuildSettingsRepository implements guild settings data access
type GuildSettingsRepository struct {
	q queryable
}

// NewGuildSettingsRepository creates a new guild settings repository
func NewGuildSettingsRepository(db *database.DB) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: db.Pool}
}

// GetOrCreate returns settings for a guild, creating defaults if absent
func (r *GuildSettingsRepository) GetOrCreate(ctx context.Context, guildID int64) (*models.GuildSettings, error) {
	insert := `
		INSERT INTO guild_settings (guild_id)
		VALUES ($1)
		ON CONFLICT (guild_id) DO NOTHING
	`

	if _, err := r.q.Exec(ctx, insert, guildID); err != nil {
		return nil, fmt.Errorf("failed to ensure settings for guild %d: %w", guildID, err)
	}

	query := `
		SELECT guild_id, killfeed_channel_id, created_at, updated_at
		FROM guild_settings
		WHERE guild_id = $1
	`

	var settings models.GuildSettings
	err := r.q.QueryRow(ctx, query, guildID).Scan(
		&settings.GuildID,
		&settings.KillfeedChannelID,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for guild %d: %w", guildID, err)
	}

	return &settings, nil
}

// UpdateKillfeedChannel sets the channel kill events are posted to
func (r *GuildSettingsRepository) UpdateKillfeedChannel(ctx context.Context, guildID int64, channelID *int64) error {
	query := `
		INSERT INTO guild_settings (guild_id, killfeed_channel_id, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (guild_id) DO UPDATE
		SET killfeed_channel_id = $2, updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, guildID, channelID); err != nil {
		return fmt.Errorf("failed to update killfeed channel for guild %d: %w", guildID, err)
	}

	return nil
}
