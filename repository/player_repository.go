package repository

import (
	"context"
	"fmt"

	"killfeed/database"
	"killfeed/models"

	"github.com/jackc/pgx/v5"
)

// PlayerRepository implements player linking data access
type PlayerRepository struct {
	q queryable
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *database.DB) *PlayerRepository {
	return &PlayerRepository{q: db.Pool}
}

// GetByDiscordID retrieves a player's link record, or nil if none exists
func (r *PlayerRepository) GetByDiscordID(ctx context.Context, guildID, discordID int64) (*models.Player, error) {
	query := `
		SELECT guild_id, discord_id, linked_characters, primary_character, linked_at
		FROM players
		WHERE guild_id = $1 AND discord_id = $2
	`

	var player models.Player
	err := r.q.QueryRow(ctx, query, guildID, discordID).Scan(
		&player.GuildID,
		&player.DiscordID,
		&player.LinkedCharacters,
		&player.PrimaryCharacter,
		&player.LinkedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %d in guild %d: %w", discordID, guildID, err)
	}

	return &player, nil
}

// LinkCharacter adds a character to a player's linked set, creating the
// record on first link. The first linked character becomes the primary.
func (r *PlayerRepository) LinkCharacter(ctx context.Context, guildID, discordID int64, character string) (*models.Player, error) {
	query := `
		INSERT INTO players (guild_id, discord_id, linked_characters, primary_character)
		VALUES ($1, $2, ARRAY[$3], $3)
		ON CONFLICT (guild_id, discord_id) DO UPDATE
		SET linked_characters = (
			SELECT ARRAY(SELECT DISTINCT unnest(players.linked_characters || $3))
		)
		RETURNING guild_id, discord_id, linked_characters, primary_character, linked_at
	`

	var player models.Player
	err := r.q.QueryRow(ctx, query, guildID, discordID, character).Scan(
		&player.GuildID,
		&player.DiscordID,
		&player.LinkedCharacters,
		&player.PrimaryCharacter,
		&player.LinkedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to link character %q for user %d: %w", character, discordID, err)
	}

	return &player, nil
}

// UnlinkCharacter removes a character from a player's linked set
func (r *PlayerRepository) UnlinkCharacter(ctx context.Context, guildID, discordID int64, character string) error {
	query := `
		UPDATE players
		SET linked_characters = array_remove(linked_characters, $3)
		WHERE guild_id = $1 AND discord_id = $2
	`

	result, err := r.q.Exec(ctx, query, guildID, discordID, character)
	if err != nil {
		return fmt.Errorf("failed to unlink character %q for user %d: %w", character, discordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("player %d in guild %d not found", discordID, guildID)
	}

	return nil
}
