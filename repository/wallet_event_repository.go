package repository

import (
	"context"
	"fmt"

	"killfeed/database"
	"killfeed/models"
)

// WalletEventRepository implements the append-only wallet audit journal
type WalletEventRepository struct {
	q queryable
}

// NewWalletEventRepository creates a new wallet event repository
func NewWalletEventRepository(db *database.DB) *WalletEventRepository {
	return &WalletEventRepository{q: db.Pool}
}

// Record appends one immutable journal entry
func (r *WalletEventRepository) Record(ctx context.Context, event *models.WalletEvent) error {
	query := `
		INSERT INTO wallet_events (guild_id, discord_id, amount, event_type, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		event.GuildID,
		event.DiscordID,
		event.Amount,
		event.EventType,
		event.Description,
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to record wallet event for user %d: %w", event.DiscordID, err)
	}

	return nil
}

// GetRecent returns the newest journal entries for an account
func (r *WalletEventRepository) GetRecent(ctx context.Context, guildID, discordID int64, limit int) ([]*models.WalletEvent, error) {
	query := `
		SELECT id, guild_id, discord_id, amount, event_type, description, created_at
		FROM wallet_events
		WHERE guild_id = $1 AND discord_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`

	rows, err := r.q.Query(ctx, query, guildID, discordID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet events for user %d: %w", discordID, err)
	}
	defer rows.Close()

	var events []*models.WalletEvent
	for rows.Next() {
		var event models.WalletEvent
		err := rows.Scan(
			&event.ID,
			&event.GuildID,
			&event.DiscordID,
			&event.Amount,
			&event.EventType,
			&event.Description,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet event: %w", err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wallet events: %w", err)
	}

	return events, nil
}
