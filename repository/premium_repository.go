package repository

import (
	"context"
	"fmt"
	"time"

	"killfeed/database"
	"killfeed/models"
)

// PremiumRepository implements premium entitlement data access
type PremiumRepository struct {
	q queryable
}

// NewPremiumRepository creates a new premium repository
func NewPremiumRepository(db *database.DB) *PremiumRepository {
	return &PremiumRepository{q: db.Pool}
}

// SetStatus upserts premium status for a server. A nil expiry deactivates it.
func (r *PremiumRepository) SetStatus(ctx context.Context, guildID int64, serverID string, expiresAt *time.Time) error {
	query := `
		INSERT INTO premium_servers (guild_id, server_id, active, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (guild_id, server_id) DO UPDATE
		SET active = $3, expires_at = $4, updated_at = NOW()
	`

	active := expiresAt != nil
	if _, err := r.q.Exec(ctx, query, guildID, serverID, active, expiresAt); err != nil {
		return fmt.Errorf("failed to set premium status for server %s in guild %d: %w", serverID, guildID, err)
	}

	return nil
}

// GetByGuild returns every premium record for a guild
func (r *PremiumRepository) GetByGuild(ctx context.Context, guildID int64) ([]*models.PremiumServer, error) {
	query := `
		SELECT guild_id, server_id, active, expires_at, updated_at
		FROM premium_servers
		WHERE guild_id = $1
	`

	rows, err := r.q.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get premium servers for guild %d: %w", guildID, err)
	}
	defer rows.Close()

	var servers []*models.PremiumServer
	for rows.Next() {
		var server models.PremiumServer
		err := rows.Scan(
			&server.GuildID,
			&server.ServerID,
			&server.Active,
			&server.ExpiresAt,
			&server.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan premium server: %w", err)
		}
		servers = append(servers, &server)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate premium servers: %w", err)
	}

	return servers, nil
}
