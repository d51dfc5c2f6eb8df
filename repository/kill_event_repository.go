package repository

import (
	"context"
	"fmt"

	"killfeed/database"
	"killfeed/models"

	"github.com/jackc/pgx/v5"
)

// KillEventRepository implements kill feed data access. Ingest runs the
// event insert and the derived stat updates in one transaction, so a kill is
// never recorded without its stat effects.
type KillEventRepository struct {
	db *database.DB
	q  queryable
}

// NewKillEventRepository creates a new kill event repository
func NewKillEventRepository(db *database.DB) *KillEventRepository {
	return &KillEventRepository{db: db, q: db.Pool}
}

// Ingest records a kill event and applies its stat updates atomically:
// killer gains a kill (PvP only), victim gains a death, suicides count
// against the victim alone.
func (r *KillEventRepository) Ingest(ctx context.Context, event *models.KillEvent) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO kill_events (guild_id, server_id, killer, victim, weapon, distance, is_suicide)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, insert,
			event.GuildID,
			event.ServerID,
			event.Killer,
			event.Victim,
			event.Weapon,
			event.Distance,
			event.IsSuicide,
		).Scan(&event.ID, &event.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert kill event: %w", err)
		}

		stats := newPvPStatsRepositoryWithTx(tx)

		if event.IsSuicide {
			return stats.IncrementSuicide(ctx, event.GuildID, event.ServerID, event.Victim)
		}

		if err := stats.IncrementKill(ctx, event.GuildID, event.ServerID, event.Killer, event.Distance); err != nil {
			return err
		}
		return stats.IncrementDeath(ctx, event.GuildID, event.ServerID, event.Victim)
	})
}

// GetRecent returns the newest kill events for a server
func (r *KillEventRepository) GetRecent(ctx context.Context, guildID int64, serverID string, limit int) ([]*models.KillEvent, error) {
	query := `
		SELECT id, guild_id, server_id, killer, victim, weapon, distance, is_suicide, created_at
		FROM kill_events
		WHERE guild_id = $1 AND server_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := r.q.Query(ctx, query, guildID, serverID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent kills for server %s: %w", serverID, err)
	}
	defer rows.Close()

	var events []*models.KillEvent
	for rows.Next() {
		var event models.KillEvent
		err := rows.Scan(
			&event.ID,
			&event.GuildID,
			&event.ServerID,
			&event.Killer,
			&event.Victim,
			&event.Weapon,
			&event.Distance,
			&event.IsSuicide,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kill event: %w", err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kill events: %w", err)
	}

	return events, nil
}

// FavoriteWeapon returns the weapon the given characters have killed with
// the most, excluding suicides. Empty string when they have no PvP kills.
func (r *KillEventRepository) FavoriteWeapon(ctx context.Context, guildID int64, characters []string) (string, error) {
	query := `
		SELECT weapon
		FROM kill_events
		WHERE guild_id = $1 AND killer = ANY($2) AND NOT is_suicide
		GROUP BY weapon
		ORDER BY COUNT(*) DESC
		LIMIT 1
	`

	var weapon string
	err := r.q.QueryRow(ctx, query, guildID, characters).Scan(&weapon)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get favorite weapon: %w", err)
	}

	return weapon, nil
}

// TopVictim returns the player the given characters have killed the most
func (r *KillEventRepository) TopVictim(ctx context.Context, guildID int64, characters []string) (string, error) {
	query := `
		SELECT victim
		FROM kill_events
		WHERE guild_id = $1 AND killer = ANY($2) AND NOT is_suicide
		GROUP BY victim
		ORDER BY COUNT(*) DESC
		LIMIT 1
	`

	var victim string
	err := r.q.QueryRow(ctx, query, guildID, characters).Scan(&victim)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get top victim: %w", err)
	}

	return victim, nil
}

// TopKiller returns the player who has killed the given characters the most
func (r *KillEventRepository) TopKiller(ctx context.Context, guildID int64, characters []string) (string, error) {
	query := `
		SELECT killer
		FROM kill_events
		WHERE guild_id = $1 AND victim = ANY($2) AND NOT is_suicide
		GROUP BY killer
		ORDER BY COUNT(*) DESC
		LIMIT 1
	`

	var killer string
	err := r.q.QueryRow(ctx, query, guildID, characters).Scan(&killer)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get top killer: %w", err)
	}

	return killer, nil
}
