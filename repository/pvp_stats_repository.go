package repository

import (
	"context"
	"fmt"

	"killfeed/database"
	"killfeed/models"

	"github.com/jackc/pgx/v5"
)

// PvPStatsRepository implements PvP statistics data access
type PvPStatsRepository struct {
	q queryable
}

// NewPvPStatsRepository creates a new PvP stats repository
func NewPvPStatsRepository(db *database.DB) *PvPStatsRepository {
	return &PvPStatsRepository{q: db.Pool}
}

// newPvPStatsRepositoryWithTx creates a new PvP stats repository with a transaction
func newPvPStatsRepositoryWithTx(tx queryable) *PvPStatsRepository {
	return &PvPStatsRepository{q: tx}
}

const statsColumns = `guild_id, server_id, player_name, kills, deaths, suicides, kdr,
	current_streak, best_streak, personal_best_distance, created_at, last_updated`

// IncrementKill records one kill for a character: kill count and streak go
// up, the best streak and personal best distance are kept as running maxima,
// and the KDR is recomputed. One atomic upsert.
func (r *PvPStatsRepository) IncrementKill(ctx context.Context, guildID int64, serverID, playerName string, distance float64) error {
	query := `
		INSERT INTO pvp_stats (guild_id, server_id, player_name, kills, kdr, current_streak, best_streak, personal_best_distance)
		VALUES ($1, $2, $3, 1, 1, 1, 1, $4)
		ON CONFLICT (guild_id, server_id, player_name) DO UPDATE
		SET kills = pvp_stats.kills + 1,
		    kdr = (pvp_stats.kills + 1)::double precision / GREATEST(pvp_stats.deaths, 1),
		    current_streak = pvp_stats.current_streak + 1,
		    best_streak = GREATEST(pvp_stats.best_streak, pvp_stats.current_streak + 1),
		    personal_best_distance = GREATEST(pvp_stats.personal_best_distance, $4),
		    last_updated = NOW()
	`

	if _, err := r.q.Exec(ctx, query, guildID, serverID, playerName, distance); err != nil {
		return fmt.Errorf("failed to increment kills for %q on server %s: %w", playerName, serverID, err)
	}

	return nil
}

// IncrementDeath records one death: the current streak resets and the KDR is
// recomputed
func (r *PvPStatsRepository) IncrementDeath(ctx context.Context, guildID int64, serverID, playerName string) error {
	query := `
		INSERT INTO pvp_stats (guild_id, server_id, player_name, deaths)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (guild_id, server_id, player_name) DO UPDATE
		SET deaths = pvp_stats.deaths + 1,
		    kdr = pvp_stats.kills::double precision / (pvp_stats.deaths + 1),
		    current_streak = 0,
		    last_updated = NOW()
	`

	if _, err := r.q.Exec(ctx, query, guildID, serverID, playerName); err != nil {
		return fmt.Errorf("failed to increment deaths for %q on server %s: %w", playerName, serverID, err)
	}

	return nil
}

// IncrementSuicide records a suicide: counts separately from deaths for KDR
// purposes but still resets the streak
func (r *PvPStatsRepository) IncrementSuicide(ctx context.Context, guildID int64, serverID, playerName string) error {
	query := `
		INSERT INTO pvp_stats (guild_id, server_id, player_name, suicides)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (guild_id, server_id, player_name) DO UPDATE
		SET suicides = pvp_stats.suicides + 1,
		    current_streak = 0,
		    last_updated = NOW()
	`

	if _, err := r.q.Exec(ctx, query, guildID, serverID, playerName); err != nil {
		return fmt.Errorf("failed to increment suicides for %q on server %s: %w", playerName, serverID, err)
	}

	return nil
}

// GetByPlayer returns a character's stats on one server, or nil if none exist
func (r *PvPStatsRepository) GetByPlayer(ctx context.Context, guildID int64, serverID, playerName string) (*models.PvPStats, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM pvp_stats
		WHERE guild_id = $1 AND server_id = $2 AND player_name = $3
	`, statsColumns)

	stats, err := r.scanOne(r.q.QueryRow(ctx, query, guildID, serverID, playerName))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for %q on server %s: %w", playerName, serverID, err)
	}

	return stats, nil
}

// GetByCharacters returns every per-server stats row for any of the given
// character names in a guild
func (r *PvPStatsRepository) GetByCharacters(ctx context.Context, guildID int64, characters []string) ([]*models.PvPStats, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM pvp_stats
		WHERE guild_id = $1 AND player_name = ANY($2)
	`, statsColumns)

	rows, err := r.q.Query(ctx, query, guildID, characters)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for characters in guild %d: %w", guildID, err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// GetLeaderboard returns the top characters on a server ordered by the given
// stat. Only known stat columns are accepted; the column name is mapped, not
// interpolated from user input.
func (r *PvPStatsRepository) GetLeaderboard(ctx context.Context, guildID int64, serverID, stat string, limit int) ([]*models.PvPStats, error) {
	column, ok := map[string]string{
		"kills":    "kills",
		"deaths":   "deaths",
		"kdr":      "kdr",
		"streak":   "best_streak",
		"distance": "personal_best_distance",
	}[stat]
	if !ok {
		return nil, fmt.Errorf("unknown leaderboard stat %q", stat)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM pvp_stats
		WHERE guild_id = $1 AND server_id = $2
		ORDER BY %s DESC
		LIMIT $3
	`, statsColumns, column)

	rows, err := r.q.Query(ctx, query, guildID, serverID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s leaderboard for server %s: %w", stat, serverID, err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *PvPStatsRepository) scanOne(row pgx.Row) (*models.PvPStats, error) {
	var stats models.PvPStats
	err := row.Scan(
		&stats.GuildID,
		&stats.ServerID,
		&stats.PlayerName,
		&stats.Kills,
		&stats.Deaths,
		&stats.Suicides,
		&stats.KDR,
		&stats.CurrentStreak,
		&stats.BestStreak,
		&stats.PersonalBestDistance,
		&stats.CreatedAt,
		&stats.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *PvPStatsRepository) scanAll(rows pgx.Rows) ([]*models.PvPStats, error) {
	var all []*models.PvPStats
	for rows.Next() {
		stats, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pvp stats: %w", err)
		}
		all = append(all, stats)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pvp stats: %w", err)
	}

	return all, nil
}
