package service

import (
	"context"
	"fmt"

	"killfeed/models"

	log "github.com/sirupsen/logrus"
)

// ErrNoLinkedCharacters is returned when a stats lookup targets a Discord
// user with no linked characters.
var ErrNoLinkedCharacters = fmt.Errorf("no linked characters")

type statsService struct {
	players PlayerRepository
	stats   PvPStatsRepository
	kills   KillEventRepository
}

// NewStatsService creates a new stats service
func NewStatsService(players PlayerRepository, stats PvPStatsRepository, kills KillEventRepository) StatsService {
	return &statsService{
		players: players,
		stats:   stats,
		kills:   kills,
	}
}

// GetPlayerStats aggregates a linked player's record across every server and
// character. Counters sum, bests take the max, and the KDR is recomputed
// from the summed totals rather than averaged.
func (s *statsService) GetPlayerStats(ctx context.Context, guildID, discordID int64) (*models.CombinedStats, error) {
	player, err := s.players.GetByDiscordID(ctx, guildID, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil || len(player.LinkedCharacters) == 0 {
		return nil, ErrNoLinkedCharacters
	}

	rows, err := s.stats.GetByCharacters(ctx, guildID, player.LinkedCharacters)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	combined := &models.CombinedStats{}
	servers := make(map[string]struct{})

	for _, row := range rows {
		combined.Kills += row.Kills
		combined.Deaths += row.Deaths
		combined.Suicides += row.Suicides
		if row.BestStreak > combined.BestStreak {
			combined.BestStreak = row.BestStreak
		}
		if row.PersonalBestDistance > combined.PersonalBestDistance {
			combined.PersonalBestDistance = row.PersonalBestDistance
		}
		servers[row.ServerID] = struct{}{}
	}
	combined.ServersPlayed = len(servers)

	if combined.Deaths > 0 {
		combined.KDR = float64(combined.Kills) / float64(combined.Deaths)
	} else {
		combined.KDR = float64(combined.Kills)
	}

	// Weapon and rivalry lookups enrich the card; failures there should not
	// sink the whole stats request.
	if weapon, err := s.kills.FavoriteWeapon(ctx, guildID, player.LinkedCharacters); err != nil {
		log.WithError(err).Warn("Failed to get favorite weapon")
	} else {
		combined.FavoriteWeapon = weapon
	}

	if rival, err := s.kills.TopVictim(ctx, guildID, player.LinkedCharacters); err != nil {
		log.WithError(err).Warn("Failed to get top victim")
	} else {
		combined.Rival = rival
	}

	if nemesis, err := s.kills.TopKiller(ctx, guildID, player.LinkedCharacters); err != nil {
		log.WithError(err).Warn("Failed to get top killer")
	} else {
		combined.Nemesis = nemesis
	}

	return combined, nil
}

func (s *statsService) GetLeaderboard(ctx context.Context, guildID int64, serverID, stat string, limit int) ([]*models.PvPStats, error) {
	if limit <= 0 || limit > 25 {
		limit = 10
	}

	rows, err := s.stats.GetLeaderboard(ctx, guildID, serverID, stat, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return rows, nil
}
