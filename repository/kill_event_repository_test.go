package repository

import (
	"context"
	"testing"

	"killfeed/models"
	"killfeed/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ingestKill(t *testing.T, repo *KillEventRepository, killer, victim, weapon string, distance float64) {
	t.Helper()
	require.NoError(t, repo.Ingest(context.Background(), &models.KillEvent{
		GuildID:  1,
		ServerID: "emerald-1",
		Killer:   killer,
		Victim:   victim,
		Weapon:   weapon,
		Distance: distance,
	}))
}

func TestKillEventRepository_Ingest(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewKillEventRepository(testDB.DB)
	stats := NewPvPStatsRepository(testDB.DB)
	ctx := context.Background()

	t.Run("pvp kill updates both players", func(t *testing.T) {
		ingestKill(t, repo, "Hunter", "Prey", "AK-74", 120.5)

		killer, err := stats.GetByPlayer(ctx, 1, "emerald-1", "Hunter")
		require.NoError(t, err)
		require.NotNil(t, killer)
		assert.Equal(t, int64(1), killer.Kills)
		assert.Equal(t, int64(1), killer.CurrentStreak)
		assert.Equal(t, 120.5, killer.PersonalBestDistance)

		victim, err := stats.GetByPlayer(ctx, 1, "emerald-1", "Prey")
		require.NoError(t, err)
		require.NotNil(t, victim)
		assert.Equal(t, int64(1), victim.Deaths)
		assert.Equal(t, int64(0), victim.CurrentStreak)
	})

	t.Run("suicide counts against the victim alone", func(t *testing.T) {
		require.NoError(t, repo.Ingest(ctx, &models.KillEvent{
			GuildID:   1,
			ServerID:  "emerald-1",
			Killer:    "Loner",
			Victim:    "Loner",
			IsSuicide: true,
		}))

		player, err := stats.GetByPlayer(ctx, 1, "emerald-1", "Loner")
		require.NoError(t, err)
		require.NotNil(t, player)
		assert.Equal(t, int64(1), player.Suicides)
		assert.Equal(t, int64(0), player.Kills)
		assert.Equal(t, int64(0), player.Deaths)
	})

	t.Run("streak and bests accumulate", func(t *testing.T) {
		ingestKill(t, repo, "Streaker", "A", "M4", 50)
		ingestKill(t, repo, "Streaker", "B", "M4", 300)
		ingestKill(t, repo, "Streaker", "C", "SVD", 100)
		ingestKill(t, repo, "Ender", "Streaker", "AK-74", 10)

		player, err := stats.GetByPlayer(ctx, 1, "emerald-1", "Streaker")
		require.NoError(t, err)
		assert.Equal(t, int64(3), player.Kills)
		assert.Equal(t, int64(1), player.Deaths)
		assert.Equal(t, int64(0), player.CurrentStreak)
		assert.Equal(t, int64(3), player.BestStreak)
		assert.Equal(t, 300.0, player.PersonalBestDistance)
		assert.InDelta(t, 3.0, player.KDR, 0.001)
	})
}

func TestKillEventRepository_Aggregates(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewKillEventRepository(testDB.DB)
	ctx := context.Background()

	ingestKill(t, repo, "Reaper", "Prey", "AK-74", 100)
	ingestKill(t, repo, "Reaper", "Prey", "AK-74", 110)
	ingestKill(t, repo, "Reaper", "Other", "SVD", 400)
	ingestKill(t, repo, "Hunter", "Reaper", "M4", 80)
	ingestKill(t, repo, "Hunter", "Reaper", "M4", 90)

	characters := []string{"Reaper"}

	weapon, err := repo.FavoriteWeapon(ctx, 1, characters)
	require.NoError(t, err)
	assert.Equal(t, "AK-74", weapon)

	victim, err := repo.TopVictim(ctx, 1, characters)
	require.NoError(t, err)
	assert.Equal(t, "Prey", victim)

	killer, err := repo.TopKiller(ctx, 1, characters)
	require.NoError(t, err)
	assert.Equal(t, "Hunter", killer)

	t.Run("no kills yields empty strings", func(t *testing.T) {
		weapon, err := repo.FavoriteWeapon(ctx, 1, []string{"Nobody"})
		require.NoError(t, err)
		assert.Empty(t, weapon)
	})

	t.Run("recent feed is scoped per server", func(t *testing.T) {
		events, err := repo.GetRecent(ctx, 1, "emerald-1", 10)
		require.NoError(t, err)
		assert.Len(t, events, 5)

		events, err = repo.GetRecent(ctx, 1, "emerald-2", 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestPvPStatsRepository_Leaderboard(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewKillEventRepository(testDB.DB)
	stats := NewPvPStatsRepository(testDB.DB)
	ctx := context.Background()

	ingestKill(t, repo, "First", "Third", "AK-74", 10)
	ingestKill(t, repo, "First", "Third", "AK-74", 10)
	ingestKill(t, repo, "First", "Second", "AK-74", 10)
	ingestKill(t, repo, "Second", "Third", "M4", 10)

	t.Run("orders by requested stat", func(t *testing.T) {
		rows, err := stats.GetLeaderboard(ctx, 1, "emerald-1", "kills", 10)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(rows), 2)
		assert.Equal(t, "First", rows[0].PlayerName)
		assert.Equal(t, int64(3), rows[0].Kills)
	})

	t.Run("rejects unknown stat", func(t *testing.T) {
		_, err := stats.GetLeaderboard(ctx, 1, "emerald-1", "balance; DROP TABLE pvp_stats", 10)
		assert.Error(t, err)
	})

	t.Run("respects limit", func(t *testing.T) {
		rows, err := stats.GetLeaderboard(ctx, 1, "emerald-1", "deaths", 1)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}
