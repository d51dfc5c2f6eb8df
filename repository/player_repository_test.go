package repository

import (
	"context"
	"testing"
	"time"

	"killfeed/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewPlayerRepository(testDB.DB)
	ctx := context.Background()

	t.Run("unknown player is nil without error", func(t *testing.T) {
		player, err := repo.GetByDiscordID(ctx, 1, 999)
		require.NoError(t, err)
		assert.Nil(t, player)
	})

	t.Run("link and unlink characters", func(t *testing.T) {
		player, err := repo.LinkCharacter(ctx, 1, 100, "Reaper")
		require.NoError(t, err)
		assert.Equal(t, []string{"Reaper"}, player.LinkedCharacters)

		player, err = repo.LinkCharacter(ctx, 1, 100, "ReaperAlt")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Reaper", "ReaperAlt"}, player.LinkedCharacters)

		// Linking the same character again does not duplicate it
		player, err = repo.LinkCharacter(ctx, 1, 100, "Reaper")
		require.NoError(t, err)
		assert.Len(t, player.LinkedCharacters, 2)

		require.NoError(t, repo.UnlinkCharacter(ctx, 1, 100, "Reaper"))
		player, err = repo.GetByDiscordID(ctx, 1, 100)
		require.NoError(t, err)
		assert.Equal(t, []string{"ReaperAlt"}, player.LinkedCharacters)
	})

	t.Run("links are scoped per guild", func(t *testing.T) {
		_, err := repo.LinkCharacter(ctx, 1, 101, "Solo")
		require.NoError(t, err)

		player, err := repo.GetByDiscordID(ctx, 2, 101)
		require.NoError(t, err)
		assert.Nil(t, player)
	})
}

func TestPremiumRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewPremiumRepository(testDB.DB)
	ctx := context.Background()

	expiry := time.Now().Add(30 * 24 * time.Hour).UTC().Truncate(time.Second)

	t.Run("grant and revoke", func(t *testing.T) {
		require.NoError(t, repo.SetStatus(ctx, 1, "emerald-1", &expiry))

		servers, err := repo.GetByGuild(ctx, 1)
		require.NoError(t, err)
		require.Len(t, servers, 1)
		assert.True(t, servers[0].Active)
		require.NotNil(t, servers[0].ExpiresAt)
		assert.WithinDuration(t, expiry, *servers[0].ExpiresAt, time.Second)

		// A nil expiry deactivates
		require.NoError(t, repo.SetStatus(ctx, 1, "emerald-1", nil))
		servers, err = repo.GetByGuild(ctx, 1)
		require.NoError(t, err)
		require.Len(t, servers, 1)
		assert.False(t, servers[0].Active)
	})
}

func TestGuildSettingsRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewGuildSettingsRepository(testDB.DB)
	ctx := context.Background()

	t.Run("defaults on first access", func(t *testing.T) {
		settings, err := repo.GetOrCreate(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), settings.GuildID)
		assert.Nil(t, settings.KillfeedChannelID)
	})

	t.Run("set and clear killfeed channel", func(t *testing.T) {
		channelID := int64(123456789)
		require.NoError(t, repo.UpdateKillfeedChannel(ctx, 1, &channelID))

		settings, err := repo.GetOrCreate(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, settings.KillfeedChannelID)
		assert.Equal(t, channelID, *settings.KillfeedChannelID)

		require.NoError(t, repo.UpdateKillfeedChannel(ctx, 1, nil))
		settings, err = repo.GetOrCreate(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, settings.KillfeedChannelID)
	})
}
