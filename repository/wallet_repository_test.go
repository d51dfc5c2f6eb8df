package repository

import (
	"context"
	"sync"
	"testing"

	"killfeed/models"
	"killfeed/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletRepository_GetOrCreate(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewWalletRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates zero-balance wallet on first access", func(t *testing.T) {
		wallet, err := repo.GetOrCreate(ctx, 1, 100)
		require.NoError(t, err)

		assert.Equal(t, int64(1), wallet.GuildID)
		assert.Equal(t, int64(100), wallet.DiscordID)
		assert.Equal(t, int64(0), wallet.Balance)
		assert.Equal(t, int64(0), wallet.TotalEarned)
		assert.Equal(t, int64(0), wallet.TotalSpent)
	})

	t.Run("returns existing wallet unchanged", func(t *testing.T) {
		require.NoError(t, repo.ApplyDelta(ctx, 1, 101, 500, models.EventTypeSlots))

		wallet, err := repo.GetOrCreate(ctx, 1, 101)
		require.NoError(t, err)
		assert.Equal(t, int64(500), wallet.Balance)
	})

	t.Run("concurrent first access creates one row", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make([]error, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = repo.GetOrCreate(ctx, 1, 102)
			}(i)
		}
		wg.Wait()

		for _, err := range errs {
			require.NoError(t, err)
		}

		wallet, err := repo.GetOrCreate(ctx, 1, 102)
		require.NoError(t, err)
		assert.Equal(t, int64(0), wallet.Balance)
	})

	t.Run("accounts are scoped per guild", func(t *testing.T) {
		require.NoError(t, repo.ApplyDelta(ctx, 1, 103, 700, models.EventTypeSlots))

		other, err := repo.GetOrCreate(ctx, 2, 103)
		require.NoError(t, err)
		assert.Equal(t, int64(0), other.Balance)
	})
}

func TestWalletRepository_ApplyDelta(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewWalletRepository(testDB.DB)
	ctx := context.Background()

	t.Run("credit and debit round trip", func(t *testing.T) {
		require.NoError(t, repo.ApplyDelta(ctx, 1, 200, 1000, models.EventTypeSlots))
		require.NoError(t, repo.ApplyDelta(ctx, 1, 200, -1000, models.EventTypeSlots))

		wallet, err := repo.GetOrCreate(ctx, 1, 200)
		require.NoError(t, err)

		assert.Equal(t, int64(0), wallet.Balance)
		assert.Equal(t, int64(1000), wallet.TotalEarned)
		assert.Equal(t, int64(1000), wallet.TotalSpent)
	})

	t.Run("creates wallet when none exists", func(t *testing.T) {
		require.NoError(t, repo.ApplyDelta(ctx, 1, 201, 250, models.EventTypeRoulette))

		wallet, err := repo.GetOrCreate(ctx, 1, 201)
		require.NoError(t, err)
		assert.Equal(t, int64(250), wallet.Balance)
		assert.Equal(t, int64(250), wallet.TotalEarned)
	})

	t.Run("lifetime counters split by sign", func(t *testing.T) {
		require.NoError(t, repo.ApplyDelta(ctx, 1, 202, 300, models.EventTypeBlackjack))
		require.NoError(t, repo.ApplyDelta(ctx, 1, 202, -100, models.EventTypeBlackjack))
		require.NoError(t, repo.ApplyDelta(ctx, 1, 202, 50, models.EventTypeBlackjack))

		wallet, err := repo.GetOrCreate(ctx, 1, 202)
		require.NoError(t, err)
		assert.Equal(t, int64(250), wallet.Balance)
		assert.Equal(t, int64(350), wallet.TotalEarned)
		assert.Equal(t, int64(100), wallet.TotalSpent)
	})

	t.Run("concurrent deltas all land", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = repo.ApplyDelta(ctx, 1, 203, 10, models.EventTypeSlots)
			}()
		}
		wg.Wait()

		wallet, err := repo.GetOrCreate(ctx, 1, 203)
		require.NoError(t, err)
		assert.Equal(t, int64(200), wallet.Balance)
	})
}

func TestWalletEventRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewWalletEventRepository(testDB.DB)
	ctx := context.Background()

	t.Run("record assigns id and timestamp", func(t *testing.T) {
		event := &models.WalletEvent{
			GuildID:     1,
			DiscordID:   300,
			Amount:      -100,
			EventType:   models.EventTypeSlots,
			Description: "Slots: 🍒 🍋 🍊 | Bet: 100",
		}
		require.NoError(t, repo.Record(ctx, event))
		assert.NotZero(t, event.ID)
		assert.False(t, event.CreatedAt.IsZero())
	})

	t.Run("get recent returns newest first", func(t *testing.T) {
		for _, amount := range []int64{-50, 100, -25} {
			require.NoError(t, repo.Record(ctx, &models.WalletEvent{
				GuildID:     1,
				DiscordID:   301,
				Amount:      amount,
				EventType:   models.EventTypeRoulette,
				Description: "spin",
			}))
		}

		recent, err := repo.GetRecent(ctx, 1, 301, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, int64(-25), recent[0].Amount)
		assert.Equal(t, int64(100), recent[1].Amount)
	})
}
