package service

import (
	"context"
	"sync"
)

// accountKey identifies one wallet within one guild
type accountKey struct {
	GuildID   int64
	DiscordID int64
}

// lockRegistry hands out one lock per account, created on first use and
// never evicted. Growth is bounded by the number of distinct accounts ever
// seen, which is acceptable for a single-process bot.
type lockRegistry struct {
	mu    sync.Mutex
	locks map[accountKey]chan struct{}
}

func newLockRegistry() *lockRegistry {
	return &lockRegistry{
		locks: make(map[accountKey]chan struct{}),
	}
}

// Acquire blocks until the account's lock is free or ctx is done. On success
// it returns a release function that must be called exactly once; callers
// either defer it or hand it to the blackjack session that outlives the call.
func (r *lockRegistry) Acquire(ctx context.Context, guildID, discordID int64) (func(), error) {
	key := accountKey{GuildID: guildID, DiscordID: discordID}

	r.mu.Lock()
	ch, ok := r.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		r.locks[key] = ch
	}
	r.mu.Unlock()

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
