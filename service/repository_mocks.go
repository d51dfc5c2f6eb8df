package service

import (
	"context"
	"time"

	"killfeed/events"
	"killfeed/models"

	"github.com/stretchr/testify/mock"
)

// MockWalletRepository is a mock implementation of WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetOrCreate(ctx context.Context, guildID, discordID int64) (*models.Wallet, error) {
	args := m.Called(ctx, guildID, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ApplyDelta(ctx context.Context, guildID, discordID int64, amount int64, eventType models.EventType) error {
	args := m.Called(ctx, guildID, discordID, amount, eventType)
	return args.Error(0)
}

// MockWalletEventRepository is a mock implementation of WalletEventRepository
type MockWalletEventRepository struct {
	mock.Mock
}

func (m *MockWalletEventRepository) Record(ctx context.Context, event *models.WalletEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockWalletEventRepository) GetRecent(ctx context.Context, guildID, discordID int64, limit int) ([]*models.WalletEvent, error) {
	args := m.Called(ctx, guildID, discordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WalletEvent), args.Error(1)
}

// MockPlayerRepository is a mock implementation of PlayerRepository
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) GetByDiscordID(ctx context.Context, guildID, discordID int64) (*models.Player, error) {
	args := m.Called(ctx, guildID, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) LinkCharacter(ctx context.Context, guildID, discordID int64, character string) (*models.Player, error) {
	args := m.Called(ctx, guildID, discordID, character)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) UnlinkCharacter(ctx context.Context, guildID, discordID int64, character string) error {
	args := m.Called(ctx, guildID, discordID, character)
	return args.Error(0)
}

// MockPvPStatsRepository is a mock implementation of PvPStatsRepository
type MockPvPStatsRepository struct {
	mock.Mock
}

func (m *MockPvPStatsRepository) GetByPlayer(ctx context.Context, guildID int64, serverID, playerName string) (*models.PvPStats, error) {
	args := m.Called(ctx, guildID, serverID, playerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PvPStats), args.Error(1)
}

func (m *MockPvPStatsRepository) GetByCharacters(ctx context.Context, guildID int64, characters []string) ([]*models.PvPStats, error) {
	args := m.Called(ctx, guildID, characters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PvPStats), args.Error(1)
}

func (m *MockPvPStatsRepository) GetLeaderboard(ctx context.Context, guildID int64, serverID, stat string, limit int) ([]*models.PvPStats, error) {
	args := m.Called(ctx, guildID, serverID, stat, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PvPStats), args.Error(1)
}

// MockKillEventRepository is a mock implementation of KillEventRepository
type MockKillEventRepository struct {
	mock.Mock
}

func (m *MockKillEventRepository) Ingest(ctx context.Context, event *models.KillEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockKillEventRepository) GetRecent(ctx context.Context, guildID int64, serverID string, limit int) ([]*models.KillEvent, error) {
	args := m.Called(ctx, guildID, serverID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.KillEvent), args.Error(1)
}

func (m *MockKillEventRepository) FavoriteWeapon(ctx context.Context, guildID int64, characters []string) (string, error) {
	args := m.Called(ctx, guildID, characters)
	return args.String(0), args.Error(1)
}

func (m *MockKillEventRepository) TopVictim(ctx context.Context, guildID int64, characters []string) (string, error) {
	args := m.Called(ctx, guildID, characters)
	return args.String(0), args.Error(1)
}

func (m *MockKillEventRepository) TopKiller(ctx context.Context, guildID int64, characters []string) (string, error) {
	args := m.Called(ctx, guildID, characters)
	return args.String(0), args.Error(1)
}

// MockPremiumRepository is a mock implementation of PremiumRepository
type MockPremiumRepository struct {
	mock.Mock
}

func (m *MockPremiumRepository) SetStatus(ctx context.Context, guildID int64, serverID string, expiresAt *time.Time) error {
	args := m.Called(ctx, guildID, serverID, expiresAt)
	return args.Error(0)
}

func (m *MockPremiumRepository) GetByGuild(ctx context.Context, guildID int64) ([]*models.PremiumServer, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PremiumServer), args.Error(1)
}

// MockGuildSettingsRepository is a mock implementation of GuildSettingsRepository
type MockGuildSettingsRepository struct {
	mock.Mock
}

func (m *MockGuildSettingsRepository) GetOrCreate(ctx context.Context, guildID int64) (*models.GuildSettings, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildSettings), args.Error(1)
}

func (m *MockGuildSettingsRepository) UpdateKillfeedChannel(ctx context.Context, guildID int64, channelID *int64) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}
