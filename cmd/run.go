package cmd

import (
	"context"
	"fmt"
	"time"

	"killfeed/bot"
	"killfeed/config"
	"killfeed/database"
	"killfeed/events"
	"killfeed/repository"
	"killfeed/service"
	"killfeed/telemetry"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting killfeed bot...")

	cfg := config.Get()
	databaseURL := database.ConstructDatabaseURL(cfg.DatabaseURL, cfg.DatabaseName)

	log.Info("Running database migrations...")
	if err := database.RunMigrationsWithURL(databaseURL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	eventBus := events.NewBus()

	walletRepo := repository.NewWalletRepository(db)
	walletEventRepo := repository.NewWalletEventRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	pvpStatsRepo := repository.NewPvPStatsRepository(db)
	killEventRepo := repository.NewKillEventRepository(db)
	premiumRepo := repository.NewPremiumRepository(db)
	settingsRepo := repository.NewGuildSettingsRepository(db)

	gamblingService := service.NewGamblingService(walletRepo, walletEventRepo, eventBus, service.Limits{
		MaxSlotsBet:      cfg.MaxSlotsBet,
		MaxBlackjackBet:  cfg.MaxBlackjackBet,
		MaxRouletteBet:   cfg.MaxRouletteBet,
		BlackjackTimeout: cfg.BlackjackTimeout,
	})
	playerService := service.NewPlayerService(playerRepo)
	premiumService := service.NewPremiumService(premiumRepo)
	statsService := service.NewStatsService(playerRepo, pvpStatsRepo, killEventRepo)
	killfeedService := service.NewKillfeedService(killEventRepo, eventBus)
	settingsService := service.NewGuildSettingsService(settingsRepo)

	telemetryServer := telemetry.NewServer(cfg.TelemetryAddr, cfg.TelemetryToken, killfeedService)
	go func() {
		if err := telemetryServer.Start(); err != nil {
			log.Errorf("Telemetry server error: %v", err)
		}
	}()

	// Abandoned blackjack games settle on a timer so locks always free up
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				gamblingService.ExpireSessions(ctx)
			}
		}
	}()

	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.DiscordGuildID,
	}, gamblingService, premiumService, statsService, playerService, settingsService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := telemetryServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down telemetry server: %v", err)
	}

	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
