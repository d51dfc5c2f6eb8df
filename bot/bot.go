package bot

import (
	"context"
	"fmt"

	"killfeed/bot/features/gambling"
	"killfeed/bot/features/link"
	"killfeed/bot/features/settings"
	"killfeed/bot/features/stats"
	"killfeed/events"
	"killfeed/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

type Bot struct {
	config          Config
	session         *discordgo.Session
	settingsService service.GuildSettingsService
	eventBus        *events.Bus

	gambling *gambling.Feature
	stats    *stats.Feature
	link     *link.Feature
	settings *settings.Feature
}

func New(
	config Config,
	gamblingService service.GamblingService,
	premiumService service.PremiumService,
	statsService service.StatsService,
	playerService service.PlayerService,
	settingsService service.GuildSettingsService,
	eventBus *events.Bus,
) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:          config,
		session:         dg,
		settingsService: settingsService,
		eventBus:        eventBus,
		gambling:        gambling.New(gamblingService, premiumService),
		stats:           stats.New(statsService),
		link:            link.New(playerService),
		settings:        settings.New(settingsService, premiumService),
	}

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.gambling.HandleInteraction)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Post ingested kills to the guild's configured killfeed channel
	eventBus.Subscribe(events.EventTypeKillRecorded, func(ctx context.Context, event events.Event) {
		kill, ok := event.(events.KillRecordedEvent)
		if !ok {
			return
		}
		if err := bot.postKillfeedMessage(ctx, kill); err != nil {
			log.Errorf("Failed to post killfeed message: %v", err)
		}
	})

	log.Info("Bot connected and commands registered")
	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "slots", "roulette", "blackjack", "balance":
		b.gambling.HandleCommand(s, i)
	case "stats", "leaderboard":
		b.stats.HandleCommand(s, i)
	case "link", "unlink":
		b.link.HandleCommand(s, i)
	case "settings":
		b.settings.HandleCommand(s, i)
	}
}

// postKillfeedMessage sends one kill to the guild's killfeed channel, if one
// is configured
func (b *Bot) postKillfeedMessage(ctx context.Context, kill events.KillRecordedEvent) error {
	guildSettings, err := b.settingsService.GetOrCreateSettings(ctx, kill.GuildID)
	if err != nil {
		return fmt.Errorf("failed to get guild settings: %w", err)
	}
	if guildSettings.KillfeedChannelID == nil {
		return nil
	}

	var message string
	if kill.IsSuicide {
		message = fmt.Sprintf("💀 **%s** died by their own hand", kill.Victim)
	} else {
		message = fmt.Sprintf("☠️ **%s** killed **%s** (%s, %.0fm)",
			kill.Killer, kill.Victim, kill.Weapon, kill.Distance)
	}

	channelID := fmt.Sprintf("%d", *guildSettings.KillfeedChannelID)
	if _, err := b.session.ChannelMessageSend(channelID, message); err != nil {
		return fmt.Errorf("failed to send killfeed message to channel %s: %w", channelID, err)
	}

	return nil
}
