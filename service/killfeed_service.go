package service

import (
	"context"
	"fmt"
	"strings"

	"killfeed/events"
	"killfeed/models"

	log "github.com/sirupsen/logrus"
)

type killfeedService struct {
	kills    KillEventRepository
	eventBus EventPublisher
}

// NewKillfeedService creates a new killfeed service
func NewKillfeedService(kills KillEventRepository, eventBus EventPublisher) KillfeedService {
	return &killfeedService{
		kills:    kills,
		eventBus: eventBus,
	}
}

// RecordKill ingests one kill event, updating the killer's and victim's
// stats in the same transaction as the event row, then publishes it so the
// killfeed channel and any other subscribers pick it up.
func (s *killfeedService) RecordKill(ctx context.Context, event *models.KillEvent) error {
	if strings.TrimSpace(event.Victim) == "" {
		return fmt.Errorf("kill event missing victim")
	}
	if event.Killer == event.Victim {
		event.IsSuicide = true
	}

	if err := s.kills.Ingest(ctx, event); err != nil {
		return fmt.Errorf("failed to ingest kill event: %w", err)
	}

	log.WithFields(log.Fields{
		"guildID":  event.GuildID,
		"serverID": event.ServerID,
		"killer":   event.Killer,
		"victim":   event.Victim,
		"suicide":  event.IsSuicide,
	}).Debug("Recorded kill event")

	s.eventBus.Publish(events.KillRecordedEvent{
		GuildID:   event.GuildID,
		ServerID:  event.ServerID,
		Killer:    event.Killer,
		Victim:    event.Victim,
		Weapon:    event.Weapon,
		Distance:  event.Distance,
		IsSuicide: event.IsSuicide,
	})

	return nil
}
