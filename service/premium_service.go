package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type premiumService struct {
	premium PremiumRepository
}

// NewPremiumService creates a new premium service
func NewPremiumService(premium PremiumRepository) PremiumService {
	return &premiumService{premium: premium}
}

// IsPremiumGuild is true when any of the guild's servers holds active,
// unexpired premium. Records found past their expiry are deactivated in
// place, so repeated checks settle on the stored state.
func (s *premiumService) IsPremiumGuild(ctx context.Context, guildID int64) (bool, error) {
	servers, err := s.premium.GetByGuild(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to get premium servers: %w", err)
	}

	now := time.Now()
	premium := false
	for _, server := range servers {
		if !server.Active {
			continue
		}
		if server.ExpiresAt != nil && !server.ExpiresAt.After(now) {
			if err := s.premium.SetStatus(ctx, guildID, server.ServerID, nil); err != nil {
				log.WithError(err).WithFields(log.Fields{
					"guildID":  guildID,
					"serverID": server.ServerID,
				}).Warn("Failed to deactivate expired premium server")
			}
			continue
		}
		premium = true
	}
	return premium, nil
}

func (s *premiumService) SetServerPremium(ctx context.Context, guildID int64, serverID string, expiresAt *time.Time) error {
	if err := s.premium.SetStatus(ctx, guildID, serverID, expiresAt); err != nil {
		return fmt.Errorf("failed to set premium status: %w", err)
	}

	log.WithFields(log.Fields{
		"guildID":   guildID,
		"serverID":  serverID,
		"expiresAt": expiresAt,
	}).Info("Updated server premium status")

	return nil
}
