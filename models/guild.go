package models

import "time"

// GuildSettings holds per-guild bot configuration
type GuildSettings struct {
	GuildID           int64     `db:"guild_id"`
	KillfeedChannelID *int64    `db:"killfeed_channel_id"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// PremiumServer tracks premium entitlement for one game server of a guild
type PremiumServer struct {
	GuildID   int64      `db:"guild_id"`
	ServerID  string     `db:"server_id"`
	Active    bool       `db:"active"`
	ExpiresAt *time.Time `db:"expires_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}
