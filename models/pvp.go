package models

import "time"

// PvPStats holds a character's combat record on one game server
type PvPStats struct {
	GuildID              int64     `db:"guild_id"`
	ServerID             string    `db:"server_id"`
	PlayerName           string    `db:"player_name"`
	Kills                int64     `db:"kills"`
	Deaths               int64     `db:"deaths"`
	Suicides             int64     `db:"suicides"`
	KDR                  float64   `db:"kdr"`
	CurrentStreak        int64     `db:"current_streak"`
	BestStreak           int64     `db:"best_streak"`
	PersonalBestDistance float64   `db:"personal_best_distance"`
	CreatedAt            time.Time `db:"created_at"`
	LastUpdated          time.Time `db:"last_updated"`
}

// KillEvent is one raw kill feed entry from a game server
type KillEvent struct {
	ID        int64     `db:"id"`
	GuildID   int64     `db:"guild_id"`
	ServerID  string    `db:"server_id"`
	Killer    string    `db:"killer"`
	Victim    string    `db:"victim"`
	Weapon    string    `db:"weapon"`
	Distance  float64   `db:"distance"`
	IsSuicide bool      `db:"is_suicide"`
	CreatedAt time.Time `db:"created_at"`
}

// CombinedStats aggregates a player's record across servers and characters
type CombinedStats struct {
	Kills                int64
	Deaths               int64
	Suicides             int64
	KDR                  float64
	BestStreak           int64
	PersonalBestDistance float64
	ServersPlayed        int
	FavoriteWeapon       string
	Rival                string // victim this player killed the most
	Nemesis              string // killer who killed this player the most
}
