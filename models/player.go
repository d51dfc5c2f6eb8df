package models

import "time"

// Player links a Discord user to their in-game characters, one record per
// guild. All linked characters share the same wallet and stats profile.
type Player struct {
	GuildID          int64     `db:"guild_id"`
	DiscordID        int64     `db:"discord_id"`
	LinkedCharacters []string  `db:"linked_characters"`
	PrimaryCharacter string    `db:"primary_character"`
	LinkedAt         time.Time `db:"linked_at"`
}
