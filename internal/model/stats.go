package model

import "fmt"

// StatType selects a season aggregate leaderboard
type StatType string

const (
	StatTypeBatting  StatType = "batting"
	StatTypePitching StatType = "pitching"
)

// ParseStatType validates a stat type, defaulting to batting when empty
func ParseStatType(s string) (StatType, error) {
	switch StatType(s) {
	case "":
		return StatTypeBatting, nil
	case StatTypeBatting, StatTypePitching:
		return StatType(s), nil
	default:
		return "", fmt.Errorf("%w: %q (must be batting or pitching)", ErrInvalidStatType, s)
	}
}

// PlayerType selects the batter or pitcher side of a statcast query
type PlayerType string

const (
	PlayerTypeBatter  PlayerType = "batter"
	PlayerTypePitcher PlayerType = "pitcher"
)

// ParsePlayerType validates a player type, defaulting to batter when empty
func ParsePlayerType(s string) (PlayerType, error) {
	switch PlayerType(s) {
	case "":
		return PlayerTypeBatter, nil
	case PlayerTypeBatter, PlayerTypePitcher:
		return PlayerType(s), nil
	default:
		return "", fmt.Errorf("%w: %q (must be batter or pitcher)", ErrInvalidPlayerType, s)
	}
}

// Division is one standings table keyed by its division name
type Division struct {
	Name  string
	Table *Table
}
