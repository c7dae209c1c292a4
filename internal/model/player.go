package model

// PlayerID is the MLB Advanced Media identifier used by every upstream source
type PlayerID int

// RosterRecord is one player's identity as held by the player index
type RosterRecord struct {
	ID        PlayerID
	FirstName string
	LastName  string
}

// FullName joins first and last name with a single space
func (r RosterRecord) FullName() string {
	return r.FirstName + " " + r.LastName
}

// Roster column names as published by the Chadwick register
const (
	ColumnMLBAMID   = "key_mlbam"
	ColumnFirstName = "name_first"
	ColumnLastName  = "name_last"
)
