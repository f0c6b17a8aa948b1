package model

// LineupPlayer maps a player to the jersey number worn in a match.
type LineupPlayer struct {
	TeamName     string
	PlayerName   string
	JerseyNumber *int // nil when unknown
}

// Lineup is the squad list of both teams for one match.
type Lineup []LineupPlayer

// JerseyNumber returns the jersey number of player in team.
// The boolean is false when the player is absent or has no number.
func (l Lineup) JerseyNumber(team, player string) (int, bool) {
	for _, p := range l {
		if p.TeamName != team || p.PlayerName != player {
			continue
		}
		if p.JerseyNumber == nil {
			return 0, false
		}
		return *p.JerseyNumber, true
	}
	return 0, false
}
