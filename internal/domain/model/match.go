package model

import "github.com/okian/passnet/internal/domain/types"

// Match identifies one fixture of a competition season.
type Match struct {
	ID        int
	HomeTeam  string
	AwayTeam  string
	Date      string
	KickOff   string
	Stage     string
	Stadium   string
	HomeScore int
	AwayScore int
}

// Label is the selector text for the match, "<home> vs <away>".
func (m Match) Label() string {
	return m.HomeTeam + " vs " + m.AwayTeam
}

// Teams returns the competing teams, home first.
func (m Match) Teams() [2]string {
	return [2]string{m.HomeTeam, m.AwayTeam}
}

// Summary returns the read shape served to clients.
func (m Match) Summary() types.MatchSummary {
	return types.MatchSummary{
		MatchID:   m.ID,
		Label:     m.Label(),
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		Date:      m.Date,
		Stage:     m.Stage,
		HomeScore: m.HomeScore,
		AwayScore: m.AwayScore,
	}
}
