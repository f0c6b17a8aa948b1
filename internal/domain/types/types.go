// Package types contains common types used across the application
package types

import (
	"errors"
	"strings"
)

// ErrInvalidSide is returned when a side name is neither home nor away.
var ErrInvalidSide = errors.New("invalid side")

// Side selects one of the two teams of a match.
type Side int

// Sides in display order.
const (
	Home Side = iota
	Away
)

// String returns the lowercase side name.
func (s Side) String() string {
	if s == Away {
		return "away"
	}
	return "home"
}

// Mirrored reports whether the side is drawn reflected about the halfway
// line so both teams attack in the same on-screen direction.
func (s Side) Mirrored() bool {
	return s == Away
}

// ParseSide converts "home" or "away" (case-insensitive) into a Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home":
		return Home, nil
	case "away":
		return Away, nil
	default:
		return Home, ErrInvalidSide
	}
}

// MatchSummary is the read shape of a selectable match.
type MatchSummary struct {
	MatchID   int    `json:"match_id"`
	Label     string `json:"label"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	Date      string `json:"match_date,omitempty"`
	Stage     string `json:"stage,omitempty"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
}
