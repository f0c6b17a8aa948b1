// Package network turns a match event log into a team passing network:
// pass-links between players, average positions and involvement counts,
// plus the visual encoding used to draw them.
package network

import (
	"sort"

	"github.com/okian/passnet/internal/domain/model"
)

// PassLink is the directed count of completed passes from Passer to Recipient.
type PassLink struct {
	Passer    string
	Recipient string
	Count     int
}

// PlayerPosition is the average location of a player in the passing window.
type PlayerPosition struct {
	Name     string
	X        float64
	Y        float64
	Made     int // completed passes played
	Received int // completed passes received
}

// Involvement is the number of passes made plus passes received.
func (p PlayerPosition) Involvement() int {
	return p.Made + p.Received
}

// Aggregate is the raw passing network of one team.
type Aggregate struct {
	Team string
	// FirstSubstitution is the exclusive index cutoff; nil when the team never
	// substituted and every pass is eligible.
	FirstSubstitution *int
	Passes            int
	Links             []PassLink
	Players           []PlayerPosition
}

// FirstSubstitution returns the smallest event index of a substitution made
// by team. The boolean is false when the team made no substitution.
func FirstSubstitution(events []model.Event, team string) (int, bool) {
	first, found := 0, false
	for _, e := range events {
		if e.TeamName != team || e.TypeName != model.TypeSubstitution {
			continue
		}
		if !found || e.Index < first {
			first, found = e.Index, true
		}
	}
	return first, found
}

// EligiblePasses returns the completed passes of team played before its
// first substitution, in source order.
func EligiblePasses(events []model.Event, team string) []model.Event {
	cutoff, hasCutoff := FirstSubstitution(events, team)
	out := make([]model.Event, 0)
	for _, e := range events {
		if e.TeamName != team || e.TypeName != model.TypePass || !e.Successful() {
			continue
		}
		if hasCutoff && e.Index >= cutoff {
			continue
		}
		out = append(out, e)
	}
	return out
}

// roleSums accumulates one player's pass origins and receptions.
type roleSums struct {
	made, received int
	ox, oy         float64
	on             int
	rx, ry         float64
	rn             int
}

// Build aggregates the passing network of team from the full event log.
//
// A player's position is the midpoint of the mean pass origin and the mean
// reception location, each role weighted equally. When a player only has one
// role, that role's mean is used for both. Players without any located pass
// are left out together with the links that touch them.
func Build(events []model.Event, team string) Aggregate {
	agg := Aggregate{Team: team}
	if cutoff, ok := FirstSubstitution(events, team); ok {
		agg.FirstSubstitution = &cutoff
	}

	passes := EligiblePasses(events, team)
	agg.Passes = len(passes)

	type pair struct{ from, to string }
	counts := make(map[pair]int)
	sums := make(map[string]*roleSums)
	get := func(name string) *roleSums {
		s, ok := sums[name]
		if !ok {
			s = &roleSums{}
			sums[name] = s
		}
		return s
	}

	for _, p := range passes {
		passer := get(p.PlayerName)
		passer.made++
		if p.HasLocation {
			passer.ox += p.X
			passer.oy += p.Y
			passer.on++
		}
		if !p.HasRecipient() {
			continue
		}
		counts[pair{p.PlayerName, p.RecipientName}]++
		recipient := get(p.RecipientName)
		recipient.received++
		if p.HasEnd {
			recipient.rx += p.EndX
			recipient.ry += p.EndY
			recipient.rn++
		}
	}

	located := make(map[string]bool, len(sums))
	for name, s := range sums {
		x, y, ok := s.position()
		if !ok {
			continue
		}
		located[name] = true
		agg.Players = append(agg.Players, PlayerPosition{
			Name:     name,
			X:        x,
			Y:        y,
			Made:     s.made,
			Received: s.received,
		})
	}
	sort.Slice(agg.Players, func(i, j int) bool {
		return agg.Players[i].Name < agg.Players[j].Name
	})

	for k, n := range counts {
		if !located[k.from] || !located[k.to] {
			continue
		}
		agg.Links = append(agg.Links, PassLink{Passer: k.from, Recipient: k.to, Count: n})
	}
	sort.Slice(agg.Links, func(i, j int) bool {
		if agg.Links[i].Passer != agg.Links[j].Passer {
			return agg.Links[i].Passer < agg.Links[j].Passer
		}
		return agg.Links[i].Recipient < agg.Links[j].Recipient
	})

	return agg
}

func (s *roleSums) position() (x, y float64, ok bool) {
	switch {
	case s.on > 0 && s.rn > 0:
		ox, oy := s.ox/float64(s.on), s.oy/float64(s.on)
		rx, ry := s.rx/float64(s.rn), s.ry/float64(s.rn)
		return (ox + rx) / 2, (oy + ry) / 2, true
	case s.on > 0:
		return s.ox / float64(s.on), s.oy / float64(s.on), true
	case s.rn > 0:
		return s.rx / float64(s.rn), s.ry / float64(s.rn), true
	default:
		return 0, 0, false
	}
}
