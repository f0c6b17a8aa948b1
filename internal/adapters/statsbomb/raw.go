package statsbomb

import "github.com/okian/passnet/internal/domain/model"

// Raw shapes of the StatsBomb open-data JSON documents. Only the fields the
// service reads are declared.

type rawNamed struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type rawMatch struct {
	MatchID   int    `json:"match_id"`
	MatchDate string `json:"match_date"`
	KickOff   string `json:"kick_off"`
	HomeTeam  struct {
		Name string `json:"home_team_name"`
	} `json:"home_team"`
	AwayTeam struct {
		Name string `json:"away_team_name"`
	} `json:"away_team"`
	HomeScore        int       `json:"home_score"`
	AwayScore        int       `json:"away_score"`
	CompetitionStage rawNamed  `json:"competition_stage"`
	Stadium          *rawNamed `json:"stadium"`
}

type rawOutcome struct {
	Outcome *rawNamed `json:"outcome"`
}

type rawEvent struct {
	ID       string    `json:"id"`
	Index    int       `json:"index"`
	Period   int       `json:"period"`
	Minute   int       `json:"minute"`
	Second   int       `json:"second"`
	Type     rawNamed  `json:"type"`
	Team     rawNamed  `json:"team"`
	Player   *rawNamed `json:"player"`
	Location []float64 `json:"location"`

	Pass *struct {
		Recipient   *rawNamed `json:"recipient"`
		EndLocation []float64 `json:"end_location"`
		Outcome     *rawNamed `json:"outcome"`
	} `json:"pass"`
	Carry *struct {
		EndLocation []float64 `json:"end_location"`
	} `json:"carry"`
	Shot *struct {
		EndLocation []float64 `json:"end_location"`
		Outcome     *rawNamed `json:"outcome"`
	} `json:"shot"`
	Dribble      *rawOutcome `json:"dribble"`
	Duel         *rawOutcome `json:"duel"`
	Interception *rawOutcome `json:"interception"`
	Goalkeeper   *rawOutcome `json:"goalkeeper"`
	Substitution *struct {
		Outcome     *rawNamed `json:"outcome"`
		Replacement *rawNamed `json:"replacement"`
	} `json:"substitution"`
}

type rawLineupTeam struct {
	TeamName string `json:"team_name"`
	Lineup   []struct {
		PlayerName   string `json:"player_name"`
		JerseyNumber *int   `json:"jersey_number"`
	} `json:"lineup"`
}

func (m rawMatch) toModel() model.Match {
	out := model.Match{
		ID:        m.MatchID,
		HomeTeam:  m.HomeTeam.Name,
		AwayTeam:  m.AwayTeam.Name,
		Date:      m.MatchDate,
		KickOff:   m.KickOff,
		Stage:     m.CompetitionStage.Name,
		HomeScore: m.HomeScore,
		AwayScore: m.AwayScore,
	}
	if m.Stadium != nil {
		out.Stadium = m.Stadium.Name
	}
	return out
}

// toModel flattens the nested event into the event table row.
func (e rawEvent) toModel() model.Event {
	out := model.Event{
		ID:       e.ID,
		Index:    e.Index,
		Period:   e.Period,
		Minute:   e.Minute,
		Second:   e.Second,
		TypeName: e.Type.Name,
		TeamName: e.Team.Name,
	}
	if e.Player != nil {
		out.PlayerName = e.Player.Name
	}
	if len(e.Location) >= 2 {
		out.X, out.Y, out.HasLocation = e.Location[0], e.Location[1], true
	}

	var end []float64
	var outcome *rawNamed
	switch {
	case e.Pass != nil:
		end, outcome = e.Pass.EndLocation, e.Pass.Outcome
		if e.Pass.Recipient != nil {
			out.RecipientName = e.Pass.Recipient.Name
		}
	case e.Carry != nil:
		end = e.Carry.EndLocation
	case e.Shot != nil:
		end, outcome = e.Shot.EndLocation, e.Shot.Outcome
	case e.Dribble != nil:
		outcome = e.Dribble.Outcome
	case e.Duel != nil:
		outcome = e.Duel.Outcome
	case e.Interception != nil:
		outcome = e.Interception.Outcome
	case e.Goalkeeper != nil:
		outcome = e.Goalkeeper.Outcome
	case e.Substitution != nil:
		outcome = e.Substitution.Outcome
	}
	if len(end) >= 2 {
		out.EndX, out.EndY, out.HasEnd = end[0], end[1], true
	}
	if outcome != nil && outcome.Name != "" {
		name := outcome.Name
		out.OutcomeName = &name
	}
	return out
}
