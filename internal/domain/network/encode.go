package network

import "strconv"

// Pitch dimensions of the event data coordinate system.
const (
	PitchLength = 120.0
	PitchWidth  = 80.0
)

// Visual encoding ranges.
const (
	MinLineWidth           = 1.0
	MaxLineWidth           = 9.0
	MinMarkerSize          = 100.0
	MaxMarkerSize          = 600.0
	DefaultMinTransparency = 0.05
)

// JerseyNumbers resolves the shirt number of a player.
type JerseyNumbers interface {
	JerseyNumber(team, player string) (int, bool)
}

// EncodedLink is a pass-link ready to draw.
type EncodedLink struct {
	Passer    string  `json:"passer"`
	Recipient string  `json:"recipient"`
	Count     int     `json:"pass_count"`
	Width     float64 `json:"line_width"`
	Alpha     float64 `json:"alpha"`
	X0        float64 `json:"x0"`
	Y0        float64 `json:"y0"`
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
}

// EncodedPlayer is a player marker ready to draw.
type EncodedPlayer struct {
	Name         string  `json:"player_name"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Involvement  int     `json:"count"`
	MarkerSize   float64 `json:"marker_size"`
	JerseyNumber *int    `json:"jersey_number"`
}

// Label is the text drawn on the marker: the jersey number, or empty when
// the number is unknown.
func (p EncodedPlayer) Label() string {
	if p.JerseyNumber == nil {
		return ""
	}
	return strconv.Itoa(*p.JerseyNumber)
}

// Network is the encoded passing network of one team.
type Network struct {
	Team              string          `json:"team"`
	Mirrored          bool            `json:"mirrored"`
	Passes            int             `json:"passes"`
	FirstSubstitution *int            `json:"first_substitution_index"`
	Links             []EncodedLink   `json:"links"`
	Players           []EncodedPlayer `json:"players"`
}

// Encoder maps aggregated counts to line widths, alphas and marker sizes.
type Encoder struct {
	minTransparency float64
}

// NewEncoder creates an encoder with configuration options.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		minTransparency: DefaultMinTransparency,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MinTransparency returns the configured alpha floor.
func (e *Encoder) MinTransparency() float64 {
	return e.minTransparency
}

// LineWidth rescales count into (1, 9] relative to maxCount.
func LineWidth(count, maxCount int) float64 {
	return MinLineWidth + float64(count)/float64(maxCount)*(MaxLineWidth-MinLineWidth)
}

// Alpha rescales count into (minTransparency, 1] relative to maxCount.
func Alpha(count, maxCount int, minTransparency float64) float64 {
	return float64(count)/float64(maxCount)*(1-minTransparency) + minTransparency
}

// MarkerSize rescales involvement into (100, 600] relative to maxInvolvement.
func MarkerSize(involvement, maxInvolvement int) float64 {
	return MinMarkerSize + float64(involvement)/float64(maxInvolvement)*(MaxMarkerSize-MinMarkerSize)
}

// MirrorX reflects x about the halfway line of a pitch of the given length.
func MirrorX(x, length float64) float64 {
	return length - x
}

// Encode produces the drawable network of agg. When mirror is set every x
// coordinate is reflected about the halfway line. Jersey numbers are looked
// up in numbers, which may be nil.
//
// Encode returns ErrNoPasses when agg has no pass-link, since the scaling
// by the maximum count is undefined.
func (e *Encoder) Encode(agg Aggregate, numbers JerseyNumbers, mirror bool) (Network, error) {
	if len(agg.Links) == 0 || len(agg.Players) == 0 {
		return Network{}, ErrNoPasses
	}

	maxCount := 0
	for _, l := range agg.Links {
		maxCount = max(maxCount, l.Count)
	}
	maxInvolvement := 0
	for _, p := range agg.Players {
		maxInvolvement = max(maxInvolvement, p.Involvement())
	}

	n := Network{
		Team:              agg.Team,
		Mirrored:          mirror,
		Passes:            agg.Passes,
		FirstSubstitution: agg.FirstSubstitution,
		Players:           make([]EncodedPlayer, 0, len(agg.Players)),
		Links:             make([]EncodedLink, 0, len(agg.Links)),
	}

	type point struct{ x, y float64 }
	at := make(map[string]point, len(agg.Players))
	for _, p := range agg.Players {
		x := p.X
		if mirror {
			x = MirrorX(x, PitchLength)
		}
		at[p.Name] = point{x, p.Y}

		ep := EncodedPlayer{
			Name:        p.Name,
			X:           x,
			Y:           p.Y,
			Involvement: p.Involvement(),
			MarkerSize:  MarkerSize(p.Involvement(), maxInvolvement),
		}
		if numbers != nil {
			if num, ok := numbers.JerseyNumber(agg.Team, p.Name); ok {
				ep.JerseyNumber = &num
			}
		}
		n.Players = append(n.Players, ep)
	}

	for _, l := range agg.Links {
		from, to := at[l.Passer], at[l.Recipient]
		n.Links = append(n.Links, EncodedLink{
			Passer:    l.Passer,
			Recipient: l.Recipient,
			Count:     l.Count,
			Width:     LineWidth(l.Count, maxCount),
			Alpha:     Alpha(l.Count, maxCount, e.minTransparency),
			X0:        from.x,
			Y0:        from.y,
			X1:        to.x,
			Y1:        to.y,
		})
	}

	return n, nil
}
