package network_test

import (
	"testing"

	"github.com/okian/passnet/internal/domain/model"
	"github.com/okian/passnet/internal/domain/network"
	. "github.com/smartystreets/goconvey/convey"
)

const team = "Spain"

func pass(index int, from, to string, x, y, endX, endY float64) model.Event {
	return model.Event{
		Index:         index,
		TypeName:      model.TypePass,
		TeamName:      team,
		PlayerName:    from,
		RecipientName: to,
		X:             x,
		Y:             y,
		EndX:          endX,
		EndY:          endY,
		HasLocation:   true,
		HasEnd:        true,
	}
}

func sub(index int, teamName string) model.Event {
	return model.Event{Index: index, TypeName: model.TypeSubstitution, TeamName: teamName}
}

func outcome(s string) *string { return &s }

func twoPlayerLog() []model.Event {
	return []model.Event{
		pass(1, "A", "B", 10, 20, 30, 40),
		pass(2, "A", "B", 10, 20, 30, 40),
		pass(3, "B", "A", 50, 60, 20, 10),
		pass(4, "A", "B", 10, 20, 30, 40),
	}
}

func TestFirstSubstitution(t *testing.T) {
	Convey("Given an event log", t, func() {
		Convey("When the team never substitutes", func() {
			_, ok := network.FirstSubstitution(twoPlayerLog(), team)

			Convey("Then no cutoff is reported", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the team substitutes twice and the opponent earlier", func() {
			events := append(twoPlayerLog(), sub(70, team), sub(50, team), sub(10, "Croatia"))
			idx, ok := network.FirstSubstitution(events, team)

			Convey("Then the earliest own substitution is the cutoff", func() {
				So(ok, ShouldBeTrue)
				So(idx, ShouldEqual, 50)
			})
		})
	})
}

func TestBuild(t *testing.T) {
	Convey("Given passes A to B three times and B to A once without substitutions", t, func() {
		agg := network.Build(twoPlayerLog(), team)

		Convey("Then every pass is eligible", func() {
			So(agg.Passes, ShouldEqual, 4)
			So(agg.FirstSubstitution, ShouldBeNil)
		})

		Convey("And the pass-links are counted per ordered pair", func() {
			So(agg.Links, ShouldResemble, []network.PassLink{
				{Passer: "A", Recipient: "B", Count: 3},
				{Passer: "B", Recipient: "A", Count: 1},
			})
		})

		Convey("And positions are the midpoint of origin and reception means", func() {
			So(agg.Players, ShouldHaveLength, 2)
			a, b := agg.Players[0], agg.Players[1]
			So(a.Name, ShouldEqual, "A")
			So(a.X, ShouldAlmostEqual, 15.0, 1e-9)
			So(a.Y, ShouldAlmostEqual, 15.0, 1e-9)
			So(b.Name, ShouldEqual, "B")
			So(b.X, ShouldAlmostEqual, 40.0, 1e-9)
			So(b.Y, ShouldAlmostEqual, 50.0, 1e-9)
		})

		Convey("And involvement adds passes made and received", func() {
			So(agg.Players[0].Made, ShouldEqual, 3)
			So(agg.Players[0].Received, ShouldEqual, 1)
			So(agg.Players[0].Involvement(), ShouldEqual, 4)
			So(agg.Players[1].Involvement(), ShouldEqual, 4)
		})
	})

	Convey("Given a team whose first substitution is at index 50", t, func() {
		events := []model.Event{
			pass(10, "A", "B", 10, 10, 20, 20),
			pass(49, "B", "A", 30, 30, 40, 40),
			sub(50, team),
			pass(50, "A", "C", 90, 70, 100, 70),
			pass(75, "C", "A", 100, 70, 110, 70),
		}
		agg := network.Build(events, team)

		Convey("Then passes at or after the cutoff are excluded from all aggregates", func() {
			So(*agg.FirstSubstitution, ShouldEqual, 50)
			So(agg.Passes, ShouldEqual, 2)
			So(agg.Links, ShouldHaveLength, 2)
			for _, p := range agg.Players {
				So(p.Name, ShouldNotEqual, "C")
			}
			So(agg.Players[0].Involvement(), ShouldEqual, 2)
		})
	})

	Convey("Given unsuccessful passes, other event types and the opponent's passes", t, func() {
		failed := pass(2, "A", "B", 0, 0, 0, 0)
		failed.OutcomeName = outcome("Incomplete")
		carry := pass(3, "A", "B", 0, 0, 0, 0)
		carry.TypeName = "Carry"
		other := pass(4, "A", "B", 0, 0, 0, 0)
		other.TeamName = "Croatia"
		events := []model.Event{pass(1, "A", "B", 10, 10, 20, 20), failed, carry, other}

		agg := network.Build(events, team)

		Convey("Then only the completed own pass counts", func() {
			So(agg.Passes, ShouldEqual, 1)
			So(agg.Links, ShouldResemble, []network.PassLink{{Passer: "A", Recipient: "B", Count: 1}})
		})
	})

	Convey("Given a player who only ever passed", t, func() {
		events := []model.Event{
			pass(1, "C", "A", 90, 10, 60, 40),
			pass(2, "C", "A", 70, 30, 60, 40),
		}
		agg := network.Build(events, team)

		Convey("Then the position falls back to the pass origin mean", func() {
			c := agg.Players[1]
			So(c.Name, ShouldEqual, "C")
			So(c.X, ShouldAlmostEqual, 80.0, 1e-9)
			So(c.Y, ShouldAlmostEqual, 20.0, 1e-9)
		})

		Convey("And a player who only received uses the reception mean", func() {
			a := agg.Players[0]
			So(a.Name, ShouldEqual, "A")
			So(a.X, ShouldAlmostEqual, 60.0, 1e-9)
			So(a.Y, ShouldAlmostEqual, 40.0, 1e-9)
			So(a.Made, ShouldEqual, 0)
			So(a.Received, ShouldEqual, 2)
		})
	})

	Convey("Given a completed pass without a recipient", t, func() {
		events := []model.Event{
			pass(1, "A", "B", 10, 10, 20, 20),
			pass(2, "A", "", 30, 30, 0, 0),
		}
		agg := network.Build(events, team)

		Convey("Then it counts for the passer but creates no link", func() {
			So(agg.Links, ShouldHaveLength, 1)
			So(agg.Players[0].Made, ShouldEqual, 2)
			So(agg.Players[0].X, ShouldAlmostEqual, 20.0, 1e-9)
		})
	})

	Convey("Given a team without any pass", t, func() {
		agg := network.Build([]model.Event{sub(5, team)}, team)

		Convey("Then the aggregate is empty", func() {
			So(agg.Passes, ShouldEqual, 0)
			So(agg.Links, ShouldBeEmpty)
			So(agg.Players, ShouldBeEmpty)
		})
	})
}
