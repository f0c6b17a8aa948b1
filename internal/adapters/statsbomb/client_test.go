package statsbomb

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/passnet/pkg/logger"
)

func init() {
	if err := logger.InitWith(io.Discard, "text"); err != nil {
		panic(err)
	}
}

func TestClientDir(t *testing.T) {
	convey.Convey("Given a client reading the local testdata layout", t, func() {
		c := New(WithDir("testdata"))
		ctx := context.Background()

		convey.So(c.String(), convey.ShouldEqual, "dir:testdata")

		convey.Convey("When listing matches", func() {
			matches, err := c.Matches(ctx, 55, 282)

			convey.Convey("Then they keep source order and flatten team names", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(matches, convey.ShouldHaveLength, 2)
				convey.So(matches[0].ID, convey.ShouldEqual, 3942819)
				convey.So(matches[0].Label(), convey.ShouldEqual, "Netherlands vs England")
				convey.So(matches[0].Stage, convey.ShouldEqual, "Semi-finals")
				convey.So(matches[0].Stadium, convey.ShouldEqual, "Signal-Iduna-Park")
				convey.So(matches[1].Stadium, convey.ShouldEqual, "")
				convey.So(matches[1].HomeScore, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When loading events", func() {
			events, err := c.Events(ctx, 3942819)
			convey.So(err, convey.ShouldBeNil)
			convey.So(events, convey.ShouldHaveLength, 5)

			convey.Convey("Then they are sorted by index", func() {
				for i := range events {
					convey.So(events[i].Index, convey.ShouldEqual, i+1)
				}
			})

			convey.Convey("And a completed pass is flattened", func() {
				p := events[1]
				convey.So(p.TypeName, convey.ShouldEqual, "Pass")
				convey.So(p.TeamName, convey.ShouldEqual, "Netherlands")
				convey.So(p.PlayerName, convey.ShouldEqual, "Virgil van Dijk")
				convey.So(p.RecipientName, convey.ShouldEqual, "Xavi Simons")
				convey.So(p.HasLocation, convey.ShouldBeTrue)
				convey.So(p.X, convey.ShouldEqual, 60.0)
				convey.So(p.HasEnd, convey.ShouldBeTrue)
				convey.So(p.EndX, convey.ShouldEqual, 70.5)
				convey.So(p.EndY, convey.ShouldEqual, 30.25)
				convey.So(p.Successful(), convey.ShouldBeTrue)
			})

			convey.Convey("And an incomplete pass carries its outcome", func() {
				p := events[4]
				convey.So(p.Successful(), convey.ShouldBeFalse)
				convey.So(*p.OutcomeName, convey.ShouldEqual, "Incomplete")
			})

			convey.Convey("And a carry takes its end location", func() {
				convey.So(events[2].HasEnd, convey.ShouldBeTrue)
				convey.So(events[2].EndX, convey.ShouldEqual, 75.0)
				convey.So(events[2].Successful(), convey.ShouldBeTrue)
			})

			convey.Convey("And events without player or location stay empty", func() {
				convey.So(events[0].PlayerName, convey.ShouldEqual, "")
				convey.So(events[0].HasLocation, convey.ShouldBeFalse)
			})

			convey.Convey("And substitutions carry their outcome", func() {
				convey.So(events[3].TypeName, convey.ShouldEqual, "Substitution")
				convey.So(*events[3].OutcomeName, convey.ShouldEqual, "Tactical")
			})
		})

		convey.Convey("When loading lineups", func() {
			lineup, err := c.Lineups(ctx, 3942819)

			convey.Convey("Then both teams are flattened with jersey numbers", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(lineup, convey.ShouldHaveLength, 4)
				n, ok := lineup.JerseyNumber("Netherlands", "Xavi Simons")
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(n, convey.ShouldEqual, 7)
				_, ok = lineup.JerseyNumber("England", "Trialist")
				convey.So(ok, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When the match does not exist", func() {
			_, err := c.Events(ctx, 42)

			convey.Convey("Then ErrNotFound is returned", func() {
				convey.So(errors.Is(err, ErrNotFound), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the document is malformed", func() {
			_, err := c.Events(ctx, 1)

			convey.Convey("Then ErrDecode is returned", func() {
				convey.So(errors.Is(err, ErrDecode), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "events/1.json")
			})
		})

		convey.Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := c.Lineups(cctx, 3942819)

			convey.Convey("Then the fetch fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestClientHTTP(t *testing.T) {
	convey.Convey("Given a client reading over HTTP", t, func() {
		var paths []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			switch {
			case strings.HasSuffix(r.URL.Path, "/events/500.json"):
				w.WriteHeader(http.StatusInternalServerError)
			default:
				http.StripPrefix("/data", http.FileServer(http.Dir("testdata"))).ServeHTTP(w, r)
			}
		}))
		defer srv.Close()

		c := New(WithBaseURL(srv.URL+"/data/"), WithHTTPClient(srv.Client()), WithTimeout(time.Second))
		ctx := context.Background()

		convey.So(c.String(), convey.ShouldEqual, "url:"+srv.URL+"/data")

		convey.Convey("When listing matches", func() {
			matches, err := c.Matches(ctx, 55, 282)

			convey.Convey("Then the documented path is requested", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(matches, convey.ShouldHaveLength, 2)
				convey.So(paths, convey.ShouldContain, "/data/matches/55/282.json")
			})
		})

		convey.Convey("When loading events", func() {
			events, err := c.Events(ctx, 3942819)

			convey.Convey("Then they decode like the local layout", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(events, convey.ShouldHaveLength, 5)
				convey.So(events[1].RecipientName, convey.ShouldEqual, "Xavi Simons")
			})
		})

		convey.Convey("When the server answers 404", func() {
			_, err := c.Lineups(ctx, 99)

			convey.Convey("Then ErrNotFound is returned", func() {
				convey.So(errors.Is(err, ErrNotFound), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the server fails", func() {
			_, err := c.Events(ctx, 500)

			convey.Convey("Then ErrUpstream is returned", func() {
				convey.So(errors.Is(err, ErrUpstream), convey.ShouldBeTrue)
				convey.So(errorKind(err), convey.ShouldEqual, "upstream")
			})
		})
	})
}

func TestClientStalledBody(t *testing.T) {
	convey.Convey("Given a server that stalls after the first byte", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("["))
			w.(http.Flusher).Flush()
			select {
			case <-r.Context().Done():
			case <-time.After(300 * time.Millisecond):
			}
		}))
		defer srv.Close()

		c := New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()), WithTimeout(50*time.Millisecond))

		convey.Convey("When the fetch timeout expires mid-body", func() {
			_, err := c.Events(context.Background(), 1)

			convey.Convey("Then a timeout is reported, not a decode failure", func() {
				convey.So(errors.Is(err, context.DeadlineExceeded), convey.ShouldBeTrue)
				convey.So(errors.Is(err, ErrUpstream), convey.ShouldBeTrue)
				convey.So(errors.Is(err, ErrDecode), convey.ShouldBeFalse)
				convey.So(errorKind(err), convey.ShouldEqual, "timeout")
			})
		})
	})
}

func TestErrorKind(t *testing.T) {
	convey.Convey("Given fetch errors", t, func() {
		convey.So(errorKind(ErrNotFound), convey.ShouldEqual, "not_found")
		convey.So(errorKind(ErrDecode), convey.ShouldEqual, "decode")
		convey.So(errorKind(context.DeadlineExceeded), convey.ShouldEqual, "timeout")
		convey.So(errorKind(errors.New("boom")), convey.ShouldEqual, "upstream")
	})
}
