package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Enabled(), ShouldBeTrue)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithMetricPrefix("test"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then metric names carry the namespace and prefix", func() {
				So(manager, ShouldNotBeNil)
				manager.matchesLoaded.Set(3)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, f := range families {
					if f.GetName() == "test_namespace_test_subsystem_test_matches_loaded" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When options receive empty values", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithRefreshInterval(-1*time.Second),
				WithCustomLabels(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "passnet")
				So(manager.subsystem, ShouldEqual, "network")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
				So(manager.refreshInterval, ShouldEqual, defaultRefreshInterval)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording renders", func() {
			before := value("passnet_network_renders_total", "home")
			RecordRender("home")
			RecordRender("home")

			Convey("Then the side counter increases", func() {
				So(value("passnet_network_renders_total", "home"), ShouldEqual, before+2)
			})
		})

		Convey("When recording network sizes and empty networks", func() {
			before := value("passnet_network_networks_built_total", "")
			noPasses := value("passnet_network_no_passes_total", "")
			RecordNetworkSize(24, 11)
			RecordNoPasses()

			Convey("Then the counters increase", func() {
				So(value("passnet_network_networks_built_total", ""), ShouldEqual, before+1)
				So(value("passnet_network_no_passes_total", ""), ShouldEqual, noPasses+1)
			})
		})

		Convey("When updating matches loaded", func() {
			UpdateMatchesLoaded(51)

			Convey("Then the gauge reflects the value", func() {
				So(value("passnet_network_matches_loaded", ""), ShouldEqual, 51)
			})
		})

		Convey("When recording source fetches and errors", func() {
			Convey("Then nothing panics", func() {
				So(func() {
					RecordSourceFetch("events", 120.5, 2048)
					RecordSourceFetch("lineups", 12, 0)
					RecordSourceError("events", "not_found")
					RecordEventsProcessed(3500)
					RecordRenderLatency(42)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP and error metrics", func() {
			Convey("Then nothing panics", func() {
				So(func() {
					RecordHTTPRequest("matches", "GET", "200")
					RecordHTTPRequestDuration("matches", "GET", "200", 5.0)
					RecordErrorByComponent("statsbomb", "upstream")
					RecordErrorByType("server_error", "high")
					RecordErrorByEndpoint("network", "GET", "not_found")
					RecordErrorLatency("http", "not_found", 3.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording queue and worker metrics", func() {
			UpdateQueueCapacity(64)
			UpdateQueueSize(3)
			UpdateWorkerCount(4)

			Convey("Then the gauges reflect the values", func() {
				So(value("passnet_network_queue_capacity", ""), ShouldEqual, 64)
				So(value("passnet_network_queue_size", ""), ShouldEqual, 3)
				So(value("passnet_network_workers", ""), ShouldEqual, 4)
				So(func() {
					RecordQueueRejected("full")
					RecordQueueWait(1.5)
					UpdateWorkersBusy(1)
					UpdateWorkersBusy(-1)
					RecordJobProcessed("ok")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			Convey("Then nothing panics", func() {
				So(func() {
					UpdateSystemMemoryUsage(1024 * 1024)
					UpdateSystemGoroutineCount(12)
					RecordSystemGCPauseTime(0.4)
				}, ShouldNotPanic)
			})
		})

		Convey("When gathering the registry", func() {
			RecordRender("away")
			families, err := GetRegistry().Gather()

			Convey("Then passnet metrics are exposed", func() {
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(strings.Join(names, ","), ShouldContainSubstring, "passnet_network_renders_total")
			})
		})

		Convey("Then the refresh interval has a default", func() {
			So(RefreshInterval(), ShouldEqual, defaultRefreshInterval)
		})
	})
}

// value reads a counter or gauge from the global registry. When side is set
// only the sample with that side label is considered.
func value(name, side string) float64 {
	families, err := GetRegistry().Gather()
	if err != nil {
		return -1
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			if side != "" {
				match := false
				for _, l := range m.GetLabel() {
					if l.GetName() == "side" && l.GetValue() == side {
						match = true
					}
				}
				if !match {
					continue
				}
			}
			if c := m.GetCounter(); c != nil {
				return c.GetValue()
			}
			return m.GetGauge().GetValue()
		}
	}
	return 0
}
