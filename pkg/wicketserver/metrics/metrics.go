package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
	"github.com/hearthcheck/wicket/pkg/gatekeeping"
	"github.com/hearthcheck/wicket/pkg/goldenpath"
)

const (
	routeDecisionsMetricName    = "wicket_route_decisions_total"
	goldenPathPassingMetricName = "wicket_golden_path_passing"
	goldenPathLastRunMetricName = "wicket_golden_path_last_run_timestamp_seconds"
)

var (
	routeDecisionsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: routeDecisionsMetricName,
		Help: "Route access decisions, labeled by matched route pattern and outcome",
	}, []string{"route", "allowed", "badge"})

	goldenPathPassingMetric = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: goldenPathPassingMetricName,
		Help: "Whether the golden path currently passes (1) or gates its routes closed (0)",
	}, []string{"test_id", "state"})

	goldenPathLastRunMetric = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: goldenPathLastRunMetricName,
		Help: "Unix timestamp of the golden path's last recorded run",
	}, []string{"test_id"})
)

// RecordDecision counts one evaluation. The matched route pattern
// keeps the label set bounded; unregistered paths all count against
// "unmatched".
func RecordDecision(decision gatekeepingv1.RouteAccessDecision) {
	route := "unmatched"
	if decision.Route != nil {
		route = decision.Route.Path
	}
	routeDecisionsMetric.WithLabelValues(route, strconv.FormatBool(decision.Allowed), string(decision.Badge)).Inc()
}

// Refresh re-resolves every declared golden path into gauges. Called
// once at startup and then on a ticker while serving.
func Refresh(evaluator *gatekeeping.Evaluator, resolver *goldenpath.Resolver) {
	for _, id := range evaluator.DeclaredGoldenPaths() {
		status := resolver.StatusFor(id)

		goldenPathPassingMetric.DeletePartialMatch(prometheus.Labels{"test_id": id})
		passing := 0.0
		if status.Passing() {
			passing = 1.0
		}
		goldenPathPassingMetric.WithLabelValues(id, string(status.State)).Set(passing)

		if status.LastRun != nil {
			goldenPathLastRunMetric.WithLabelValues(id).Set(float64(status.LastRun.Unix()))
		}

		log.Debugf("golden path %s resolved to %s", id, status.State)
	}
}
