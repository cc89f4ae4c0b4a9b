package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess      = "success"
	ResultConnectivity = "connectivity"
	ResultInvalidData  = "invalid_data"
)

var (
	LoadRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "essentialfeed_load_requests_total",
		Help: "The total number of issued feed loads",
	})
	LoadResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "essentialfeed_load_results_total",
		Help: "Number of delivered feed load results by result.",
	}, []string{"result"})
	DroppedResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "essentialfeed_dropped_results_total",
		Help: "The total number of transport outcomes dropped because their loader was discarded",
	})
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "essentialfeed_http_requests_total",
		Help: "Number of performed HTTP requests by status code.",
	}, []string{"code"})
)
