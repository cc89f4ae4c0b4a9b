package app

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/metrics"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/domain/feed"
)

// RemoteFeedLoader loads feed items from a single address. Every call to Load
// issues its own request. Once Close has been called no further results are
// delivered, including those of requests that are still in flight.
type RemoteFeedLoader struct {
	address   feed.Address
	client    HTTPClient
	lifecycle *lifecycle
}

func NewRemoteFeedLoader(address feed.Address, client HTTPClient) *RemoteFeedLoader {
	return &RemoteFeedLoader{
		address:   address,
		client:    client,
		lifecycle: &lifecycle{},
	}
}

// Load returns immediately. completion is called at most once, on whatever
// goroutine the client reports its outcome on.
func (l *RemoteFeedLoader) Load(completion func(feed.LoadResult)) {
	metrics.LoadRequests.Inc()

	guard := l.lifecycle
	address := l.address
	handled := newOnce(func(result HTTPClientResult) {
		if !guard.alive() {
			log.Printf("[DEBUG] dropping outcome for %s: loader was discarded", address)
			metrics.DroppedResults.Inc()
			return
		}

		loadResult := toLoadResult(result)
		metrics.LoadResults.With(prometheus.Labels{"result": resultLabel(loadResult)}).Inc()
		completion(loadResult)
	})

	l.client.Get(address, func(result HTTPClientResult) {
		if !handled.fire(result) {
			log.Printf("[WARN] ignoring repeated outcome for %s", address)
		}
	})
}

// Close discards the loader.
func (l *RemoteFeedLoader) Close() {
	l.lifecycle.discard()
}

func toLoadResult(result HTTPClientResult) feed.LoadResult {
	if err := result.Err(); err != nil {
		log.Printf("[DEBUG] transport failure: %v", err)
		return feed.NewLoadFailure(feed.ErrConnectivity)
	}
	return MapFeedItems(result.Body(), result.StatusCode())
}

func resultLabel(result feed.LoadResult) string {
	switch result.Err() {
	case nil:
		return metrics.ResultSuccess
	case feed.ErrConnectivity:
		return metrics.ResultConnectivity
	default:
		return metrics.ResultInvalidData
	}
}
