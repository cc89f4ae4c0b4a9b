package adapters

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/metrics"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/app"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/domain/feed"
)

const defaultUserAgent = "essentialfeed"

// Session executes a single HTTP request. *http.Client satisfies it.
type Session interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewSession(timeout time.Duration) *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 2 {
				return errors.New("stopped after 2 redirects")
			}
			return nil
		},
		Timeout: timeout,
	}
}

// HTTPClient performs each Get on its own goroutine and reports the outcome
// from there.
type HTTPClient struct {
	session   Session
	userAgent string
}

func NewHTTPClient(session Session, userAgent string) *HTTPClient {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &HTTPClient{session: session, userAgent: userAgent}
}

func (c *HTTPClient) Get(address feed.Address, completion func(app.HTTPClientResult)) {
	go func() {
		completion(c.get(address))
	}()
}

func (c *HTTPClient) get(address feed.Address) app.HTTPClientResult {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, address.String(), nil)
	if err != nil {
		return app.NewHTTPClientFailure(errors.Wrap(err, "error creating the request"))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.session.Do(req)
	if err != nil {
		return app.NewHTTPClientFailure(err)
	}
	defer resp.Body.Close() // not much we can do here

	metrics.HTTPRequests.With(prometheus.Labels{"code": strconv.Itoa(resp.StatusCode)}).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return app.NewHTTPClientFailure(errors.Wrap(err, "error reading the response body"))
	}

	return app.NewHTTPClientSuccess(body, resp.StatusCode)
}
