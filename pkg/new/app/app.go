package app

import (
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/domain/feed"
)

// HTTPClient performs a GET request and reports its outcome exactly once,
// possibly from another goroutine.
type HTTPClient interface {
	Get(address feed.Address, completion func(HTTPClientResult))
}

// HTTPClientResult is either a received response or a transport error.
type HTTPClientResult struct {
	body       []byte
	statusCode int
	err        error
}

func NewHTTPClientSuccess(body []byte, statusCode int) HTTPClientResult {
	return HTTPClientResult{body: body, statusCode: statusCode}
}

func NewHTTPClientFailure(err error) HTTPClientResult {
	return HTTPClientResult{err: err}
}

func (r HTTPClientResult) Body() []byte {
	return r.body
}

func (r HTTPClientResult) StatusCode() int {
	return r.statusCode
}

func (r HTTPClientResult) Err() error {
	return r.err
}
