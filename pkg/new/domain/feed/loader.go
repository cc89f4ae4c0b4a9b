package feed

import "errors"

var (
	// ErrConnectivity is reported when no response could be received at all.
	ErrConnectivity = errors.New("connectivity")

	// ErrInvalidData is reported when a response was received but could not
	// be turned into items.
	ErrInvalidData = errors.New("invalid data")
)

// LoadResult is the terminal value of a single load. It holds either the
// loaded items or one of ErrConnectivity and ErrInvalidData.
type LoadResult struct {
	items []Item
	err   error
}

func NewLoadSuccess(items []Item) LoadResult {
	if items == nil {
		items = []Item{}
	}
	return LoadResult{items: items}
}

func NewLoadFailure(err error) LoadResult {
	return LoadResult{err: err}
}

func (r LoadResult) Items() []Item {
	return r.items
}

func (r LoadResult) Err() error {
	return r.err
}

func (r LoadResult) Succeeded() bool {
	return r.err == nil
}

// Loader delivers exactly one LoadResult to completion per call unless the
// loader is discarded first.
type Loader interface {
	Load(completion func(LoadResult))
}
