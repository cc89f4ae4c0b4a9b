package ports

import (
	"context"
	"log"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/app"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/domain/feed"
)

type AddressResult struct {
	Address feed.Address
	Result  feed.LoadResult
}

// LoadFeedsCommand loads every address once and waits for the results until
// its context ends. Loaders still pending at that point are discarded.
type LoadFeedsCommand struct {
	client app.HTTPClient
}

func NewLoadFeedsCommand(client app.HTTPClient) *LoadFeedsCommand {
	return &LoadFeedsCommand{client: client}
}

func (c *LoadFeedsCommand) Handle(ctx context.Context, addresses []feed.Address) ([]AddressResult, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	// buffered so that a result racing with Close never blocks the client
	chOut := make(chan indexedResult, len(addresses))

	loaders := make([]*app.RemoteFeedLoader, 0, len(addresses))
	defer func() {
		for _, loader := range loaders {
			loader.Close()
		}
	}()

	for i, address := range addresses {
		loader := app.NewRemoteFeedLoader(address, c.client)
		loaders = append(loaders, loader)

		log.Printf("[DEBUG] loading feed %s", address)
		loader.Load(func(result feed.LoadResult) {
			chOut <- indexedResult{index: i, result: result}
		})
	}

	received := make([]*feed.LoadResult, len(addresses))
	for n := 0; n < len(addresses); n++ {
		select {
		case r := <-chOut:
			result := r.result
			received[r.index] = &result
		case <-ctx.Done():
			results, err := c.collect(addresses, received)
			return results, multierror.Append(err, errors.Wrap(ctx.Err(), "stopped waiting for feeds"))
		}
	}

	results, err := c.collect(addresses, received)
	if err != nil {
		return results, err
	}
	return results, nil
}

func (c *LoadFeedsCommand) collect(addresses []feed.Address, received []*feed.LoadResult) ([]AddressResult, *multierror.Error) {
	var results []AddressResult
	var resultErr *multierror.Error

	for i, result := range received {
		if result == nil {
			continue
		}

		results = append(results, AddressResult{Address: addresses[i], Result: *result})

		if err := result.Err(); err != nil {
			resultErr = multierror.Append(resultErr, errors.Wrapf(err, "error loading feed '%s'", addresses[i]))
		}
	}

	return results, resultErr
}

type indexedResult struct {
	index  int
	result feed.LoadResult
}
