package ports_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/app"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/domain/feed"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	firstAddress  = feed.MustNewAddress("https://first-url.com")
	secondAddress = feed.MustNewAddress("https://second-url.com")
)

func TestHandleWithoutAddressesDoesNothing(t *testing.T) {
	client := newImmediateClient()
	command := ports.NewLoadFeedsCommand(client)

	results, err := command.Handle(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, client.requested())
}

func TestHandleReturnsResultsInAddressOrder(t *testing.T) {
	client := newImmediateClient()
	client.respond(firstAddress, app.NewHTTPClientSuccess([]byte(`{"items": []}`), 200))
	client.respond(secondAddress, app.NewHTTPClientSuccess([]byte(`{"items": []}`), 200))
	command := ports.NewLoadFeedsCommand(client)

	results, err := command.Handle(context.Background(), []feed.Address{firstAddress, secondAddress})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, firstAddress, results[0].Address)
	assert.Equal(t, secondAddress, results[1].Address)
	assert.ElementsMatch(t, []feed.Address{firstAddress, secondAddress}, client.requested())
}

func TestHandleAggregatesFailures(t *testing.T) {
	client := newImmediateClient()
	client.respond(firstAddress, app.NewHTTPClientFailure(errors.New("offline")))
	client.respond(secondAddress, app.NewHTTPClientSuccess([]byte(`invalid json`), 200))
	command := ports.NewLoadFeedsCommand(client)

	results, err := command.Handle(context.Background(), []feed.Address{firstAddress, secondAddress})

	require.Error(t, err)
	assert.ErrorIs(t, err, feed.ErrConnectivity)
	assert.ErrorIs(t, err, feed.ErrInvalidData)
	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Result.Err(), feed.ErrConnectivity)
	assert.ErrorIs(t, results[1].Result.Err(), feed.ErrInvalidData)
}

func TestHandleDiscardsPendingLoadsWhenContextEnds(t *testing.T) {
	client := newImmediateClient()
	client.respond(firstAddress, app.NewHTTPClientSuccess([]byte(`{"items": []}`), 200))
	command := ports.NewLoadFeedsCommand(client)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	results, err := command.Handle(ctx, []feed.Address{firstAddress, secondAddress})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.Len(t, results, 1)
	assert.Equal(t, firstAddress, results[0].Address)

	assert.NotPanics(t, func() {
		client.completePending(app.NewHTTPClientSuccess([]byte(`{"items": []}`), 200))
	})
}

// immediateClient completes requests for stubbed addresses right away and
// keeps the others pending.
type immediateClient struct {
	lock      sync.Mutex
	responses map[feed.Address]app.HTTPClientResult
	addresses []feed.Address
	pending   []func(app.HTTPClientResult)
}

func newImmediateClient() *immediateClient {
	return &immediateClient{responses: make(map[feed.Address]app.HTTPClientResult)}
}

func (c *immediateClient) respond(address feed.Address, result app.HTTPClientResult) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.responses[address] = result
}

func (c *immediateClient) Get(address feed.Address, completion func(app.HTTPClientResult)) {
	c.lock.Lock()
	c.addresses = append(c.addresses, address)
	result, ok := c.responses[address]
	if !ok {
		c.pending = append(c.pending, completion)
	}
	c.lock.Unlock()

	if ok {
		completion(result)
	}
}

func (c *immediateClient) requested() []feed.Address {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]feed.Address(nil), c.addresses...)
}

func (c *immediateClient) completePending(result app.HTTPClientResult) {
	c.lock.Lock()
	pending := c.pending
	c.pending = nil
	c.lock.Unlock()

	for _, completion := range pending {
		completion(result)
	}
}
