package app

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/domain/feed"
)

type feedItemsRoot struct {
	Items *[]feedItemRecord `json:"items"`
}

type feedItemRecord struct {
	ID          string  `json:"id"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Image       string  `json:"image"`
}

// MapFeedItems turns a received response into a LoadResult. Only status 200
// with a well formed payload succeeds; a single bad record fails the batch.
func MapFeedItems(body []byte, statusCode int) feed.LoadResult {
	items, err := mapFeedItems(body, statusCode)
	if err != nil {
		log.Printf("[DEBUG] invalid feed response: %v", err)
		return feed.NewLoadFailure(feed.ErrInvalidData)
	}
	return feed.NewLoadSuccess(items)
}

func mapFeedItems(body []byte, statusCode int) ([]feed.Item, error) {
	if statusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status code %d", statusCode)
	}

	var root feedItemsRoot
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, errors.Wrap(err, "error decoding the payload")
	}

	if root.Items == nil {
		return nil, errors.New("payload has no items array")
	}

	items := make([]feed.Item, 0, len(*root.Items))
	for i, record := range *root.Items {
		item, err := record.toItem()
		if err != nil {
			return nil, errors.Wrapf(err, "error mapping item at index %d", i)
		}
		items = append(items, item)
	}

	return items, nil
}

func (r feedItemRecord) toItem() (feed.Item, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return feed.Item{}, errors.Wrap(err, "error parsing id")
	}

	imageURL, err := feed.NewImageURL(r.Image)
	if err != nil {
		return feed.Item{}, errors.Wrap(err, "error parsing image")
	}

	return feed.NewItem(
		id,
		feed.NewTextFromPointer(r.Description),
		feed.NewTextFromPointer(r.Location),
		imageURL,
	), nil
}
