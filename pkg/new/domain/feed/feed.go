package feed

import (
	"net/url"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/helpers"
)

// Item is a single entry of a remote feed. Items are values: two items are
// equal when all of their fields are equal.
type Item struct {
	id          uuid.UUID
	description Text
	location    Text
	imageURL    ImageURL
}

func NewItem(id uuid.UUID, description Text, location Text, imageURL ImageURL) Item {
	return Item{
		id:          id,
		description: description,
		location:    location,
		imageURL:    imageURL,
	}
}

func (i Item) ID() uuid.UUID {
	return i.id
}

func (i Item) Description() Text {
	return i.description
}

func (i Item) Location() Text {
	return i.location
}

func (i Item) ImageURL() ImageURL {
	return i.imageURL
}

func (i Item) Equal(o Item) bool {
	return i == o
}

// Text is an optional piece of text. The zero value holds no value.
type Text struct {
	s     string
	valid bool
}

func NewText(s string) Text {
	return Text{s: s, valid: true}
}

// NewTextFromPointer maps nil to a Text without a value.
func NewTextFromPointer(s *string) Text {
	if s == nil {
		return Text{}
	}
	return NewText(*s)
}

func (t Text) Value() (string, bool) {
	return t.s, t.valid
}

func (t Text) Valid() bool {
	return t.valid
}

type ImageURL struct {
	s string
}

func NewImageURL(s string) (ImageURL, error) {
	if s == "" {
		return ImageURL{}, errors.New("image url can't be an empty string")
	}

	u, err := url.Parse(s)
	if err != nil {
		return ImageURL{}, errors.Wrap(err, "error parsing image url")
	}

	if !u.IsAbs() {
		return ImageURL{}, errors.New("image url must be absolute")
	}

	return ImageURL{s: u.String()}, nil
}

func MustNewImageURL(s string) ImageURL {
	v, err := NewImageURL(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (i ImageURL) String() string {
	return i.s
}

// Address is the location a feed is loaded from.
type Address struct {
	s string
}

func NewAddress(s string) (Address, error) {
	if s == "" {
		return Address{}, errors.New("address can't be an empty string")
	}

	if !helpers.IsValidHttpUrl(s) {
		return Address{}, errors.New("invalid URL provided (must be in absolute format and with http or https scheme)")
	}

	return Address{s: s}, nil
}

func MustNewAddress(s string) Address {
	v, err := NewAddress(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (a Address) String() string {
	return a.s
}
