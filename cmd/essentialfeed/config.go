package main

import (
	"io"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/logutils"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/domain/feed"
	"golang.org/x/exp/slices"
)

const envPrefix = "essentialfeed"

var logLevels = []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

type Config struct {
	FeedURLs  []string      `envconfig:"FEED_URLS" default:"" validate:"required,min=1,dive,http_url"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0s"`
	Wait      time.Duration `envconfig:"WAIT" default:"1m" validate:"gt=0s"`
	UserAgent string        `envconfig:"USER_AGENT" default:"essentialfeed" validate:"required"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"INFO"`
}

// LoadConfig reads the environment. Feed URLs passed as arguments replace
// the ones from the environment.
func LoadConfig(args []string) (Config, error) {
	var config Config
	if err := envconfig.Process(envPrefix, &config); err != nil {
		return Config{}, errors.Wrap(err, "couldn't process envconfig")
	}

	if len(args) > 0 {
		config.FeedURLs = args
	}
	config.LogLevel = strings.ToUpper(config.LogLevel)

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	if !slices.Contains(logLevels, logutils.LogLevel(c.LogLevel)) {
		return errors.Errorf("invalid configuration: unknown log level '%s'", c.LogLevel)
	}

	return nil
}

func (c Config) Addresses() ([]feed.Address, error) {
	var addresses []feed.Address
	for _, s := range c.FeedURLs {
		address, err := feed.NewAddress(s)
		if err != nil {
			return nil, errors.Wrapf(err, "error creating address from '%s'", s)
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}

func ConfigureLogging(minLevel string, w io.Writer) {
	filter := &logutils.LevelFilter{
		Levels:   logLevels,
		MinLevel: logutils.LogLevel(minLevel),
		Writer:   w,
	}
	log.SetOutput(filter)
}
