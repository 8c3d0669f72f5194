package internal

import (
	"strconv"
	"strings"
	"time"

	"randomcoffee/errors"

	"github.com/go-playground/validator/v10"
)

// Toggle is a boolean that accepts the historical spellings of the bot's
// environment flags: true/t/yes/y/1, case insensitive. Anything else is
// false.
type Toggle bool

func (t *Toggle) UnmarshalEnvironmentValue(data string) error {
	switch strings.ToLower(strings.TrimSpace(data)) {
	case "true", "t", "yes", "y", "1":
		*t = true
	default:
		*t = false
	}
	return nil
}

func (t Toggle) MarshalEnvironmentValue() (string, error) {
	return strconv.FormatBool(bool(t)), nil
}

type Config struct {
	SlackAPIToken               string `env:"SLACK_API_TOKEN,required=true"`
	ChannelName                 string `env:"CHANNEL_NAME,required=true"`
	ChannelNameTesting          string `env:"CHANNEL_NAME_TESTING"`
	PrivateChannelNameForMemory string `env:"PRIVATE_CHANNEL_NAME_FOR_MEMORY"`
	TestingMode                 Toggle `env:"TESTING_MODE"`
	PairsArePublic              Toggle `env:"PAIRS_ARE_PUBLIC"`
	ChanNamesAreIDs             Toggle `env:"CHAN_NAMES_ARE_IDS"`
	MagicalText                 string `env:"MAGICAL_TEXT,required=true"`

	LookbackDays int    `env:"LOOKBACK_DAYS,default=28" validate:"min=1"`
	LogLevel     string `env:"LOG_LEVEL,default=INFO"`

	// HistoryDBPath enables the local BadgerDB history cache; empty
	// disables it and the memory channel alone is consulted.
	HistoryDBPath string `env:"HISTORY_DB_PATH"`

	DMWorkers    int           `env:"DM_WORKERS,default=2" validate:"min=1"`
	DMPace       time.Duration `env:"DM_PACE,default=1s"`
	PageSize     int           `env:"PAGE_SIZE,default=200" validate:"min=1,max=1000"`
	PageInterval time.Duration `env:"PAGE_INTERVAL,default=1s"`
	RoundTimeout time.Duration `env:"ROUND_TIMEOUT,default=5m"`
}

var validate = validator.New()

// Validate applies field rules plus the cross-field constraints the flags
// imply: private pairs need a memory channel, testing mode needs a
// testing channel.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if !bool(c.PairsArePublic) && c.PrivateChannelNameForMemory == "" {
		return errors.ErrNoMemoryChannel
	}
	if bool(c.TestingMode) && c.ChannelNameTesting == "" {
		return errors.ErrNoTestingChannel
	}
	return nil
}

// TargetChannel is the channel the round runs against, honoring testing
// mode.
func (c Config) TargetChannel() string {
	if c.TestingMode {
		return c.ChannelNameTesting
	}
	return c.ChannelName
}

// MemoryChannel is where the pairing history lives: the target channel
// itself when pairs are public, the dedicated private channel otherwise.
func (c Config) MemoryChannel() string {
	if c.PairsArePublic {
		return c.TargetChannel()
	}
	return c.PrivateChannelNameForMemory
}
