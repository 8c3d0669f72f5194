package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_SLACK_TOKEN is a bot token for a sandbox workspace. Tests skip
	// when it is empty so CI without Slack credentials stays green.
	SlackToken string `envconfig:"E2E_SLACK_TOKEN"`
	Channel    string `envconfig:"E2E_CHANNEL" default:"randomcoffees"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
