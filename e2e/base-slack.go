package e2e

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"randomcoffee/observability"
	"randomcoffee/slackapi"

	"github.com/gookit/color"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/suite"
)

type BaseSlackSuite struct {
	suite.Suite
	Config Config
	Report *observability.RunReport
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSlackSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.SlackToken == "" {
		s.T().Skip("E2E_SLACK_TOKEN not set, skipping Slack end-to-end tests")
	}
	s.Report = observability.NewRunReport()
}

// Gateway builds a real Slack client against the sandbox workspace, with a
// colorized header in the test log.
func (s *BaseSlackSuite) Gateway(t *testing.T, name string) *slackapi.Client {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	api := slack.New(s.Config.SlackToken)
	return slackapi.NewClient(api, slog.Default(), s.Report, 200, time.Second, false)
}
