package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"randomcoffee/announce"
	"randomcoffee/internal"
	"randomcoffee/observability"
	"randomcoffee/repositories"
	"randomcoffee/services"
	"randomcoffee/slackapi"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/slack-go/slack"
)

// Exit codes to provide meaningful status to the scheduler running the
// container (cron, systemd timer, CI job).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "randomcoffee terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run executes one round and centralizes error reporting, so that 'defer'
// statements (like closing the history cache) execute before the process
// exits. The schedule itself stays external: one invocation, one round.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	report := observability.NewRunReport()
	defer report.Log(logger)

	// 2. Context & Signals. A round has a hard deadline; a signal cancels
	// whatever Slack call is in flight.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, config.RoundTimeout)
	defer cancel()

	// 3. Local history cache (optional)
	var cache repositories.IHistoryCache
	if config.HistoryDBPath != "" {
		options := badger.DefaultOptions(config.HistoryDBPath).
			WithLoggingLevel(badger.WARNING)
		db, err := badger.Open(options)
		if err != nil {
			return exitRuntime, fmt.Errorf("history cache opening failed: %w", err)
		}
		defer func() {
			logger.Info("Closing history cache...")
			_ = db.Close()
		}()
		cache = repositories.NewBadgerHistoryRepository(db, logger)
	}

	// 4. Slack gateway and services
	api := slack.New(config.SlackAPIToken)
	gateway := slackapi.NewClient(
		api, logger, report,
		config.PageSize, config.PageInterval, bool(config.ChanNamesAreIDs),
	)
	codec := announce.Codec{
		MagicalText:  config.MagicalText,
		LookbackDays: config.LookbackDays,
		Testing:      bool(config.TestingMode),
	}
	roster := services.NewRosterService(gateway, logger, report, bool(config.TestingMode))
	channelLog := repositories.NewChannelHistoryRepository(gateway, codec, logger, report)

	roundCfg := services.RoundConfig{
		MainChannel:    config.TargetChannel(),
		MemoryChannel:  config.MemoryChannel(),
		PairsArePublic: bool(config.PairsArePublic),
		LookbackDays:   config.LookbackDays,
		DMWorkers:      config.DMWorkers,
		DMPace:         config.DMPace,
	}
	logger.Info("Starting round",
		"channel", roundCfg.MainChannel,
		"memory", roundCfg.MemoryChannel,
		"testing", bool(config.TestingMode),
		"public", bool(config.PairsArePublic),
		"lookback_days", config.LookbackDays,
	)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	round := services.NewRoundService(
		logger, gateway, roster, channelLog, cache, codec, report, rng, roundCfg,
	)

	// 5. Run the round
	if err := round.Run(ctx); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}
