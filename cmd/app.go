// Package cmd implements the CLI application to inspect a MockExchange
// account.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mockexchange/dash/mex"
	"github.com/mockexchange/dash/palette"
)

// Commands are the subcommands of the mexdash binary.
// A main package registers each of them and Executes the user-selected one.
var Commands = []subcommands.Command{
	&overviewCmd{},
	&portfolioCmd{},
	&ordersCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

const (
	apiURLEnv      = "API_URL"
	apiKeyEnv      = "API_KEY"
	quoteAssetEnv  = "QUOTE_ASSET"
	freshWindowEnv = "FRESH_WINDOW_S"
	fadeLevelsEnv  = "N_VISUAL_DEGRADATIONS"
)

var (
	apiURLFlag = flag.String("api-url", "", "Base URL of the MockExchange API.\n If missing it is read from the environment variable "+apiURLEnv+".")
	apiKeyFlag = flag.String("api-key", "", "API key sent as the x-api-key header.\n If missing it is read from the environment variable "+apiKeyEnv+".")
	quoteFlag  = flag.String("quote", "", "Quote asset all values are denominated in.\n If missing it is read from the environment variable "+quoteAssetEnv+", defaulting to USDT.")
	verbose    = flag.Bool("v", false, "Enable debug logging.")
)

var loadEnvOnce sync.Once

// loadEnv loads the optional .env file and configures logging, once, before
// any flag/env fallback is resolved.
func loadEnv() {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
		if *verbose || strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})
}

func apiURL() string {
	loadEnv()
	if *apiURLFlag == "" {
		*apiURLFlag = os.Getenv(apiURLEnv)
	}
	return *apiURLFlag
}

func apiKey() string {
	loadEnv()
	if *apiKeyFlag == "" {
		*apiKeyFlag = os.Getenv(apiKeyEnv)
	}
	return *apiKeyFlag
}

func quoteAsset() string {
	loadEnv()
	if *quoteFlag == "" {
		*quoteFlag = os.Getenv(quoteAssetEnv)
	}
	if *quoteFlag == "" {
		*quoteFlag = "USDT"
	}
	return *quoteFlag
}

// envFreshWindow is the order-aging fresh window, in seconds, 300 by default.
func envFreshWindow() time.Duration {
	loadEnv()
	if s := os.Getenv(freshWindowEnv); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
		logrus.WithField(freshWindowEnv, s).Warn("ignoring invalid fresh window")
	}
	return 300 * time.Second
}

// envFadeLevels is the number of visual degradation steps of the order table.
func envFadeLevels() int {
	loadEnv()
	if s := os.Getenv(fadeLevelsEnv); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 2 {
			return n
		}
		logrus.WithField(fadeLevelsEnv, s).Warn("ignoring invalid degradation count")
	}
	return palette.DefaultLevels
}

// newClient builds the API client from the resolved configuration.
func newClient() (*mex.Client, error) {
	url := apiURL()
	if url == "" {
		return nil, fmt.Errorf("no API base URL: set -api-url or the %s environment variable", apiURLEnv)
	}
	return mex.New(url, apiKey()), nil
}
