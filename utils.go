/* utils.go
 * Utility functions used by the command line entry point: flags, configuration, logging and the offline score command
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"scouting-bot/api/api"
	"scouting-bot/api/external"
	"scouting-bot/api/logic"
	"scouting-bot/api/match"
)

const (
	dbFlag          = "db"
	mongoURIFlag    = "mongo-uri"
	eventFlag       = "event"
	addrFlag        = "addr"
	rateFlag        = "rate"
	burstFlag       = "burst"
	testFlag        = "test"
	logLevelFlag    = "log-level"
	credentialsFlag = "credentials"
	sheetURLFlag    = "sheet-url"
	sheetNameFlag   = "sheet-name"
	strategyFlag    = "strategy"
)

var semanticVersion = "v0.1.0-dev"

// Config is everything needed to connect to the database and the optional Google Sheet
type Config struct {
	DBName          string
	MongoURI        string
	Event           string
	CredentialsFile string
	SheetURL        string
	SheetName       string
}

// newApp creates the command line app with the global flags. Commands are added by main
func newApp() *cli.App {
	return &cli.App{
		Name:    "scouting-bot",
		Usage:   "Match scouting for FTC Freight Frenzy events",
		Version: semanticVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: dbFlag, Usage: "MongoDB database name", EnvVars: []string{"DB_NAME"}, Value: "scouting"},
			&cli.StringFlag{Name: mongoURIFlag, Usage: "MongoDB connection string", EnvVars: []string{"MONGO_URI"}},
			&cli.StringFlag{Name: eventFlag, Usage: "Event the entries belong to, e.g. 2022-worlds", EnvVars: []string{"EVENT"}},
			&cli.StringFlag{Name: addrFlag, Usage: "Address the HTTP API listens on", EnvVars: []string{"HTTP_ADDR"}, Value: ":8080"},
			&cli.Float64Flag{Name: rateFlag, Usage: "Write requests per second allowed per client"},
			&cli.IntFlag{Name: burstFlag, Usage: "Write request burst allowed per client"},
			&cli.BoolFlag{Name: testFlag, Usage: "Use the beta Discord token instead of the production token"},
			&cli.StringFlag{Name: logLevelFlag, Usage: "Log level (debug, info, warn, error)", EnvVars: []string{"LOG_LEVEL"}, Value: "info"},
			&cli.StringFlag{Name: credentialsFlag, Usage: "Google service account credentials file", EnvVars: []string{"GOOGLE_CREDENTIALS_FILE"}},
			&cli.StringFlag{Name: sheetURLFlag, Usage: "URL of the Google Sheet the overview is uploaded to", EnvVars: []string{"SHEET_URL"}},
			&cli.StringFlag{Name: sheetNameFlag, Usage: "Tab of the Google Sheet the overview is written to", Value: "Overview"},
		},
		Before: func(cCtx *cli.Context) error {
			return configureLogging(cCtx.String(logLevelFlag))
		},
	}
}

// configureLogging sets the logrus level from a level name
// Preconditions: Receives a level name such as "debug" or "warn" (case insensitive)
// Postconditions: Sets the global log level, or returns an error if the level is unknown
func configureLogging(level string) error {
	parsed, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(parsed)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}

func loadConfig(cCtx *cli.Context) Config {
	return Config{
		DBName:          cCtx.String(dbFlag),
		MongoURI:        cCtx.String(mongoURIFlag),
		Event:           cCtx.String(eventFlag),
		CredentialsFile: cCtx.String(credentialsFlag),
		SheetURL:        cCtx.String(sheetURLFlag),
		SheetName:       cCtx.String(sheetNameFlag),
	}
}

// discordToken picks the production or beta Discord token
// Preconditions: Receives whether the beta bot is used and a lookup for environment variables
// Postconditions: Returns the token, or an error if the matching variable is unset
func discordToken(test bool, getenv func(string) string) (string, error) {
	name := "DISCORD_PROD_TOKEN"
	if test {
		name = "DISCORD_BETA_TOKEN"
	}
	token := getenv(name)
	if token == "" {
		return "", fmt.Errorf("%s is not set", name)
	}
	return token, nil
}

// openAPI connects to the database and, when credentials and a sheet url are configured, to Google Sheets
func openAPI(ctx context.Context, cfg Config) (*api.API, error) {
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("mongo uri is required, set --%s or MONGO_URI", mongoURIFlag)
	}
	apiPtr, err := api.NewAPI(ctx, cfg.DBName, cfg.MongoURI, cfg.Event)
	if err != nil {
		return nil, err
	}

	if cfg.CredentialsFile == "" || cfg.SheetURL == "" {
		log.Debug("google sheets export not configured")
		return apiPtr, nil
	}
	credentials, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	apiPtr.Sheets, err = external.NewSheetsClient(ctx, credentials, cfg.SheetURL, cfg.SheetName)
	if err != nil {
		return nil, err
	}
	return apiPtr, nil
}

// readInput reads an export file from a URL or a local path
func readInput(ctx context.Context, location string) ([]byte, error) {
	if u, err := url.ParseRequestURI(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		log.WithField("url", location).Debug("URL detected")
		return external.FetchFile(ctx, u.String())
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("provided input was neither a valid URL or a path to an existing file: %w", err)
	}
	return data, nil
}

// writeScoreReport writes the scores of every entry followed by the overview of every team
func writeScoreReport(w io.Writer, entries []*match.Entry) error {
	sorted := append([]*match.Entry(nil), entries...)
	logic.SortByMatchCode(sorted)

	var report strings.Builder
	report.WriteString("Entries (auto / teleop / endgame = total):\n")
	for _, entry := range sorted {
		report.WriteString(fmt.Sprintf("%s: %d / %d / %d = %d\n",
			entry.Key(), entry.AutoScore(), entry.TeleOpScore(), entry.EndgameScore(), entry.TotalScore()))
	}

	report.WriteString("\nTeam overview (auto / teleop / endgame / contribution):\n")
	for _, o := range logic.AnalyzeAll(entries) {
		report.WriteString(fmt.Sprintf("%d: %.1f / %.1f / %.1f / %.1f over %d matches\n",
			o.TeamNumber, o.AutoTotalAvg, o.TeleOpTotalAvg, o.EndgameTotalAvg, o.AverageContribution, o.Matches))
	}

	_, err := io.WriteString(w, report.String())
	return err
}

// scoreCommand validates and scores an export file without connecting to the database
func scoreCommand() *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "Validate and score an export file offline",
		ArgsUsage: "<file|url>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: strategyFlag, Aliases: []string{"s"}, Usage: "Import strategy (original, yaml)", Value: "original"},
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() != 1 {
				return cli.Exit("usage: score <file|url>", 2)
			}
			data, err := readInput(cCtx.Context, cCtx.Args().First())
			if err != nil {
				return err
			}
			entries, err := external.Import(cCtx.String(strategyFlag), data)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return cli.Exit("the file contains no entries", 1)
			}
			return writeScoreReport(cCtx.App.Writer, entries)
		},
	}
}
