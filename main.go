/* main.go
 * The "main" method for running the scouting bot, the HTTP server and the offline tools
 * Usage: go run . [global flags] <bot|serve|run|score|export-sheet>
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"scouting-bot/api/api"
	"scouting-bot/bot"
	"scouting-bot/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using the environment")
	}

	app := newApp()
	app.Commands = []*cli.Command{
		{
			Name:   "bot",
			Usage:  "Run the Discord bot",
			Action: runBot,
		},
		{
			Name:   "serve",
			Usage:  "Run the HTTP API",
			Action: runServer,
		},
		{
			Name:   "run",
			Usage:  "Run the Discord bot and the HTTP API together",
			Action: runAll,
		},
		scoreCommand(),
		{
			Name:   "export-sheet",
			Usage:  "Upload the team overview to the configured Google Sheet",
			Action: exportSheet,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// withAPI connects to the database, runs fn and disconnects once fn returns
func withAPI(cCtx *cli.Context, fn func(ctx context.Context, apiPtr *api.API) error) error {
	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	apiPtr, err := openAPI(ctx, loadConfig(cCtx))
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := apiPtr.Store.GetClient().Disconnect(disconnectCtx); err != nil {
			log.WithError(err).Error("failed to disconnect from database")
		}
	}()

	return fn(ctx, apiPtr)
}

func startBot(ctx context.Context, cCtx *cli.Context, apiPtr *api.API) error {
	token, err := discordToken(cCtx.Bool(testFlag), os.Getenv)
	if err != nil {
		return err
	}
	b, err := bot.NewBot(token, apiPtr)
	if err != nil {
		return err
	}
	return b.Run(ctx)
}

func startServer(ctx context.Context, cCtx *cli.Context, apiPtr *api.API) error {
	return web.Start(ctx, web.Config{
		Addr:              cCtx.String(addrFlag),
		API:               apiPtr,
		RequestsPerSecond: cCtx.Float64(rateFlag),
		Burst:             cCtx.Int(burstFlag),
	})
}

func runBot(cCtx *cli.Context) error {
	return withAPI(cCtx, func(ctx context.Context, apiPtr *api.API) error {
		return startBot(ctx, cCtx, apiPtr)
	})
}

func runServer(cCtx *cli.Context) error {
	return withAPI(cCtx, func(ctx context.Context, apiPtr *api.API) error {
		return startServer(ctx, cCtx, apiPtr)
	})
}

// runAll stops both the bot and the server as soon as either of them fails
func runAll(cCtx *cli.Context) error {
	return withAPI(cCtx, func(ctx context.Context, apiPtr *api.API) error {
		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error { return startBot(groupCtx, cCtx, apiPtr) })
		group.Go(func() error { return startServer(groupCtx, cCtx, apiPtr) })
		return group.Wait()
	})
}

func exportSheet(cCtx *cli.Context) error {
	return withAPI(cCtx, func(ctx context.Context, apiPtr *api.API) error {
		if err := apiPtr.ExportToSheet(ctx); err != nil {
			if errors.Is(err, api.ErrSheetsNotConfigured) {
				return cli.Exit("google sheets export needs --credentials and --sheet-url", 2)
			}
			return err
		}
		log.Info("overview uploaded")
		return nil
	})
}
