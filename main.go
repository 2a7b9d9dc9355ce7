package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/oaiiae/contacts-api/cli/api"
	"github.com/oaiiae/contacts-api/cli/logger"
	"github.com/oaiiae/contacts-api/contacts"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version  = "dev"
	revision = ""
	created  = ""
)

// Options for the CLI. Pass `--port` or set the `SERVICE_PORT` env var.
// A .env file in the working directory is loaded first.
type Options struct {
	api.ServerOptions
	api.RouterOptions
	api.StorageOptions
	logger.Options
}

var build = api.Build{Title: "Contacts API", Version: version, Revision: revision, Created: created}

// app is the running server. The storage is opened only when the server
// starts, so subcommands have no side effects.
type app struct {
	mu       sync.Mutex
	log      *slog.Logger
	closeLog func() error
	store    *api.Store
	srv      *http.Server
}

func (a *app) start(options *Options) {
	a.mu.Lock()
	a.log, a.closeLog = logger.New(&options.Options)

	ctx := context.Background()
	set := metrics.NewSet()
	store, err := api.OpenStore(ctx, &options.StorageOptions, set, a.log)
	if err != nil {
		a.mu.Unlock()
		a.log.Error("failed to open storage", "err", err)
		os.Exit(1)
	}
	a.store = store

	service := contacts.NewService(ctx, store, options.StorageName, a.log)
	a.srv = api.NewServer(&options.ServerOptions,
		api.NewRouter(&options.RouterOptions, build, service, store.Ready, set, a.log, nil),
		a.log,
	)
	srv, log := a.srv, a.log
	a.mu.Unlock()

	log.Info("listening", "addr", srv.Addr)
	err = srv.ListenAndServe()
	if err != http.ErrServerClosed {
		log.Error("failed to listen and serve", "err", err)
	} else {
		log.Info("server closed")
	}
}

func (a *app) stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.srv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	err := a.srv.Shutdown(ctx)
	if err != nil {
		a.log.Warn("could not shutdown the server", "err", err)
	}
	err = a.store.Close()
	if err != nil {
		a.log.Warn("could not close the storage", "err", err)
	}
	_ = a.closeLog()
}

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "could not load .env:", err)
	}

	var (
		a    app
		opts *Options
	)
	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		opts = options
		hooks.OnStart(func() { a.start(options) })
		hooks.OnStop(a.stop)
	})

	cli.Root().AddCommand(&cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document",
		Run: func(*cobra.Command, []string) {
			err := api.WriteOpenAPI(os.Stdout, &opts.RouterOptions, build)
			if err != nil {
				fmt.Fprintln(os.Stderr, "could not render openapi:", err)
				os.Exit(1)
			}
		},
	})

	cli.Run()
}
