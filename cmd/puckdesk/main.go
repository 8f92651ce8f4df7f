package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/pucklab/puckdesk/pkg/config"
	"github.com/pucklab/puckdesk/pkg/engine"
	"github.com/pucklab/puckdesk/pkg/importer"
	"github.com/pucklab/puckdesk/pkg/llm"
	"github.com/pucklab/puckdesk/pkg/repository"
	"github.com/pucklab/puckdesk/pkg/trivia"
	"github.com/pucklab/puckdesk/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address override"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting puckdesk version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		cancel()
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// run wires configuration, storage and engines into the server and blocks
// until the context is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close database: %v", closeErr)
		}
	}()

	generator := engine.NewGenerator(repos.Content, repos.Schedule, nil)

	var composer trivia.Composer
	if cfg.LLM.Enabled {
		composer = llm.NewComposer(cfg.GetLLMConfig())
		log.Printf("[INFO] LLM set composer enabled, model %s", cfg.LLM.Model)
	}
	builder := trivia.NewBuilder(repos.Content, repos.Trivia, composer, nil)
	orchestrator := trivia.NewOrchestrator(builder, repos.Trivia, cfg.Trivia.Themes)

	imp := importer.New(repos.Content, cfg.Import.Timeout, cfg.Import.UserAgent)

	srv := server.New(server.Params{
		Config:       cfg,
		DB:           storage{repos.Schedule, repos.Trivia},
		Generator:    generator,
		Builder:      builder,
		Orchestrator: orchestrator,
		Importer:     imp,
		Version:      revision,
		Debug:        opts.Debug,
	})

	return srv.Run(ctx)
}

// storage aggregates the repositories the server reads from
type storage struct {
	*repository.ScheduleRepository
	*repository.TriviaRepository
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
