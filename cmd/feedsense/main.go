package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/subosito/gotenv"

	"github.com/umputun/feedsense/pkg/analysis"
	"github.com/umputun/feedsense/pkg/auth"
	"github.com/umputun/feedsense/pkg/config"
	"github.com/umputun/feedsense/pkg/llm"
	"github.com/umputun/feedsense/pkg/repository"
	"github.com/umputun/feedsense/pkg/sentiment"
	"github.com/umputun/feedsense/pkg/service"
	"github.com/umputun/feedsense/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	Listen  string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	EnvFile string `long:"env-file" env:"ENV_FILE" default:".env.local" description:"environment file loaded before config"`

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

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug)
	lgr.Printf("[INFO] starting feedsense version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Print("[INFO] shutdown complete")
}

// run wires all components together and blocks until ctx is canceled or the server fails
func run(ctx context.Context, opts Opts) error {
	if opts.EnvFile != "" {
		if err := gotenv.Load(opts.EnvFile); err != nil {
			lgr.Printf("[DEBUG] no env file %s loaded, using os environment: %v", opts.EnvFile, err)
		}
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}

	setupLog(opts.Debug, cfg.LLM.APIKey, cfg.Auth.JWTSecret)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	completer, err := llm.NewCompleter(cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to make llm completer: %w", err)
	}
	if c, ok := completer.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	rateLimit := cfg.EffectiveRateLimit(opts.Debug)
	categorizer := llm.NewCategorizer(llm.CategorizerParams{
		Completer: completer,
		Limiter:   llm.NewRateLimiter(rateLimit),
		Timeout:   cfg.LLM.Timeout,
		Model:     cfg.LLM.Model,
	})
	if categorizer.Available() {
		lgr.Printf("[INFO] categorization with %s model %s, %d requests per minute", cfg.LLM.Provider, cfg.LLM.Model, rateLimit)
	}

	batch := llm.NewBatchClassifier(llm.BatchParams{
		Classifier: categorizer,
		Delay:      cfg.LLM.Batch.Delay,
		CharBudget: cfg.LLM.Batch.CharBudget,
	})

	feedbackSvc := service.NewFeedbackService(service.Params{
		Feedback:     repos.Feedback,
		Profiles:     repos.Profile,
		Analyzer:     analysis.NewAnalyzer(categorizer, sentiment.NewScorer()),
		Batch:        batch,
		BatchSize:    cfg.LLM.Batch.Size,
		MaxBatchSize: cfg.LLM.Batch.MaxSize,
		Delay:        cfg.LLM.Batch.Delay,
	})

	srv := server.New(cfg, feedbackSvc, categorizer, auth.NewJWTVerifier(cfg.Auth.JWTSecret), revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// loadConfig reads config file if set, otherwise uses defaults; listen flag overrides config
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	} else {
		cfg.LLM.APIKey = os.Getenv("LLM_API_KEY")
		cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	return cfg, nil
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

	var nonEmpty []string
	for _, s := range secs {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) > 0 {
		logOpts = append(logOpts, lgr.Secret(nonEmpty...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
