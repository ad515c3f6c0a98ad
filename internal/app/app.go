package app

import (
	"context"
	"io"

	"weblatedl/internal/config"
	"weblatedl/internal/downloader"
	"weblatedl/internal/fetcher"
	"weblatedl/internal/logger"
	"weblatedl/internal/ui"
	"weblatedl/internal/weblate"
)

// App wires the Weblate client, downloader and console output for one run.
type App struct {
	config  *config.Config
	logger  logger.Logger
	fetcher *fetcher.Fetcher
}

// Options holds the writers the App renders to. Nil writers fall back to
// stdout for status lines and no progress bars.
type Options struct {
	Status   io.Writer
	Progress io.Writer
}

// New builds an App for cfg. cfg is validated before anything is wired.
func New(cfg *config.Config, log logger.Logger, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := weblate.NewClient(cfg.BaseURL, cfg.Project, cfg.Component,
		weblate.WithTimeout(cfg.Timeout),
		weblate.WithUserAgent(cfg.UserAgent),
		weblate.WithLogger(log),
	)

	repoOpts := []downloader.RepositoryOption{downloader.WithUserAgent(cfg.UserAgent)}
	if opts.Progress != nil {
		repoOpts = append(repoOpts, downloader.WithProgressReporter(downloader.NewConsoleProgressReporter(opts.Progress)))
	}
	repo, err := downloader.NewRepository(log, cfg.Timeout, repoOpts...)
	if err != nil {
		return nil, err
	}

	policy := fetcher.Policy{
		SourceLanguage:       cfg.SourceLanguage,
		MinTranslatedPercent: cfg.MinTranslatedPercent,
	}

	component := log.With(logger.String("component", cfg.Component))

	return &App{
		config:  cfg,
		logger:  component,
		fetcher: fetcher.New(client, repo, ui.NewPrinter(opts.Status), component, policy),
	}, nil
}

// Run mirrors the component's qualifying translations into outputDir.
func (a *App) Run(ctx context.Context, outputDir string) error {
	a.logger.Debug("Writing translations to %q", outputDir)
	return a.fetcher.Run(ctx, outputDir)
}

// NewLogger builds the run's logger from log_level and log_format. JSON output
// is plain; text output is coloured when out is a terminal.
func NewLogger(cfg *config.Config, out io.Writer) logger.Logger {
	opts := []logger.Option{
		logger.WithOutput(out),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
	}
	if cfg.LogFormat == config.LogFormatJSON {
		return logger.NewStandardLogger(append(opts, logger.WithFormatter(&logger.JSONFormatter{}))...)
	}
	return logger.NewColoredLogger(opts...)
}

// OutputDir resolves the output directory from positional arguments (program
// name excluded): the first argument when present, otherwise "" for the
// working directory. Further arguments are ignored.
func OutputDir(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
