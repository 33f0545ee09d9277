package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/termfolio/internal/adapters/content/embedded"
	"github.com/bnema/termfolio/internal/adapters/content/filesource"
	"github.com/bnema/termfolio/internal/adapters/content/httpsource"
	"github.com/bnema/termfolio/internal/adapters/content/markdown"
	"github.com/bnema/termfolio/internal/application"
	"github.com/bnema/termfolio/internal/config"
	"github.com/bnema/termfolio/internal/domain"
	"github.com/bnema/termfolio/internal/logging"
	"github.com/bnema/termfolio/internal/ports"
	"github.com/bnema/termfolio/internal/version"
	"github.com/google/uuid"
)

type app struct {
	cfg     config.Config
	logger  *logging.Logger
	content *application.ContentService
	remote  bool
	clock   ports.Clock
	newID   func() string
}

// wire builds the application from cfg. The interactive UI owns the terminal,
// so console logging is only enabled for the other commands.
func (a *app) wire(cfg config.Config, console io.Writer, interactive bool) error {
	if interactive {
		console = nil
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Journal: cfg.Log.Journal,
		Console: console,
	})
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	source, remote := contentSource(cfg)
	parser := markdown.NewParser(logger.Logger)

	a.cfg = cfg
	a.logger = logger
	a.content = application.NewContentService(source, parser, logger.Logger)
	a.remote = remote
	a.clock = ports.SystemClock{}
	a.newID = uuid.NewString

	logger.Debug("termfolio wired", "config_file", cfg.File, "remote", remote, "version", version.Version)
	return nil
}

func (a *app) close() error {
	if a.logger == nil {
		return nil
	}
	return a.logger.Close()
}

func (a *app) load(ctx context.Context) (domain.ContentDocument, error) {
	return a.content.Load(ctx)
}

func (a *app) terminalOptions() application.TerminalOptions {
	return application.TerminalOptions{
		EmptySubmission: a.cfg.Session.EmptySubmission,
		Clock:           a.clock,
		NewID:           a.newID,
		Logger:          a.logger.Logger,
	}
}

// contentSource picks the configured source: a URL, then a file, then the
// document built into the binary.
func contentSource(cfg config.Config) (ports.ContentSource, bool) {
	switch {
	case cfg.Content.URL != "":
		return httpsource.NewSource(cfg.Content.URL, httpsource.Options{
			Timeout:   cfg.Content.Timeout,
			UserAgent: "termfolio/" + version.Version,
		}), true
	case cfg.Content.File != "":
		return filesource.NewSource(cfg.Content.File), false
	default:
		return embedded.Source{}, false
	}
}
