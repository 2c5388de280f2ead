package app

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"godmi/internal/options"
)

// Application runs one invocation against a parsed configuration
type Application struct {
	config  *options.Config
	logger  *logrus.Logger
	out     io.Writer
	decoder Decoder
}

// NewApplication creates a new application instance
func NewApplication(config *options.Config, out io.Writer) *Application {
	logger := logrus.New()
	if config.Quiet {
		logger.SetLevel(logrus.WarnLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Application{
		config:  config,
		logger:  logger,
		out:     out,
		decoder: PlanDecoder{},
	}
}

// SetDecoder replaces the decoder used by Run
func (app *Application) SetDecoder(d Decoder) {
	app.decoder = d
}

// Logger returns the application logger
func (app *Application) Logger() *logrus.Logger {
	return app.logger
}

// Run handles help and version requests, otherwise hands the selection
// to the decoder
func (app *Application) Run(ctx context.Context) error {
	if app.config.Help {
		options.PrintHelp(app.out, ProgName)
		return nil
	}
	if app.config.Version {
		ShowVersion(app.out)
		return nil
	}

	app.logger.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Debug("Starting")

	if !app.config.Quiet {
		fmt.Fprintf(app.out, "# %s %s\n", ProgName, Version)
	}

	req := Request{
		Device: app.config.Device(),
		Types:  app.config.Types,
		Dump:   app.config.Dump,
		Quiet:  app.config.Quiet,
	}

	app.logger.WithFields(logrus.Fields{
		"device": req.Device,
		"types":  req.Types.String(),
		"dump":   req.Dump,
	}).Debug("Type selection ready")

	if err := app.decoder.Decode(ctx, req, app.out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", req.Device, err)
	}
	return nil
}
