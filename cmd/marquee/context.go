package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/omdb"
	"marquee/internal/services"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	jsonFlag     *bool

	requestID string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	store *catalog.Store
}

func newCommandContext(configFlag, logLevelFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		jsonFlag:     jsonFlag,
		requestID:    uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.TrimSpace(*c.logLevelFlag); level != "" {
				cfg.Logging.Level = strings.ToLower(level)
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// commandCtx tags the cobra context with the invocation's request id and
// command path.
func (c *commandContext) commandCtx(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = services.WithRequestID(ctx, c.requestID)
	return services.WithCommand(ctx, cmd.CommandPath())
}

// loggerFor returns the file logger tagged with the context fields. Logger
// setup failures fall back to a no-op logger so logging never blocks a
// command.
func (c *commandContext) loggerFor(ctx context.Context) *slog.Logger {
	c.loggerOnce.Do(func() {
		c.logger = logging.NewNop()
		cfg, err := c.ensureConfig()
		if err != nil {
			return
		}
		logger, err := logging.NewFromConfig(cfg, false)
		if err != nil {
			return
		}
		c.logger = logging.NewComponentLogger(logger, "cli")
	})
	return logging.WithContext(ctx, c.logger)
}

func (c *commandContext) openStore() (*catalog.Store, error) {
	if c.store != nil {
		return c.store, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := catalog.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	c.store = store
	return store, nil
}

func (c *commandContext) close() error {
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	return err
}

func (c *commandContext) metadataClient() (omdb.Looker, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireOMDb(); err != nil {
		return nil, err
	}
	return omdb.New(cfg.OMDb.APIKey, cfg.OMDb.BaseURL, omdb.WithTimeout(cfg.OMDbTimeout()))
}

// operations builds the movie operations bound to this invocation.
func (c *commandContext) operations(cmd *cobra.Command) (*operations, context.Context, error) {
	ctx := c.commandCtx(cmd)
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, ctx, err
	}
	store, err := c.openStore()
	if err != nil {
		return nil, ctx, err
	}
	logger := c.loggerFor(ctx)
	return &operations{
		store:    store,
		lookup:   c.metadataClient,
		logger:   logger,
		siteDir:  cfg.Paths.WebsiteDir,
		template: cfg.Website.TemplatePath,
		siteName: cfg.Website.Name,
	}, ctx, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// formatError renders err for the terminal.
func formatError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, catalog.ErrLocked) {
		return "error: " + err.Error() + "; wait for the other marquee command to finish"
	}
	return "error: " + err.Error()
}
