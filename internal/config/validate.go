package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Validate ensures the configuration is usable. A missing OMDb API key is not
// a validation failure; see RequireOMDb.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOMDb(); err != nil {
		return err
	}
	if err := c.validateWebsite(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	if strings.TrimSpace(c.Paths.WebsiteDir) == "" {
		return errors.New("paths.website_dir must be set")
	}
	return nil
}

func (c *Config) validateOMDb() error {
	parsed, err := url.Parse(c.OMDb.BaseURL)
	if err != nil {
		return fmt.Errorf("omdb.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("omdb.base_url must use http or https, got %q", c.OMDb.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("omdb.base_url must include a host, got %q", c.OMDb.BaseURL)
	}
	if c.OMDb.TimeoutSeconds <= 0 {
		return errors.New("omdb.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateWebsite() error {
	if c.Website.TemplatePath == "" {
		return nil
	}
	info, err := os.Stat(c.Website.TemplatePath)
	if err != nil {
		return fmt.Errorf("website.template_path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("website.template_path %q is a directory", c.Website.TemplatePath)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
}
