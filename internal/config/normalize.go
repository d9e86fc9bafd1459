package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOMDb()
	if err := c.normalizeWebsite(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.WebsiteDir) == "" {
		c.Paths.WebsiteDir = defaultWebsiteDir
	}
	if c.Paths.WebsiteDir, err = expandPath(c.Paths.WebsiteDir); err != nil {
		return fmt.Errorf("paths.website_dir: %w", err)
	}
	return nil
}

// normalizeOMDb applies env fallbacks. OMDB_API_KEY wins over API_KEY, which
// older setups exported from a .env file.
func (c *Config) normalizeOMDb() {
	c.OMDb.APIKey = strings.TrimSpace(c.OMDb.APIKey)
	if c.OMDb.APIKey == "" {
		for _, name := range []string{"OMDB_API_KEY", "API_KEY"} {
			if value := strings.TrimSpace(os.Getenv(name)); value != "" {
				c.OMDb.APIKey = value
				break
			}
		}
	}
	c.OMDb.BaseURL = strings.TrimSpace(c.OMDb.BaseURL)
	if c.OMDb.BaseURL == "" {
		c.OMDb.BaseURL = defaultOMDbBaseURL
	}
	if c.OMDb.TimeoutSeconds <= 0 {
		c.OMDb.TimeoutSeconds = defaultOMDbTimeoutSeconds
	}
}

func (c *Config) normalizeWebsite() error {
	c.Website.Name = strings.TrimSpace(c.Website.Name)
	if c.Website.Name == "" {
		c.Website.Name = defaultWebsiteName
	}
	c.Website.TemplatePath = strings.TrimSpace(c.Website.TemplatePath)
	if c.Website.TemplatePath == "" {
		return nil
	}
	var err error
	if c.Website.TemplatePath, err = expandPath(c.Website.TemplatePath); err != nil {
		return fmt.Errorf("website.template_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
