package config

const (
	defaultConfigPath         = "~/.config/marquee/config.toml"
	defaultDataDir            = "~/.local/share/marquee"
	defaultWebsiteDir         = "~/.local/share/marquee/website"
	defaultOMDbBaseURL        = "https://www.omdbapi.com/"
	defaultOMDbTimeoutSeconds = 5
	defaultWebsiteName        = "My Movies"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:    defaultDataDir,
			WebsiteDir: defaultWebsiteDir,
		},
		OMDb: OMDb{
			BaseURL:        defaultOMDbBaseURL,
			TimeoutSeconds: defaultOMDbTimeoutSeconds,
		},
		Website: Website{
			Name: defaultWebsiteName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
