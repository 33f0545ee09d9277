// Package config resolves termfolio settings from defaults, an optional TOML
// file, a .env file, TERMFOLIO_* environment variables and bound CLI flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/termfolio/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyContentURL      = "content.url"
	KeyContentFile     = "content.file"
	KeyContentTimeout  = "content.timeout"
	KeyBootDelay       = "boot.delay"
	KeyRevealEnabled   = "reveal.enabled"
	KeyEmptySubmission = "session.empty_submission"
	KeyLogLevel        = "log.level"
	KeyLogFile         = "log.file"
	KeyLogJournal      = "log.journal"

	DefaultTimeout   = 10 * time.Second
	DefaultBootDelay = 2500 * time.Millisecond

	envPrefix      = "TERMFOLIO"
	configName     = "config"
	configType     = "toml"
	configDirName  = "termfolio"
	defaultEnvFile = ".env"
)

type Config struct {
	Content ContentConfig
	Boot    BootConfig
	Reveal  RevealConfig
	Session SessionConfig
	Log     LogConfig
	// File is the config file that was read, empty when none was found.
	File string
}

type ContentConfig struct {
	URL     string
	File    string
	Timeout time.Duration
}

type BootConfig struct {
	Delay time.Duration
}

type RevealConfig struct {
	Enabled bool
}

type SessionConfig struct {
	EmptySubmission domain.EmptySubmissionPolicy
}

type LogConfig struct {
	Level   slog.Level
	File    string
	Journal bool
}

type LoadOptions struct {
	// ConfigFile overrides the default lookup; it must exist when set.
	ConfigFile string
	// EnvFile defaults to .env in the working directory. A missing file is
	// not an error.
	EnvFile string
	// ConfigDirs replaces the default search path.
	ConfigDirs []string
}

// New returns a viper instance with defaults and environment binding set up.
// Callers bind their flags on it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyContentURL, "")
	v.SetDefault(KeyContentFile, "")
	v.SetDefault(KeyContentTimeout, DefaultTimeout)
	v.SetDefault(KeyBootDelay, DefaultBootDelay)
	v.SetDefault(KeyRevealEnabled, true)
	v.SetDefault(KeyEmptySubmission, string(domain.EmptySubmissionRecord))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogJournal, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func Load(v *viper.Viper, opts LoadOptions) (Config, error) {
	if v == nil {
		v = New()
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		dirs := opts.ConfigDirs
		if dirs == nil {
			dirs = defaultConfigDirs()
		}
		for _, dir := range dirs {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Content: ContentConfig{
			URL:     strings.TrimSpace(v.GetString(KeyContentURL)),
			File:    strings.TrimSpace(v.GetString(KeyContentFile)),
			Timeout: v.GetDuration(KeyContentTimeout),
		},
		Boot:   BootConfig{Delay: v.GetDuration(KeyBootDelay)},
		Reveal: RevealConfig{Enabled: v.GetBool(KeyRevealEnabled)},
		Log: LogConfig{
			File:    v.GetString(KeyLogFile),
			Journal: v.GetBool(KeyLogJournal),
		},
		File: v.ConfigFileUsed(),
	}

	policy, err := domain.ParseEmptySubmissionPolicy(v.GetString(KeyEmptySubmission))
	if err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.Session.EmptySubmission = policy

	if err := cfg.Log.Level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: log level: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Content.URL != "" && c.Content.File != "" {
		return errors.New("content.url and content.file are mutually exclusive")
	}
	if c.Content.Timeout <= 0 {
		return errors.New("content.timeout must be > 0")
	}
	if c.Boot.Delay < 0 {
		return errors.New("boot.delay must be >= 0")
	}
	switch c.Session.EmptySubmission {
	case domain.EmptySubmissionRecord, domain.EmptySubmissionIgnore:
	default:
		return fmt.Errorf("unknown session.empty_submission %q", c.Session.EmptySubmission)
	}
	return nil
}

func defaultConfigDirs() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, configDirName)}
}
