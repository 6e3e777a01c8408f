// internal/platform/config/config.go
package config

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"biorules/internal/platform/errors"
)

// EnvPrefix prefixes every environment override (BIORULES_WORKERS, ...).
const EnvPrefix = "BIORULES"

// Flag and config-file keys.
const (
	KeyRecipesDir         = "recipes-dir"
	KeyOutputDir          = "output-dir"
	KeyTimeout            = "timeout"
	KeyPackageTimeout     = "package-timeout"
	KeyWorkers            = "workers"
	KeyPixiBinary         = "pixi.binary"
	KeyPixiChannels       = "pixi.channels"
	KeyPixiPlatform       = "pixi.platform"
	KeyPixiWorkDir        = "pixi.work-dir"
	KeyPixiInstallTimeout = "pixi.install-timeout"
	KeyPixiRetries        = "pixi.retries"
	KeyPixiRetryBackoff   = "pixi.retry-backoff"
	KeyOutputPrefix       = "output.prefix"
	KeyOutputFormat       = "output.format"
	KeyOutputStream       = "output.stream"
	KeyUI                 = "ui"
	KeyQuiet              = "quiet"
	KeyLogLevel           = "log-level"
	KeyConfig             = "config"
)

type Config struct {
	// Positional arguments
	Chunk       int
	TotalChunks int

	// IO
	RecipesDir string
	OutputDir  string

	// Probing
	Timeout        time.Duration // per test command
	PackageTimeout time.Duration // per package, 0 = no limit
	Workers        int

	Pixi   Pixi
	Output Output

	// Presentation
	UI       string
	Quiet    bool
	LogLevel string

	// ConfigFile is the file the values were read from, if any
	ConfigFile string
}

type Pixi struct {
	Binary         string
	Channels       []string
	Platform       string // empty = detected from the host
	WorkDir        string
	InstallTimeout time.Duration // 0 = no limit
	Retries        int           // extra install attempts after a failure
	RetryBackoff   time.Duration // wait before the first retry, doubled after each
}

type Output struct {
	Prefix string
	Format string
	Stream bool // also write a JSONL stream of outcomes
}

// DefaultConfig returns the built-in values used below every other layer.
func DefaultConfig() Config {
	return Config{
		RecipesDir:     "recipes",
		OutputDir:      ".",
		Timeout:        20 * time.Second,
		PackageTimeout: 0,
		Workers:        1,
		Pixi: Pixi{
			Binary:       "pixi",
			Channels:     []string{"conda-forge", "bioconda"},
			WorkDir:      ".",
			RetryBackoff: 2 * time.Second,
		},
		Output: Output{
			Prefix: "bioconda",
			Format: "yaml",
		},
		UI:       "compact",
		LogLevel: "info",
	}
}

// RegisterFlags declares every configuration flag on fs with its default.
func RegisterFlags(fs *pflag.FlagSet) {
	def := DefaultConfig()

	fs.StringP(KeyRecipesDir, "r", def.RecipesDir, "Directory holding one sub-directory per recipe")
	fs.StringP(KeyOutputDir, "o", def.OutputDir, "Directory the chunk documents are written to")
	fs.DurationP(KeyTimeout, "T", def.Timeout, "Time limit of each test command")
	fs.Duration(KeyPackageTimeout, def.PackageTimeout, "Time limit of all test commands of a package (0 = none)")
	fs.IntP(KeyWorkers, "w", def.Workers, "Number of recipes processed concurrently")

	fs.String(KeyPixiBinary, def.Pixi.Binary, "pixi executable")
	fs.StringSlice(KeyPixiChannels, def.Pixi.Channels, "Channels written to each environment manifest")
	fs.String(KeyPixiPlatform, def.Pixi.Platform, "Conda platform of the environments (default: host platform)")
	fs.String(KeyPixiWorkDir, def.Pixi.WorkDir, "Directory the ephemeral environments are created in")
	fs.Duration(KeyPixiInstallTimeout, def.Pixi.InstallTimeout, "Time limit of each package install (0 = none)")
	fs.Int(KeyPixiRetries, def.Pixi.Retries, "Extra attempts of a failed package install")
	fs.Duration(KeyPixiRetryBackoff, def.Pixi.RetryBackoff, "Wait before the first install retry, doubled after each")

	fs.String(KeyOutputPrefix, def.Output.Prefix, "File name prefix of the rules, importable and unresolved documents")
	fs.StringP(KeyOutputFormat, "f", def.Output.Format, "Document format: yaml or json")
	fs.Bool(KeyOutputStream, def.Output.Stream, "Also stream every outcome to a JSONL file")

	fs.String(KeyUI, def.UI, "Progress display: compact, raw or quiet")
	fs.BoolP(KeyQuiet, "q", def.Quiet, "Disable progress and summary output")
	fs.String(KeyLogLevel, def.LogLevel, "Log level: debug, info, warn or error")
	fs.StringP(KeyConfig, "c", "", "YAML, TOML or JSON configuration file")
}

// Load resolves the configuration from defaults, the config file, BIORULES_*
// environment variables and flags, in increasing precedence. args are the
// positional CHUNK and TOTAL_CHUNKS.
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, errors.Wrap(err, "bind flags")
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(errors.ErrInvalidInput, "read config file %s: %v", path, err)
		}
	}

	cfg := Config{
		RecipesDir:     v.GetString(KeyRecipesDir),
		OutputDir:      v.GetString(KeyOutputDir),
		Timeout:        v.GetDuration(KeyTimeout),
		PackageTimeout: v.GetDuration(KeyPackageTimeout),
		Workers:        v.GetInt(KeyWorkers),
		Pixi: Pixi{
			Binary:         v.GetString(KeyPixiBinary),
			Channels:       splitList(v.GetStringSlice(KeyPixiChannels)),
			Platform:       v.GetString(KeyPixiPlatform),
			WorkDir:        v.GetString(KeyPixiWorkDir),
			InstallTimeout: v.GetDuration(KeyPixiInstallTimeout),
			Retries:        v.GetInt(KeyPixiRetries),
			RetryBackoff:   v.GetDuration(KeyPixiRetryBackoff),
		},
		Output: Output{
			Prefix: v.GetString(KeyOutputPrefix),
			Format: strings.ToLower(v.GetString(KeyOutputFormat)),
			Stream: v.GetBool(KeyOutputStream),
		},
		UI:         strings.ToLower(v.GetString(KeyUI)),
		Quiet:      v.GetBool(KeyQuiet),
		LogLevel:   v.GetString(KeyLogLevel),
		ConfigFile: v.ConfigFileUsed(),
	}

	chunk, total, err := parseChunkArgs(args)
	if err != nil {
		return Config{}, err
	}
	cfg.Chunk, cfg.TotalChunks = chunk, total

	if cfg.Quiet {
		cfg.UI = "quiet"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no run can start with.
func (c Config) Validate() error {
	if c.TotalChunks < 1 {
		return errors.Wrapf(errors.ErrInvalidInput, "total chunks must be at least 1, got %d", c.TotalChunks)
	}
	if c.Chunk < 0 {
		return errors.Wrapf(errors.ErrInvalidInput, "chunk must not be negative, got %d", c.Chunk)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidInput, "workers must be at least 1, got %d", c.Workers)
	}
	if c.Pixi.Retries < 0 {
		return errors.Wrapf(errors.ErrInvalidInput, "pixi retries must not be negative, got %d", c.Pixi.Retries)
	}
	if c.Timeout < 0 || c.PackageTimeout < 0 || c.Pixi.InstallTimeout < 0 || c.Pixi.RetryBackoff < 0 {
		return errors.Wrap(errors.ErrInvalidInput, "timeouts must not be negative")
	}
	switch c.Output.Format {
	case "yaml", "yml", "json":
	default:
		return errors.Wrapf(errors.ErrInvalidInput, "unknown output format %q", c.Output.Format)
	}
	switch c.UI {
	case "compact", "raw", "quiet":
	default:
		return errors.Wrapf(errors.ErrInvalidInput, "unknown ui mode %q", c.UI)
	}
	if strings.TrimSpace(c.Output.Prefix) == "" {
		return errors.Wrap(errors.ErrInvalidInput, "output prefix must not be empty")
	}
	return nil
}

// ToJSON renders the configuration for debug logging.
func (c Config) ToJSON() string {
	b, _ := json.MarshalIndent(c, "", "  ")
	return string(b)
}

func parseChunkArgs(args []string) (chunk, total int, err error) {
	if len(args) != 2 {
		return 0, 0, errors.Wrapf(errors.ErrInvalidInput, "expected CHUNK and TOTAL_CHUNKS, got %d arguments", len(args))
	}
	chunk, err = strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, 0, errors.Wrapf(errors.ErrInvalidInput, "chunk %q is not an integer", args[0])
	}
	total, err = strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return 0, 0, errors.Wrapf(errors.ErrInvalidInput, "total chunks %q is not an integer", args[1])
	}
	return chunk, total, nil
}

// splitList flattens comma separated entries, as environment values arrive
// as one string.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
