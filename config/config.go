package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/boggle/board"
)

const (
	ConfigLexiconPath   = "lexicon-path"
	ConfigBoardSize     = "board-size"
	ConfigBoardFile     = "board-file"
	ConfigSeed          = "seed"
	ConfigWorkers       = "workers"
	ConfigSearchTimeout = "search-timeout"
	ConfigOutput        = "output"
	ConfigDebug         = "debug"
	ConfigCPUProfile    = "cpu-profile"
	ConfigHistogramBins = "histogram-bins"
	ConfigLetterDist    = "letter-distribution"
	ConfigNumBoards     = "boards"
	ConfigNatsURL       = "nats-url"
	ConfigBotChannel    = "bot-channel"
	ConfigRedisAddr     = "redis-addr"
	ConfigRedisPassword = "redis-password"
	ConfigRedisDB       = "redis-db"
	ConfigResultTTL     = "result-ttl"
	ConfigMetricsAddr   = "metrics-addr"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

var ErrInvalidSetting = errors.New("invalid setting")

// Config holds every setting. Values come, in increasing order of priority,
// from the defaults, from BOGGLE_* environment variables and from flags.
type Config struct {
	*viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigLexiconPath, "./data/words.txt")
	v.SetDefault(ConfigBoardSize, 5)
	v.SetDefault(ConfigBoardFile, "")
	v.SetDefault(ConfigSeed, 0)
	v.SetDefault(ConfigWorkers, runtime.NumCPU())
	v.SetDefault(ConfigSearchTimeout, time.Duration(0))
	v.SetDefault(ConfigOutput, OutputText)
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigCPUProfile, "")
	v.SetDefault(ConfigHistogramBins, 10)
	v.SetDefault(ConfigLetterDist, "uniform")
	v.SetDefault(ConfigNumBoards, 1)
	v.SetDefault(ConfigNatsURL, "nats://localhost:4222")
	v.SetDefault(ConfigBotChannel, "boggle.bot")
	v.SetDefault(ConfigRedisAddr, "")
	v.SetDefault(ConfigRedisPassword, "")
	v.SetDefault(ConfigRedisDB, 0)
	v.SetDefault(ConfigResultTTL, 24*time.Hour)
	v.SetDefault(ConfigMetricsAddr, "")
}

// DefaultConfig returns a config with only the defaults applied. It is
// mostly useful for tests.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{Viper: v}
}

// Load reads the environment and parses args. A single positional
// argument, if present, is taken as the board size.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	setDefaults(c.Viper)

	fs := pflag.NewFlagSet("boggle", pflag.ContinueOnError)
	fs.String(ConfigLexiconPath, c.GetString(ConfigLexiconPath), "word list, one word per line")
	fs.Int(ConfigBoardSize, c.GetInt(ConfigBoardSize), "size N of a random N×N board")
	fs.String(ConfigBoardFile, "", "YAML file with the board to solve instead of a random one")
	fs.Uint64(ConfigSeed, 0, "seed for random boards; 0 picks a random seed")
	fs.Int(ConfigWorkers, c.GetInt(ConfigWorkers), "boards searched at the same time")
	fs.Duration(ConfigSearchTimeout, 0, "give up a search after this long; 0 means never")
	fs.String(ConfigOutput, OutputText, "report format: text or yaml")
	fs.Bool(ConfigDebug, false, "debug logging")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.Int(ConfigHistogramBins, c.GetInt(ConfigHistogramBins), "bins in the word length histogram")
	fs.String(ConfigLetterDist, "uniform", "letters for random boards: uniform or english")
	fs.Int(ConfigNumBoards, 1, "number of random boards to solve; more than one prints a survey")
	fs.String(ConfigNatsURL, c.GetString(ConfigNatsURL), "NATS server the solver bot connects to")
	fs.String(ConfigBotChannel, c.GetString(ConfigBotChannel), "subject the solver bot listens on")
	fs.String(ConfigRedisAddr, "", "Redis server for caching bot results; empty disables the cache")
	fs.String(ConfigRedisPassword, "", "Redis password")
	fs.Int(ConfigRedisDB, 0, "Redis database number")
	fs.Duration(ConfigResultTTL, c.GetDuration(ConfigResultTTL), "how long cached results live; 0 means forever")
	fs.String(ConfigMetricsAddr, "", "address to serve Prometheus metrics on, e.g. :2112; empty disables them")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.SetEnvPrefix("boggle")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		sz, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("%w: board size %q is not a number", ErrInvalidSetting, fs.Arg(0))
		}
		c.Set(ConfigBoardSize, sz)
	default:
		return fmt.Errorf("%w: unexpected arguments %v", ErrInvalidSetting, fs.Args()[1:])
	}
	return c.Validate()
}

// Validate checks that every setting is in range.
func (c *Config) Validate() error {
	if sz := c.GetInt(ConfigBoardSize); sz < 1 || sz > board.MaxDim {
		return fmt.Errorf("%w: %s must be between 1 and %d, got %d",
			ErrInvalidSetting, ConfigBoardSize, board.MaxDim, sz)
	}
	if w := c.GetInt(ConfigWorkers); w < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidSetting, ConfigWorkers)
	}
	if c.GetDuration(ConfigSearchTimeout) < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidSetting, ConfigSearchTimeout)
	}
	if b := c.GetInt(ConfigHistogramBins); b < 1 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidSetting, ConfigHistogramBins)
	}
	if n := c.GetInt(ConfigNumBoards); n < 1 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidSetting, ConfigNumBoards)
	}
	if _, err := board.NamedDistribution(c.GetString(ConfigLetterDist)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSetting, err)
	}
	if c.GetDuration(ConfigResultTTL) < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidSetting, ConfigResultTTL)
	}
	if c.GetInt(ConfigRedisDB) < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidSetting, ConfigRedisDB)
	}
	if c.GetString(ConfigBotChannel) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidSetting, ConfigBotChannel)
	}
	switch o := c.GetString(ConfigOutput); o {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("%w: unknown %s %q", ErrInvalidSetting, ConfigOutput, o)
	}
	return nil
}

// AdjustRelativePaths makes data file paths relative to the executable's
// directory when they can't be found relative to the working directory.
func (c *Config) AdjustRelativePaths(exPath string) {
	for _, key := range []string{ConfigLexiconPath, ConfigBoardFile} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			continue
		}
		c.Set(key, filepath.Join(exPath, p))
	}
}

// SanitizedSettings returns the settings in a form suitable for logging.
// Credentials in the NATS URL and the Redis password are masked.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	if u, err := url.Parse(c.GetString(ConfigNatsURL)); err == nil {
		settings[ConfigNatsURL] = u.Redacted()
	}
	if c.GetString(ConfigRedisPassword) != "" {
		settings[ConfigRedisPassword] = "xxxxx"
	}
	return settings
}
