package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/mcoot/smartscrabble/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. SMARTSCRABBLE_PORT
const EnvPrefix = "SMARTSCRABBLE"

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config is the server's application configuration
type Config struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	StorageType string `mapstructure:"storage_type"`
	RedisURL    string `mapstructure:"redis_url"`

	DictionaryPath string `mapstructure:"dictionary_path"`
	RulesPath      string `mapstructure:"rules_path"` // Empty means the standard rules
	MaxWordLength  int    `mapstructure:"max_word_length"`

	BlankResolution string `mapstructure:"blank_resolution"`
	BlankLetter     string `mapstructure:"blank_letter"`

	// Used by the custom strategy
	PlacementPolicy string `mapstructure:"placement_policy"`
	WordOrdering    string `mapstructure:"word_ordering"`

	TournamentParallelism int `mapstructure:"tournament_parallelism"`

	// APITokenHash is a bcrypt hash of the bearer token guarding write routes.
	// Empty disables authentication.
	APITokenHash string `mapstructure:"api_token_hash"`

	LogLevel string `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "")
	v.SetDefault("port", 8080)
	v.SetDefault("storage_type", StorageTypeMemory)
	v.SetDefault("redis_url", "")
	v.SetDefault("dictionary_path", "data/words.txt")
	v.SetDefault("rules_path", "")
	v.SetDefault("max_word_length", 7)
	v.SetDefault("blank_resolution", "fixed")
	v.SetDefault("blank_letter", "E")
	v.SetDefault("placement_policy", "best_scoring")
	v.SetDefault("word_ordering", "score_within_longest_tier")
	v.SetDefault("tournament_parallelism", 8)
	v.SetDefault("api_token_hash", "")
	v.SetDefault("log_level", "info")
}

// Load reads defaults, then the optional config file, then environment
// overrides. An empty configFile falls back to $SMARTSCRABBLE_CONFIG.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that have a fixed set of values
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	switch c.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.RedisURL == "" {
			return errors.New("redis_url required when storage_type is redis")
		}
	default:
		return fmt.Errorf("invalid storage_type %q: must be 'memory' or 'redis'", c.StorageType)
	}

	if c.MaxWordLength <= 0 {
		return fmt.Errorf("invalid max_word_length %d", c.MaxWordLength)
	}
	if r := []rune(c.BlankLetter); len(r) != 1 || !model.IsLetter(r[0]) {
		return fmt.Errorf("invalid blank_letter %q: must be a single letter", c.BlankLetter)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// BlankRune returns BlankLetter as an upper-case rune
func (c *Config) BlankRune() rune {
	r := []rune(strings.ToUpper(c.BlankLetter))
	if len(r) == 0 {
		return 'E'
	}
	return r[0]
}
