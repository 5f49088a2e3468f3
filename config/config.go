package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"stardefender/game"
)

// EnvPrefix prefixes every environment override, e.g. STARDEFENDER_STORAGE_BACKEND
const EnvPrefix = "STARDEFENDER"

// Config is the application configuration
type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	Arena   ArenaConfig   `mapstructure:"arena"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Storage StorageConfig `mapstructure:"storage"`
	Debug   DebugConfig   `mapstructure:"debug"`
}

// WindowConfig controls the desktop window
type WindowConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// ArenaConfig overrides simulation tuning
type ArenaConfig struct {
	Width    float64 `mapstructure:"width"`
	Height   float64 `mapstructure:"height"`
	Lives    int     `mapstructure:"lives"`
	MaxLevel int     `mapstructure:"max_level"`
}

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Muted        bool    `mapstructure:"muted"`
	SampleRate   int     `mapstructure:"sample_rate"`
	EffectVolume float64 `mapstructure:"effect_volume"`
	MusicVolume  float64 `mapstructure:"music_volume"`
}

// StorageConfig selects and configures the high score backend
type StorageConfig struct {
	// Backend is one of memory, file, redis or postgres
	Backend     string         `mapstructure:"backend"`
	WriteBehind bool           `mapstructure:"write_behind"`
	File        FileConfig     `mapstructure:"file"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Database    DatabaseConfig `mapstructure:"database"`
}

// FileConfig locates the YAML high score file
type FileConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig Redis connection settings
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DatabaseConfig PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DebugConfig logging and profiling switches
type DebugConfig struct {
	LogLevel     string  `mapstructure:"log_level"`
	Profile      bool    `mapstructure:"profile"`
	ProfileDir   string  `mapstructure:"profile_dir"`
	FPSThreshold float64 `mapstructure:"fps_threshold"`
}

func setDefaults(v *viper.Viper) {
	def := game.DefaultConfig()

	v.SetDefault("window.title", "Retro Star Defender")
	v.SetDefault("window.width", int(def.ArenaWidth))
	v.SetDefault("window.height", int(def.ArenaHeight))

	v.SetDefault("arena.width", def.ArenaWidth)
	v.SetDefault("arena.height", def.ArenaHeight)
	v.SetDefault("arena.lives", def.MaxLives)
	v.SetDefault("arena.max_level", def.MaxLevel)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.muted", false)
	v.SetDefault("audio.sample_rate", 44100)
	v.SetDefault("audio.effect_volume", 1.0)
	v.SetDefault("audio.music_volume", 1.0)

	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.write_behind", true)
	v.SetDefault("storage.file.path", "highscore.yaml")
	v.SetDefault("storage.redis.host", "localhost")
	v.SetDefault("storage.redis.port", 6379)
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.database.host", "localhost")
	v.SetDefault("storage.database.port", 5432)
	v.SetDefault("storage.database.user", "postgres")
	v.SetDefault("storage.database.password", "")
	v.SetDefault("storage.database.dbname", "stardefender")
	v.SetDefault("storage.database.sslmode", "disable")

	v.SetDefault("debug.log_level", "info")
	v.SetDefault("debug.profile", false)
	v.SetDefault("debug.profile_dir", "profiles")
	v.SetDefault("debug.fps_threshold", 50.0)
}

// Load reads configuration from an optional file plus STARDEFENDER_* environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &cfg, nil
}

// Game returns simulation tuning with the arena overrides applied
func (c *Config) Game() game.Config {
	g := game.DefaultConfig()
	if c.Arena.Width > 0 {
		g.ArenaWidth = c.Arena.Width
	}
	if c.Arena.Height > 0 {
		g.ArenaHeight = c.Arena.Height
	}
	if c.Arena.Lives > 0 {
		g.MaxLives = c.Arena.Lives
	}
	if c.Arena.MaxLevel > 0 {
		g.MaxLevel = c.Arena.MaxLevel
	}
	return g
}

// LogLevel parses debug.log_level, defaulting to info
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Debug.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// GetRedisAddr returns the Redis address
func (c *RedisConfig) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
