package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName      = "mrs-board"
	DefaultConfigName  = "mrs-board"
	DefaultDBName      = "mrs-board.db"
	DefaultLogName     = "mrs-board.log"
	CacheDirName       = "cache"
	EnvPrefix          = "mrsboard"
	DefaultHTTPTimeout = 15 * time.Second
	DefaultStorageKey  = "mrs_leagues"
)

// DefaultBackgrounds are cycled by the screensaver when no backgrounds are configured.
var DefaultBackgrounds = []string{ //nolint:gochecknoglobals
	"https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?q=80&w=2070&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1517649763962-0c623066013b?q=80&w=2070&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1431324155629-1a6deb1dec8d?q=80&w=2070&auto=format&fit=crop",
}

type Config struct {
	Title  string `mapstructure:"title"`
	Locale string `mapstructure:"locale"`
	// StorageKey is the key under which the whole directory is stored as a single JSON document.
	StorageKey   string `mapstructure:"storage_key"`
	DatabasePath string `mapstructure:"database_path"`
	// IdleLimit is the number of idle seconds that must be exceeded before the screensaver is shown.
	IdleLimit int `mapstructure:"idle_limit"`
	// RotateEvery controls how many idle seconds pass between background rotations.
	RotateEvery int      `mapstructure:"rotate_every"`
	FadeDelayMs int      `mapstructure:"fade_delay_ms"`
	FadeOpacity float64  `mapstructure:"fade_opacity"`
	Backgrounds []string `mapstructure:"backgrounds"`
	AdminUser   string   `mapstructure:"admin_user"`
	// AdminPassword is only used when AdminPasswordHash is empty.
	AdminPassword string `mapstructure:"admin_password"`
	// AdminPasswordHash is a bcrypt hash. When set, the plain password is ignored.
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
	Debug             bool   `mapstructure:"debug"`
	FPS               int    `mapstructure:"fps"`
}

func (c Config) FadeDelay() time.Duration {
	return time.Duration(c.FadeDelayMs) * time.Millisecond
}

// DBPath returns the configured database path, falling back to the default under $XDG_CONFIG_HOME.
func (c Config) DBPath() string {
	if c.DatabasePath != "" {
		return c.DatabasePath
	}

	return Path(DefaultDBName)
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

func PathCache(name string) string {
	cacheDir, found := os.LookupEnv("CACHE_DIR")
	if found && cacheDir != "" {
		return cacheDir
	}

	return path.Join(xdg.CacheHome, ConfigDirName, name)
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
