package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Writer persists an updated config back to disk.
type Writer interface {
	Write(config Config) error
	Path() string
}

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

func NewLoader(changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("title", "Maison Régionale des Sports")
	loader.SetDefault("locale", "fr-FR")
	loader.SetDefault("storage_key", DefaultStorageKey)
	loader.SetDefault("database_path", "")
	loader.SetDefault("idle_limit", 10)
	loader.SetDefault("rotate_every", 5)
	loader.SetDefault("fade_delay_ms", 500)
	loader.SetDefault("fade_opacity", 0.6)
	loader.SetDefault("backgrounds", DefaultBackgrounds)
	loader.SetDefault("admin_user", "admin")
	loader.SetDefault("admin_password", "admin")
	loader.SetDefault("admin_password_hash", "")
	loader.SetDefault("debug", false)
	loader.SetDefault("fps", 30)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.AddConfigPath(Path(""))
	loader.AddConfigPath(".")
	loader.AutomaticEnv()

	return &loader
}

// Watch enables reloading the config when the file is changed externally. Changes are
// sent over the channel passed to NewLoader.
func (cl *Loader) Watch() {
	cl.WatchConfig()
	cl.OnConfigChange(cl.onConfigChange)
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes != nil {
		cl.changes <- config
	}
}

func (cl *Loader) Write(config Config) error {
	cl.Set("title", config.Title)
	cl.Set("locale", config.Locale)
	cl.Set("storage_key", config.StorageKey)
	cl.Set("database_path", config.DatabasePath)
	cl.Set("idle_limit", config.IdleLimit)
	cl.Set("rotate_every", config.RotateEvery)
	cl.Set("fade_delay_ms", config.FadeDelayMs)
	cl.Set("fade_opacity", config.FadeOpacity)
	cl.Set("backgrounds", config.Backgrounds)
	cl.Set("admin_user", config.AdminUser)
	cl.Set("admin_password", config.AdminPassword)
	cl.Set("admin_password_hash", config.AdminPasswordHash)
	cl.Set("debug", config.Debug)
	cl.Set("fps", config.FPS)

	if err := cl.WriteConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Join(err, errConfigWrite)
		}

		if errSafe := cl.SafeWriteConfig(); errSafe != nil {
			return errors.Join(errSafe, errConfigWrite)
		}
	}

	return nil
}

func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if config.StorageKey == "" {
		config.StorageKey = DefaultStorageKey
	}

	return config, nil
}
