package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	"github.com/jonboulle/clockwork"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/mrs-board/internal/admin"
	"github.com/leighmacdonald/mrs-board/internal/backdrop"
	"github.com/leighmacdonald/mrs-board/internal/cache"
	"github.com/leighmacdonald/mrs-board/internal/clock"
	"github.com/leighmacdonald/mrs-board/internal/config"
	"github.com/leighmacdonald/mrs-board/internal/league"
	"github.com/leighmacdonald/mrs-board/internal/store"
	"github.com/leighmacdonald/mrs-board/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "mrs-board",
		Short: "Sports house league directory",
		Long:  `mrs-board - A kiosk directory of the sports leagues housed in the building, with an idle screensaver`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about mrs-board",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	seedCmd = &cobra.Command{
		Use:               "seed",
		Short:             "Reset the directory to the default leagues",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              seed,
	}

	listCmd = &cobra.Command{
		Use:               "list",
		Short:             "Print the directory sorted by league name",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              list,
	}

	fetchCmd = &cobra.Command{
		Use:               "fetch",
		Short:             "Download the screensaver backgrounds into the cache",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              fetch,
	}
)

var errApp = errors.New("application error")

func main() {
	configPath := config.Path(config.DefaultConfigName)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", configPath, "Config file path")
	rootCmd.AddCommand(versionCmd, seedCmd, listCmd, fetchCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("mrs-board - League Directory\n\n")  //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)     //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)      //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)        //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion) //nolint:forbidigo
}

// loadConfig makes sure the config home exists and reads the user config from it.
func loadConfig(changes chan<- config.Config) (*config.Loader, config.Config, error) {
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return nil, config.Config{}, errors.Join(err, errApp)
	}

	loader := config.NewLoader(changes)
	if cfgFile != "" && cfgFile != config.Path(config.DefaultConfigName) {
		loader.SetConfigFile(cfgFile)
	}

	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return nil, config.Config{}, errors.Join(errApp, errConfig)
	}

	return loader, userConfig, nil
}

func openRepository(ctx context.Context, userConfig config.Config) (*sql.DB, *league.Repository, error) {
	database, errDB := store.Open(ctx, userConfig.DBPath(), true)
	if errDB != nil {
		return nil, nil, errors.Join(errDB, errApp)
	}

	return database, league.NewRepository(store.New(database), userConfig.StorageKey, clockwork.NewRealClock()), nil
}

func newFetcher() (*backdrop.Fetcher, error) {
	imageCache, errCache := cache.New(config.PathCache(config.CacheDirName))
	if errCache != nil {
		return nil, errors.Join(errCache, errApp)
	}

	return backdrop.NewFetcher(&http.Client{Timeout: config.DefaultHTTPTimeout}, imageCache), nil
}

func newVerifier(userConfig config.Config) (admin.Verifier, error) {
	if userConfig.AdminPasswordHash == "" {
		return admin.StaticVerifier{User: userConfig.AdminUser, Password: userConfig.AdminPassword}, nil
	}

	verifier, err := admin.NewBcryptVerifier(userConfig.AdminUser, userConfig.AdminPasswordHash)
	if err != nil {
		return nil, errors.Join(err, errApp)
	}

	return verifier, nil
}

func closeDatabase(database *sql.DB) {
	if err := database.Close(); err != nil {
		slog.Error("Error closing database", slog.String("error", err.Error()))
	}
}

func seed(cmd *cobra.Command, _ []string) error {
	_, userConfig, err := loadConfig(nil)
	if err != nil {
		return err
	}

	database, repo, errRepo := openRepository(cmd.Context(), userConfig)
	if errRepo != nil {
		return errRepo
	}
	defer closeDatabase(database)

	if errReplace := repo.Replace(cmd.Context(), league.Seed()); errReplace != nil {
		return errors.Join(errReplace, errApp)
	}

	fmt.Printf("Directory reset to %d leagues\n", len(league.Seed())) //nolint:forbidigo

	return nil
}

func list(cmd *cobra.Command, _ []string) error {
	_, userConfig, err := loadConfig(nil)
	if err != nil {
		return err
	}

	database, repo, errRepo := openRepository(cmd.Context(), userConfig)
	if errRepo != nil {
		return errRepo
	}
	defer closeDatabase(database)

	leagues, errLoad := repo.Load(cmd.Context())
	if errLoad != nil {
		return errors.Join(errLoad, errApp)
	}

	for _, row := range league.PublicRows(league.NewSorter(userConfig.Locale).Sort(leagues)) {
		fmt.Printf("%-60s %-18s %s\n", row.Name, row.FloorLabel, row.Office) //nolint:forbidigo
	}

	return nil
}

func fetch(cmd *cobra.Command, _ []string) error {
	_, userConfig, err := loadConfig(nil)
	if err != nil {
		return err
	}

	fetcher, errFetcher := newFetcher()
	if errFetcher != nil {
		return errFetcher
	}

	tasks, ctx := errgroup.WithContext(cmd.Context())
	for _, url := range userConfig.Backgrounds {
		tasks.Go(func() error {
			img, errFetch := fetcher.Fetch(ctx, url)
			if errFetch != nil {
				return errFetch
			}

			bounds := img.Bounds()
			fmt.Printf("%dx%d %s\n", bounds.Dx(), bounds.Dy(), url) //nolint:forbidigo

			return nil
		})
	}

	if errWait := tasks.Wait(); errWait != nil {
		return errors.Join(errWait, errApp)
	}

	return nil
}

// run is the main entry point of mrs-board.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	configUpdates := make(chan config.Config)

	configLoader, userConfig, errConfig := loadConfig(configUpdates)
	if errConfig != nil {
		return errConfig
	}

	level := slog.LevelInfo
	if userConfig.Debug {
		level = slog.LevelDebug
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting mrs-board", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	configLoader.Watch()

	database, repo, errRepo := openRepository(cmd.Context(), userConfig)
	if errRepo != nil {
		return errRepo
	}
	defer closeDatabase(database)

	fetcher, errFetcher := newFetcher()
	if errFetcher != nil {
		return errFetcher
	}

	verifier, errVerifier := newVerifier(userConfig)
	if errVerifier != nil {
		return errVerifier
	}

	app := NewApp(userConfig, repo, configUpdates)

	return app.Start(cmd.Context(), ui.Dependencies{
		Directory: repo,
		Fetcher:   fetcher,
		Verifier:  verifier,
		Clock:     clock.New(clockwork.NewRealClock(), userConfig.Locale),
		Loader:    configLoader,
		DBPath:    userConfig.DBPath(),
	})
}
