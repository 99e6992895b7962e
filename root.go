package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/llehouerou/gesture/internal/app"
	"github.com/llehouerou/gesture/internal/config"
	"github.com/llehouerou/gesture/internal/flickr"
	"github.com/llehouerou/gesture/internal/media"
	"github.com/llehouerou/gesture/internal/notify"
	"github.com/llehouerou/gesture/internal/slideshow"
	"github.com/llehouerou/gesture/internal/state"
	"github.com/llehouerou/gesture/internal/ui/photoview"
)

type rootOptions struct {
	configPath string
	apiKey     string
	images     string
	perPage    int
	dwell      time.Duration
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "gesture [query]",
		Short: "Timed photo reference slideshows from Flickr",
		Long: `Gesture searches Flickr and shows the results one at a time, each for a
fixed time, for gesture drawing practice.

Start it without arguments to fill in the search form, or pass a query to
start the slideshow right away.`,
		Example: `  gesture
  gesture "dancer" --dwell 2m --per-page 25`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, strings.Join(args, " "))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "configuration file, read after the default locations")
	f.StringVar(&opts.apiKey, "api-key", "", "Flickr API key (default $"+config.APIKeyEnv+")")
	f.StringVar(&opts.images, "images", "", `image protocol: "auto", "kitty", "sixel" or "none"`)
	f.IntVarP(&opts.perPage, "per-page", "n", 0, "photos per session")
	f.DurationVarP(&opts.dwell, "dwell", "d", 0, "time per photo, e.g. 30s or 2m")

	return cmd
}

// overrides validates the command line values of the search form.
func (o rootOptions) overrides(query string) (app.FormValues, error) {
	v := app.FormValues{Query: strings.TrimSpace(query), PageSize: o.perPage}
	if o.perPage < 0 || o.perPage > config.MaxPageSize {
		return v, fmt.Errorf("--per-page must be between 1 and %d, or 0 for the configured value", config.MaxPageSize)
	}
	if o.dwell != 0 {
		if o.dwell < time.Second {
			return v, errors.New("--dwell must be at least 1s")
		}
		if o.dwell%time.Second != 0 {
			return v, fmt.Errorf("--dwell must be whole seconds, got %s", o.dwell)
		}
		v.DwellSeconds = int(o.dwell / time.Second)
	}
	return v, nil
}

func run(ctx context.Context, opts rootOptions, query string) error {
	overrides, err := opts.overrides(query)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.apiKey != "" {
		cfg.Flickr.APIKey = strings.TrimSpace(opts.apiKey)
	}
	if opts.images != "" {
		cfg.Display.Images = opts.images
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if !cfg.HasAPIKey() {
		slog.Warn("no Flickr API key configured")
	}

	fc := cfg.GetFlickrConfig()
	timeout := time.Duration(fc.TimeoutSeconds) * time.Second
	client := flickr.NewClient(fc.APIKey,
		flickr.WithBaseURL(fc.BaseURL),
		flickr.WithHTTPClient(&http.Client{Timeout: timeout}),
	)

	ctrl := slideshow.New(client)
	defer ctrl.Close()

	fetcher := media.New(media.WithHTTPClient(&http.Client{Timeout: timeout}))
	defer fetcher.Close()

	var store state.Interface
	if mgr, err := state.Open(); err != nil {
		slog.Warn("open state database, preferences will not be kept", "error", err)
	} else {
		store = mgr
		defer mgr.Close()
	}

	notifier := notify.Disabled()
	if cfg.NotificationsEnabled() {
		if n, err := notify.New(); err != nil {
			slog.Info("desktop notifications unavailable", "error", err)
		} else {
			notifier = n
		}
	}

	renderer := photoview.New(photoview.Detect(cfg.GetDisplayConfig().Images))
	if p := renderer.Protocol(); p != nil {
		slog.Debug("image protocol", "name", p.Name())
	}

	sc := cfg.GetSlideshowConfig()
	m := app.New(app.Deps{
		Slideshow: ctrl,
		Fetcher:   fetcher,
		Renderer:  renderer,
		State:     store,
		Notifier:  notifier,
		Defaults:  app.FormValues{PageSize: sc.PageSize, DwellSeconds: sc.DwellSeconds},
		Overrides: overrides,
		AutoStart: overrides.Query != "",
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	// Free the last photo held by the terminal.
	if seq := renderer.Clear(); seq != "" {
		_, _ = io.WriteString(os.Stdout, seq)
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// setupLogging sends slog output to the configured log file, or to the XDG
// state directory.
func setupLogging(cfg *config.Config) (io.Closer, error) {
	path := cfg.LogFile
	if path == "" {
		p, err := xdg.StateFile(filepath.Join("gesture", "gesture.log"))
		if err != nil {
			return nil, fmt.Errorf("log file path: %w", err)
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Level()})))
	return f, nil
}
