package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-log-timeline/internal/application/view"
	"github.com/penwyp/go-log-timeline/internal/config"
	"github.com/penwyp/go-log-timeline/internal/data/source"
	"github.com/penwyp/go-log-timeline/internal/util"
)

var (
	// Logging related
	debug bool

	// Configuration
	configPath string
	palette    []string
	dockerHost string
	dockerTail string

	// Interactive view
	noWatch bool
	noMouse bool

	rootCmd = &cobra.Command{
		Use:   "go-log-timeline [source]",
		Short: "Interactive scatter timeline for event logs",
		Long: `go-log-timeline draws an event log as a scatter timeline in the terminal.

Each line of the log has the form "[HH:MM:SS(.fff)] <<object>> message". Every
distinct object gets its own lane; markers are placed by time of day. Click a
marker (or focus it with the arrow keys and press enter) to see its details and
draw a crosshair at its time.

The source is a file path, "-" for stdin or docker://<container> for container
logs. Without a source a small sample timeline is shown. File sources are
reloaded when they change.

Examples:
  go-log-timeline events.log              # View a log file
  go-log-timeline docker://api            # View the logs of a container
  tail -n 200 app.log | go-log-timeline - # View stdin
  go-log-timeline render events.log -o json --select-marker 0`,
		Args: cobra.MaximumNArgs(1),
		RunE: runView,
	}
)

const defaultLogFile = "~/" + config.AppDir + "/logs/app.log"

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (default ~/"+config.AppDir+"/config.yaml)")
	rootCmd.PersistentFlags().StringSliceVar(&palette, "palette", nil,
		"Lane colors, comma separated (e.g. #636EFA,#EF553B)")
	rootCmd.PersistentFlags().StringVar(&dockerHost, "docker-host", "",
		"Docker daemon address for docker:// sources")
	rootCmd.PersistentFlags().StringVar(&dockerTail, "tail", "",
		"Number of container log lines to read (default all)")

	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false,
		"Do not reload the source file when it changes")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false,
		"Disable mouse reporting")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return err
	}

	// The terminal belongs to the view; logs only go to the file.
	if err := initLogging(cfg, false); err != nil {
		return err
	}
	defer util.CloseLogger()

	src, err := source.Resolve(sourceArg(args), cmd.InOrStdin(), cfg.Docker)
	if err != nil {
		return err
	}

	viewConfig := &view.ViewConfig{
		Palette: cfg.Palette,
		Layout:  cfg.Layout,
		Glyphs:  cfg.Display.Glyphs,
		Mouse:   cfg.Display.Mouse && !noMouse,
		Watch:   cfg.Watch && !noWatch,
	}
	orchestrator, err := view.NewOrchestrator(viewConfig, src)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return orchestrator.Run(ctx)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

// loadConfig reads the config file and applies command line overrides.
func loadConfig(ctx context.Context) (*config.Config, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadOrDefault(ctx, expandConfigPath(configPath))
	if err != nil {
		return nil, err
	}

	if len(palette) > 0 {
		cfg.Palette = palette
	}
	if dockerHost != "" {
		cfg.Docker.Host = dockerHost
	}
	if dockerTail != "" {
		cfg.Docker.Tail = dockerTail
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// initLogging installs the global logger. console also logs to stderr.
func initLogging(cfg *config.Config, console bool) error {
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = defaultLogFile
	}
	logFile = expandPath(logFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	return util.InitLogger(util.LoggerOptions{
		Level:   cfg.Log.Level,
		File:    logFile,
		Console: console,
		Format:  util.LogFormat(cfg.Log.Format),
	})
}

func sourceArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func expandConfigPath(path string) string {
	if path == "" {
		return ""
	}
	return expandPath(path)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
