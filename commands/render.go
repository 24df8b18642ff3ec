package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/penwyp/go-log-timeline/internal/application/view"
	"github.com/penwyp/go-log-timeline/internal/config"
	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/core/timeline"
	"github.com/penwyp/go-log-timeline/internal/data/source"
	"github.com/penwyp/go-log-timeline/internal/presentation/formatter"
	"github.com/penwyp/go-log-timeline/internal/presentation/layout"
	"github.com/penwyp/go-log-timeline/internal/presentation/scene"
	"github.com/penwyp/go-log-timeline/internal/util"
)

var (
	renderOutput        string
	renderSelectPayload string
	renderSelectMarker  int
	renderWidth         int
)

var renderCmd = &cobra.Command{
	Use:   "render [source]",
	Short: "Render the timeline once without the interactive view",
	Long: `Render parses the source, builds the timeline and prints it once.

A marker can be selected the same way a click would: by index with
--select-marker, or with the marker's JSON payload via --select-payload, e.g.
  --select-payload '{"timestamp":"2024-01-01T19:58:12.174","object":"Hello","message":"Hello, World!"}'

Output formats: text (terminal drawing), json (the scene), table, csv, summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", formatter.FormatText,
		fmt.Sprintf("Output format %v", formatter.Formats))
	renderCmd.Flags().StringVar(&renderSelectPayload, "select-payload", "",
		"Select using a marker payload (JSON)")
	renderCmd.Flags().IntVar(&renderSelectMarker, "select-marker", -1,
		"Select the marker with this index")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0,
		"Width of the text output (default terminal width)")
}

func runRender(cmd *cobra.Command, args []string) error {
	f, err := formatter.New(renderOutput, textWidth(renderWidth))
	if err != nil {
		return err
	}
	report, err := buildReport(cmd, args, func(d *view.Dispatcher) error {
		return applySelection(cmd, d)
	})
	if err != nil {
		return err
	}
	return f.Format(cmd.OutOrStdout(), report)
}

// buildReport loads the source into a fresh dispatcher, lets selectFn click
// on it and collects the result.
func buildReport(cmd *cobra.Command, args []string, selectFn func(*view.Dispatcher) error) (formatter.Report, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return formatter.Report{}, err
	}
	if err := initLogging(cfg, debug); err != nil {
		return formatter.Report{}, err
	}
	defer util.CloseLogger()

	src, err := source.Resolve(sourceArg(args), cmd.InOrStdin(), cfg.Docker)
	if err != nil {
		return formatter.Report{}, err
	}

	events, err := view.NewLoader(src).Load(ctx)
	if err != nil {
		return formatter.Report{}, fmt.Errorf("failed to load %s: %w", src.Name(), err)
	}

	d := newDispatcher(cfg)
	d.Update(events)
	if selectFn != nil {
		if err := selectFn(d); err != nil {
			return formatter.Report{}, err
		}
	}

	return formatter.Report{
		Source:   src.Name(),
		Timeline: d.Timeline(),
		Scene:    d.Scene(),
		Selected: d.Selection().IsSelected(),
		Detail:   d.Detail(),
	}, nil
}

func newDispatcher(cfg *config.Config) *view.Dispatcher {
	return view.NewDispatcher(
		timeline.NewTimelineBuilder(cfg.Palette),
		scene.NewRenderer(cfg.Layout),
	)
}

// applySelection clicks the marker named by the selection flags. A payload
// whose timestamp cannot be read leaves the selection unchanged.
func applySelection(cmd *cobra.Command, d *view.Dispatcher) error {
	if renderSelectMarker >= 0 {
		if !d.ClickMarker(renderSelectMarker) {
			return fmt.Errorf("no marker with index %d (have %d)", renderSelectMarker, len(d.Scene().Markers))
		}
	}

	if renderSelectPayload != "" {
		p, err := decodePayload(renderSelectPayload)
		if err != nil {
			return err
		}
		if !d.ClickPayload(p) {
			warn(cmd.ErrOrStderr(), "ignoring payload with unreadable timestamp %q", p.Timestamp)
		}
	}
	return nil
}

func decodePayload(raw string) (model.Payload, error) {
	var p model.Payload
	if err := sonic.UnmarshalString(raw, &p); err != nil {
		return model.Payload{}, fmt.Errorf("invalid payload: %w", err)
	}
	return p, nil
}

func textWidth(width int) int {
	if width > 0 {
		return width
	}
	return layout.DetectSizer().Width
}

func warn(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "warning: "+format+"\n", args...)
}
