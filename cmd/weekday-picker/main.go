package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/username/weekday-picker/internal/calendar"
	"github.com/username/weekday-picker/internal/config"
	"github.com/username/weekday-picker/internal/export"
	"github.com/username/weekday-picker/internal/picker"
	"github.com/username/weekday-picker/internal/preset"
	"github.com/username/weekday-picker/internal/render"
	"github.com/username/weekday-picker/internal/tui"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	formatFlag string
	outputPath string
	plainFlag  bool

	cfg         *config.Config
	logger      = zap.NewNop()
	fileLogging bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "weekday-picker",
		Short:         "Weekday-only date range picker",
		Long:          "Select date ranges on a calendar where only Monday to Friday can be picked, and list the weekdays and weekend days inside the range",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fileLogging = false
			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.GetLogLevel())
				if err != nil {
					logger = initLogger(cfg.Log.GetLogLevel()) // Fallback to console
				} else {
					fileLogging = true
				}
			} else {
				logger = initLogger(cfg.Log.GetLogLevel())
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ., $HOME/.weekday-picker, /etc/weekday-picker)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: text, json, yaml or ics (overrides output.format)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Write results to file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Render calendars without colour")

	rootCmd.AddCommand(monthCmd())
	rootCmd.AddCommand(selectCmd())
	rootCmd.AddCommand(presetCmd())
	rootCmd.AddCommand(presetsCmd())
	rootCmd.AddCommand(interactiveCmd())

	return rootCmd
}

func monthCmd() *cobra.Command {
	var selection string

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Render a month grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPicker(nil)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				month, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", args[0], err)
				}
				p.GoTo(month.Year(), month.Month())
			}

			if selection != "" {
				parts := strings.Split(selection, ",")
				if len(parts) != 2 {
					return fmt.Errorf("--select expects START,END, got %q", selection)
				}
				r, err := parseRange(parts[0], parts[1])
				if err != nil {
					return err
				}
				p.SelectRange(r.Start, r.End)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), newRenderer().Widget(p, nil))
			return err
		},
	}

	cmd.Flags().StringVar(&selection, "select", "", "Highlight a range, e.g. 2024-06-03,2024-06-14")

	return cmd
}

func selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select START END",
		Short: "Click two weekdays and print the weekday and weekend dates between them",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result *export.Selection
			p, err := newPicker(func(sel export.Selection) { result = &sel })
			if err != nil {
				return err
			}

			for _, arg := range args {
				d, err := calendar.Parse(arg)
				if err != nil {
					return err
				}
				if !p.Click(d) {
					return fmt.Errorf("%s is a %s; only weekdays can be selected", d, d.Weekday())
				}
			}

			if result == nil {
				return fmt.Errorf("selection incomplete")
			}
			return writeSelection(cmd.OutOrStdout(), *result)
		},
	}
}

func presetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preset LABEL",
		Short: "Select a predefined range and print its weekday and weekend dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result *export.Selection
			p, err := newPicker(func(sel export.Selection) { result = &sel })
			if err != nil {
				return err
			}

			if err := p.SelectPreset(args[0]); err != nil {
				return err
			}
			return writeSelection(cmd.OutOrStdout(), *result)
		},
	}
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List predefined ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPicker(nil)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.NewPlain().Presets(p.Presets()))
			return err
		},
	}
}

func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Pick ranges in an interactive calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Root context with cancellation on SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// bubbletea draws inline on the terminal, so console logging is muted
			logger = interactiveLogger(logger, fileLogging)

			// The TUI owns stdout, so results are only written with --output
			p, err := newPicker(func(sel export.Selection) {
				if outputPath == "" {
					return
				}
				if err := writeSelectionFile(outputPath, sel); err != nil {
					logger.Error("Failed to write selection", zap.Error(err))
				}
			})
			if err != nil {
				return err
			}

			return tui.Run(p, newRenderer(), logger, tea.WithContext(ctx))
		},
	}
}

// interactiveLogger returns base when logs go to a file and a no-op logger
// when they would go to the terminal the TUI draws on
func interactiveLogger(base *zap.Logger, toFile bool) *zap.Logger {
	if !toFile {
		return zap.NewNop()
	}
	return base
}

// newPicker builds a picker with the configured presets. Every completed
// selection is logged and handed to onSelect, if set.
func newPicker(onSelect func(export.Selection)) (*picker.Picker, error) {
	presets, err := preset.Resolve(cfg.Presets, time.Now())
	if err != nil {
		return nil, err
	}

	var p *picker.Picker
	p = picker.New(picker.Options{
		PredefinedRanges: presets,
		Logger:           logger,
		OnChange: func(weekdays, weekends []string) {
			logger.Info("Selection changed",
				zap.Strings("weekdays", weekdays),
				zap.Strings("weekends", weekends))

			if onSelect == nil {
				return
			}
			r, _ := p.Range()
			onSelect(export.Selection{
				Start:    r.Start.String(),
				End:      r.End.String(),
				Weekdays: weekdays,
				Weekends: weekends,
			})
		},
	})
	return p, nil
}

func parseRange(start, end string) (calendar.Range, error) {
	s, err := calendar.Parse(strings.TrimSpace(start))
	if err != nil {
		return calendar.Range{}, err
	}
	e, err := calendar.Parse(strings.TrimSpace(end))
	if err != nil {
		return calendar.Range{}, err
	}
	return calendar.NewRange(s, e), nil
}

// writeSelection writes to --output when set, otherwise to w
func writeSelection(w io.Writer, sel export.Selection) error {
	if outputPath != "" {
		return writeSelectionFile(outputPath, sel)
	}
	return encodeSelection(w, sel)
}

// writeSelectionFile replaces path with the encoded selection
func writeSelectionFile(path string, sel export.Selection) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	if err := encodeSelection(f, sel); err != nil {
		return err
	}

	logger.Debug("Selection written to file", zap.String("path", path))
	return nil
}

func encodeSelection(w io.Writer, sel export.Selection) error {
	name := formatFlag
	if name == "" {
		name = cfg.Output.Format
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return err
	}
	return export.Write(w, format, sel)
}

func newRenderer() *render.Renderer {
	if plainFlag {
		return render.NewPlain()
	}
	return render.New()
}

func initLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return logger
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}

// contextOrBackground is used by commands executed without ExecuteContext
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
