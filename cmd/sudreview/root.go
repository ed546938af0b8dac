package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"sudreview/internal/config"
	"sudreview/internal/logging"
	"sudreview/internal/report"
	"sudreview/internal/trace"
	"sudreview/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sudreview",
	Short: "Interactive review of SUD screening instruments in homeless healthcare",
	Long: `sudreview presents a narrative review of substance use disorder screening
and assessment instruments used in homeless healthcare: the study selection
funnel, a side-by-side instrument comparison, and the key references.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runPresentation,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

// session is the host state shared by every subcommand.
type session struct {
	cfg      *config.Config
	log      *slog.Logger
	exporter *trace.Exporter
	closers  []io.Closer
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger, closer, err := logging.Open(cfg.LogFile, level)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: logger, closers: []io.Closer{closer}}

	exp, err := trace.NewExporter(ctx, trace.Options{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
		Insecure:    cfg.Trace.Insecure,
	})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("starting tracing: %w", err)
	}
	s.exporter = exp
	logger.Debug("session opened", "config", cfgFile, "tracing", exp != nil)
	return s, nil
}

// Close flushes traces and closes the log file.
func (s *session) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.exporter.Shutdown(ctx); err != nil {
		s.log.Warn("trace shutdown", "err", err)
	}
	for _, c := range s.closers {
		_ = c.Close()
	}
}

func (s *session) options() (ui.Options, error) {
	format, err := report.ParseFormat(s.cfg.ExportFormat)
	if err != nil {
		return ui.Options{}, err
	}
	opts := ui.DefaultOptions()
	opts.Transition = s.cfg.Motion.Transition()
	opts.Pace = s.cfg.Motion.Pace()
	opts.FPS = s.cfg.Motion.FPS
	opts.ShareURL = s.cfg.ShareURL
	opts.ExportDir = s.cfg.ExportDir
	opts.ExportFormat = format
	opts.Logger = s.log
	opts.Recorder = trace.NewRecorder(s.exporter)
	return opts, nil
}

func runPresentation(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	opts, err := s.options()
	if err != nil {
		return err
	}
	model := ui.NewAppModel(opts).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	s.log.Info("presentation started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running presentation: %w", err)
	}
	s.log.Info("presentation closed")
	return nil
}
