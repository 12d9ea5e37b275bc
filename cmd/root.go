package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/fitcheck/internal/applog"
	"github.com/abhisek/fitcheck/internal/catalog"
	"github.com/abhisek/fitcheck/internal/coach"
	"github.com/abhisek/fitcheck/internal/config"
	"github.com/abhisek/fitcheck/internal/llm"
	"github.com/abhisek/fitcheck/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	logger  = applog.Discard()
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "fitcheck",
	Short: "Career-fit self-assessment for VR development in healthcare",
	Long: "fitcheck asks a short set of questions about your interests, personality,\n" +
		"technical background and readiness, then scores how well a career building\n" +
		"VR software for healthcare fits you.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command and releases the log file afterwards.
func Execute(ctx context.Context) error {
	defer closeLog()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FITCHECK_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides FITCHECK_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("questions", "", "Load the question bank from a YAML file instead of the built-in one")

	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and installs the process logger. The TUI owns
// the terminal, so the bare command logs to a file; subcommands log to stderr.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		c.Log.Level = lvl
	}
	cfg = c

	lc := applog.Config{
		Level:  applog.ParseLevel(c.Log.Level),
		Format: applog.ParseFormat(c.Log.Format),
		Output: cmd.ErrOrStderr(),
	}
	if !cmd.HasParent() {
		closeLog()
		f, err := applog.OpenFile(c.Log.File)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (logging disabled)\n", err)
			logger = applog.Discard()
			applog.SetDefault(logger)
			return nil
		}
		logFile = f
		lc.Output = f
	}
	logger = applog.New(lc)
	applog.SetDefault(logger)
	logger.Debug("config loaded", "env_file", c.EnvFileLoaded, "command", cmd.Name())
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FITCHECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug("store opened", "path", dbPath)
	return s, nil
}

// loadCatalog returns the --questions bank, or the built-in one.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("questions")
	if path == "" {
		return catalog.Builtin(), nil
	}
	c, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return c, nil
}

// newCoach builds a coaching service from the environment. It returns
// llm.ErrNotConfigured when no provider credentials are present.
func newCoach(ctx context.Context, events store.EventRepo, log *slog.Logger) (*coach.Service, string, error) {
	var opts []llm.Option
	if cfg != nil {
		opts = append(opts,
			llm.WithTimeoutOption(cfg.LLM.Timeout),
			llm.WithMaxAttempts(cfg.LLM.MaxAttempts))
	}
	p, err := llm.NewProviderFromEnv(ctx, events, log, opts...)
	if err != nil {
		return nil, "", err
	}
	return coach.NewService(p, coach.DefaultConfig()), p.ModelID(), nil
}
