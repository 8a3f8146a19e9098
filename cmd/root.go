package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inovacc/taskr/internal/application"
	"github.com/inovacc/taskr/internal/core"
	"github.com/inovacc/taskr/internal/model"
	"github.com/inovacc/taskr/internal/params"
	"github.com/inovacc/taskr/internal/process"
	"github.com/inovacc/taskr/internal/store"
)

// skipStoreAnnotation marks commands that only touch the config file.
const skipStoreAnnotation = "taskr/skip-store"

var (
	configPath string
	storeFlag  string
	dataDir    string
	logLevel   string
	logFormat  string
)

// session is the state shared by the commands of one invocation.
type session struct {
	configPath string
	cfg        model.Config
	logger     *slog.Logger
	store      store.Store
	svc        *core.Service
}

var current *session

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A terminal task tracker",
	Long: `taskr keeps an ordered list of tasks, each with a project name, a
description, a creation time and tracked time.

Run 'taskr list' for the interactive board, where tasks can be edited in
place, or use the add, edit, remove and track commands directly.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_ = teardown()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default is <config dir>/taskr/config.ini)")
	flags.StringVar(&storeFlag, "store", "", "Storage backend: bolt, sqlite or memory")
	flags.StringVar(&dataDir, "data-dir", "", "Directory holding the task database")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "Log format: text or json")
}

func setup(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	cfg, err := core.LoadConfig(path)
	if err != nil {
		return err
	}

	applyFlagOverrides(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	slog.SetDefault(logger)

	current = &session{configPath: path, cfg: cfg, logger: logger}

	if _, skip := cmd.Annotations[skipStoreAnnotation]; skip {
		return nil
	}

	dir := cfg.DataDir
	if cfg.Store != model.StoreMemory {
		if dir, err = params.DataDir(cfg.DataDir); err != nil {
			return err
		}
	}

	s, err := store.Open(cfg.Store, dir)
	if errors.Is(err, store.ErrLocked) {
		return lockedError(err)
	}

	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Store, err)
	}

	logger.Debug("store opened", slog.String("backend", cfg.Store), slog.String("path", s.Path()))

	current.store = s
	current.svc = core.NewService(s, logger)

	return nil
}

func teardown() error {
	if current == nil || current.store == nil {
		current = nil
		return nil
	}

	err := current.store.Close()
	current = nil

	return err
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}

	return application.DefaultConfigPath()
}

// applyFlagOverrides copies explicitly set persistent flags over the file
// values.
func applyFlagOverrides(cmd *cobra.Command, cfg *model.Config) {
	flags := cmd.Flags()

	if flags.Changed("store") {
		cfg.Store = storeFlag
	}

	if flags.Changed("data-dir") {
		cfg.DataDir = dataDir
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
}

func newLogger(cfg model.Config) (*slog.Logger, error) {
	level, err := model.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == model.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

// lockedError names the other taskr processes holding the bolt file.
func lockedError(err error) error {
	peers := process.Peers(application.AppName)
	if len(peers) == 0 {
		return err
	}

	pids := make([]string, len(peers))
	for i, p := range peers {
		pids[i] = strconv.Itoa(p.PID)
	}

	return fmt.Errorf("%w (held by %s pid %s); the sqlite backend allows shared access",
		err, application.AppName, strings.Join(pids, ", "))
}
