// Package cli builds the handmade command tree. The windowed run command is
// injected by the binary so this package stays headless.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"handmade/internal/config"
	"handmade/internal/logging"
)

const DefaultScene = "assets/scenes/demo.yaml"

// Env is what every subcommand gets after the config and logger are set up.
type Env struct {
	Config config.Config
	Logger *zap.Logger
}

// RunOptions are the flags of the run command.
type RunOptions struct {
	Connect bool
	Paused  bool
}

// RunFunc opens the window and plays scenePath until the window closes or
// ctx is done.
type RunFunc func(ctx context.Context, env *Env, scenePath string, opts RunOptions) error

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand returns the root command. run may be nil, in which case
// the run subcommand is left out.
func NewRootCommand(version string, run RunFunc) *cobra.Command {
	var flags rootFlags
	env := &Env{}

	root := &cobra.Command{
		Use:   "handmade",
		Short: "2D collision sandbox",
		Long: `handmade loads a YAML scene of game objects with sphere, plane,
axis-aligned and oriented box colliders and reports which of them touch.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(env, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if env.Logger != nil {
				_ = env.Logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "config.yaml", "Path to the YAML config file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Override the configured log format (console or json)")

	root.AddCommand(newCheckCommand(env))
	root.AddCommand(newVersionCommand(version))
	if run != nil {
		root.AddCommand(newRunCommand(env, run))
	}
	return root
}

func setup(env *Env, flags rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	env.Config = cfg
	env.Logger = logger
	logger.Debug("config loaded", zap.String("path", flags.configPath))
	return nil
}

func newRunCommand(env *Env, run RunFunc) *cobra.Command {
	var opts RunOptions
	cmd := &cobra.Command{
		Use:   "run [scene.yaml]",
		Short: "Open a window and simulate a scene",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), env, scenePath(args), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Connect, "connect", false, "Connect to the configured server and stream contacts")
	cmd.Flags().BoolVar(&opts.Paused, "paused", false, "Start with the simulation paused")
	return cmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// The root pre-run loads config, which printing the version does not need.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func scenePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return DefaultScene
}

// Execute runs root with fang's styled help and errors and returns the
// process exit code.
func Execute(ctx context.Context, root *cobra.Command, version string) int {
	if err := fang.Execute(ctx, root, fang.WithVersion(version)); err != nil {
		return 1
	}
	return 0
}
