package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/smasonuk/gotraj"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the driver configuration, read from flags and GOTRAJ_* variables.
type Config struct {
	Seed      int64  `mapstructure:"seed"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:           "gotraj",
		Short:         "Builds a random 3D trajectory and exercises MyVector.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("failed to unmarshal config: %w", err)
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			gotraj.SetLogger(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = gotraj.Logger().Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), newRand(cfg.Seed))
		},
	}

	flags := cmd.PersistentFlags()
	flags.Int64("seed", 0, "random seed for point generation (0 seeds from the clock)")
	flags.String("log-level", "warn", "diagnostic log level")
	flags.String("log-format", "console", "diagnostic log format: console or json")
	flags.String("log-file", "", "also write diagnostics to this rotating file")

	_ = v.BindPFlag("seed", flags.Lookup("seed"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = v.BindPFlag("log_file", flags.Lookup("log-file"))

	v.SetEnvPrefix("GOTRAJ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		gotraj.Logger().Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
