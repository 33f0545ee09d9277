package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/termfolio/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

type flagBinding struct {
	key  string
	flag string
}

var flagBindings = []flagBinding{
	{key: config.KeyContentURL, flag: "content-url"},
	{key: config.KeyContentFile, flag: "content-file"},
	{key: config.KeyBootDelay, flag: "boot-delay"},
	{key: config.KeyEmptySubmission, flag: "empty-submission"},
	{key: config.KeyLogLevel, flag: "log-level"},
	{key: config.KeyLogFile, flag: "log-file"},
}

func newRootCmd() *cobra.Command {
	v := config.New()
	state := &app{}
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "termfolio",
		Short: "termfolio: a developer portfolio that behaves like a terminal",
		Long: "termfolio boots a simulated terminal whose commands (help, info, skills, projects, contacts, clear) " +
			"print portfolio content loaded from a markdown document with fenced JSON sections.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}

			cfg, err := config.Load(v, config.LoadOptions{ConfigFile: configFile})
			if err != nil {
				return err
			}

			return state.wire(cfg, cmd.ErrOrStderr(), cmd == cmd.Root())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return state.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, state)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/termfolio/config.toml)")
	flags.String("content-url", "", "base URL serving terminal-content.md")
	flags.String("content-file", "", "local terminal content markdown file")
	flags.Duration("boot-delay", config.DefaultBootDelay, "how long the boot screen stays up")
	flags.Bool("no-animate", false, "print output without the typewriter reveal")
	flags.String("empty-submission", "record", "what an empty submission does: record or ignore")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-file", "", "append JSON logs to this file")

	rootCmd.AddCommand(
		newVersionCmd(),
		newExecCmd(state),
		newContentCmd(state),
	)

	return rootCmd
}

// bindFlags exposes the persistent flags to viper. Flags only win over the
// config file and environment when they were set explicitly.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var errs []error
	for _, binding := range flagBindings {
		flag := flags.Lookup(binding.flag)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(binding.key, flag); err != nil {
			errs = append(errs, fmt.Errorf("bind flag %s: %w", binding.flag, err))
		}
	}

	if flags.Changed("no-animate") {
		noAnimate, err := flags.GetBool("no-animate")
		if err != nil {
			errs = append(errs, err)
		} else {
			v.Set(config.KeyRevealEnabled, !noAnimate)
		}
	}

	return errors.Join(errs...)
}
