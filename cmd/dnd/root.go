package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-dnd/internal/config"
	"github.com/grindlemire/go-dnd/internal/debug"
)

// app is the state shared by all commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config

	bindings []binding
}

type binding struct {
	key  string
	flag *pflag.Flag
}

// bind records that flag overrides the config key. Bindings are applied by
// bindFlags once flags are parsed.
func (a *app) bind(key string, flag *pflag.Flag) {
	a.bindings = append(a.bindings, binding{key: key, flag: flag})
}

func (a *app) bindFlags() error {
	for _, b := range a.bindings {
		if err := a.v.BindPFlag(b.key, b.flag); err != nil {
			return fmt.Errorf("failed to bind flag for %s: %w", b.key, err)
		}
	}
	return nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "dnd",
		Short: "Tools around the drag and drop impact resolver",
		Long: `dnd replays drag scenarios against the impact resolver and runs an
interactive terminal demo.

Settings come from flags, DND_* environment variables (DND_LOG_LEVEL,
DND_REPLAY_JSON, ...) and an optional YAML file at
$HOME/.config/dnd/config.yaml.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bindFlags(); err != nil {
				return err
			}
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if err := debug.Init(cfg.Log, zapcore.AddSync(cmd.ErrOrStderr())); err != nil {
				return err
			}
			debug.Logger().Debug("starting", zap.String("command", cmd.Name()), zap.String("version", version))
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return debug.Close()
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("dnd version {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default $HOME/.config/dnd/config.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-file", "", "also write JSON logs to this file")
	a.bind("log.level", flags.Lookup("log-level"))
	a.bind("log.file", flags.Lookup("log-file"))

	cmd.AddCommand(newReplayCmd(a), newDemoCmd(a), newVersionCmd())
	return cmd
}
