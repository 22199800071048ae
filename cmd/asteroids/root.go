// cmd/asteroids/root.go
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// app holds what every subcommand needs once the root has run
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg    *config.Config
	logger *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:           "asteroids",
		Short:         "Asteroids simulation with a window host and a headless runner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (JSON, YAML or TOML)")
	root.PersistentFlags().Uint64("seed", 0, "random seed, 0 picks one at random")

	root.AddCommand(newPlayCmd(a), newSimulateCmd(a), newConfigCmd(a))
	return root
}

// flagKeys maps config keys to the flags that override them
var flagKeys = map[string]string{
	"sim.seed": "seed",
}

// bindFlags binds the override flags visible to cmd to their config keys
func (a *app) bindFlags(cmd *cobra.Command) error {
	for key, name := range flagKeys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return logging.WrapError(err, "failed to bind flag --%s", name)
		}
	}
	return nil
}

// initialize reads the config file and environment, then sets up logging
func (a *app) initialize(cmd *cobra.Command) error {
	if err := a.bindFlags(cmd); err != nil {
		return err
	}
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return logging.WrapError(err, "error reading config file %s", a.cfgFile)
		}
	}

	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.NewLoggerWithWriter(cmd.ErrOrStderr(), logging.ParseLevel(os.Getenv(logging.LevelEnvVar)))
	return nil
}
