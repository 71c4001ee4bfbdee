// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cmd implements the pulsesim commands.
package cmd

import (
	"os"

	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	input   string
	envFile string
	verbose bool
	strict  bool
	limit   uint64

	log *zap.Logger
}

// NewRootCmd returns the pulsesim root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "pulsesim",
		Short:        "pulsesim simulates pulse networks",
		Long:         `pulsesim loads a pulse network wiring file and counts pulses, finds activation periods or renders the network.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnv(o.envFile); err != nil {
				return err
			}
			if !cmd.Flags().Changed("input") {
				if v, ok := os.LookupEnv(envInput); ok {
					o.input = v
				}
			}
			l, err := newLogger(o.verbose)
			if err != nil {
				return errors.Wrap(err, "create logger")
			}
			o.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.log != nil {
				_ = o.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&o.input, "input", "i", "", "wiring file, - for standard input (env "+envInput+")")
	root.PersistentFlags().StringVar(&o.envFile, "env", ".env", "environment file")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().BoolVar(&o.strict, "strict", false, "reject outputs to undeclared modules")

	root.AddCommand(newCountCmd(o), newPeriodsCmd(o), newVizCmd(o), newGenCmd())
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// loadNetwork loads the network from the input file.
func (o *options) loadNetwork() (*pulsenet.Network, error) {
	if o.input == "" {
		return nil, errors.New("no input file, use --input or " + envInput)
	}
	opts := []pulsenet.Option{pulsenet.WithLogger(o.log), pulsenet.WithPressLimit(o.limit)}
	if o.strict {
		opts = append(opts, pulsenet.Strict())
	}
	if o.input == "-" {
		return pulsenet.Read(os.Stdin, opts...)
	}
	f, err := os.Open(o.input)
	if err != nil {
		return nil, errors.Wrap(err, "open wiring")
	}
	defer func() {
		_ = f.Close()
	}()
	n, err := pulsenet.Read(f, opts...)
	if err != nil {
		return nil, errors.Wrap(err, o.input)
	}
	o.log.Debug("network loaded", zap.String("input", o.input), zap.Int("modules", n.Size()))
	return n, nil
}
