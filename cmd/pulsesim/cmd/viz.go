// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"io"
	"os"

	"github.com/db47h/pulsenet/viz"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newVizCmd(o *options) *cobra.Command {
	var (
		output string
		format string
		lr     bool
	)
	c := &cobra.Command{
		Use:   "viz",
		Short: "Render a network with graphviz",
		Long:  `Render the network wiring with graphviz. The output defaults to standard output.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := viz.ParseFormat(format)
			if err != nil {
				return err
			}
			n, err := o.loadNetwork()
			if err != nil {
				return err
			}
			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				out, err := os.Create(output)
				if err != nil {
					return errors.Wrap(err, "create output")
				}
				defer func() {
					_ = out.Close()
				}()
				w = out
			}
			cfg := &viz.Config{Font: viz.Helvetica, Format: f}
			if lr {
				cfg.RankDir = viz.LeftToRight
			}
			return viz.New(cfg).Flush(w, n)
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "output file")
	c.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg or png")
	c.Flags().BoolVar(&lr, "lr", false, "lay out left to right")
	return c
}
