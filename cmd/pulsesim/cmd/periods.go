// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/db47h/pulsenet"
	"github.com/spf13/cobra"
)

func newPeriodsCmd(o *options) *cobra.Command {
	var (
		sink  string
		watch []string
		limit uint64
	)
	c := &cobra.Command{
		Use:   "periods",
		Short: "Find activation periods",
		Long: `Find the first press at which each watched module emits a high pulse and print
their least common multiple. By default the watched modules are the inputs of
the conjunction feeding the sink.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sink") {
				envString(envSink, &sink)
			}
			o.limit = limit
			n, err := o.loadNetwork()
			if err != nil {
				return err
			}
			if len(watch) == 0 {
				if watch, err = n.WatchedInputs(sink); err != nil {
					return err
				}
			}
			ps, err := n.FindActivationPeriods(watch)
			if err != nil {
				return err
			}
			vs := make([]uint64, len(watch))
			w := cmd.OutOrStdout()
			for i, l := range watch {
				vs[i] = ps[l]
				fmt.Fprintf(w, "%s: %d\n", l, ps[l])
			}
			lcm, err := pulsenet.LCM(vs...)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "lcm: %d\n", lcm)
			return nil
		},
	}
	c.Flags().StringVar(&sink, "sink", "rx", "terminal sink (env "+envSink+")")
	c.Flags().StringSliceVarP(&watch, "watch", "w", nil, "watched modules, overrides --sink")
	c.Flags().Uint64Var(&limit, "limit", pulsenet.DefaultPressLimit, "maximum number of presses")
	return c
}
