// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"io"

	"github.com/db47h/pulsenet/pulselib"
	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	var (
		sink    string
		periods []uint
	)
	c := &cobra.Command{
		Use:   "gen",
		Short: "Generate a counter machine wiring",
		Long: `Generate the wiring of a network made of one flip-flop counter per period,
all feeding a hub conjunction that outputs to the sink. Periods must be odd
and greater than 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps := make([]uint64, len(periods))
			for i, p := range periods {
				ps[i] = uint64(p)
			}
			parts, err := pulselib.Machine(sink, ps...)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), pulselib.Text(parts))
			return err
		},
	}
	c.Flags().StringVar(&sink, "sink", "rx", "terminal sink")
	c.Flags().UintSliceVarP(&periods, "period", "p", []uint{3907, 3911, 3929, 4057}, "counter periods")
	return c
}
