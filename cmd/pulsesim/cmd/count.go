// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCountCmd(o *options) *cobra.Command {
	var presses uint64
	c := &cobra.Command{
		Use:   "count",
		Short: "Count low and high pulses",
		Long:  `Press the button a number of times and print the number of low and high pulses delivered, and their product.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("presses") {
				if err := envUint(envPresses, &presses); err != nil {
					return err
				}
			}
			n, err := o.loadNetwork()
			if err != nil {
				return err
			}
			cnt := n.Run(presses)
			o.log.Debug("run complete", zap.Uint64("presses", presses), zap.Uint64("low", cnt.Low), zap.Uint64("high", cnt.High))
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "low: %d\n", cnt.Low)
			fmt.Fprintf(w, "high: %d\n", cnt.High)
			fmt.Fprintf(w, "product: %d\n", cnt.Product())
			return nil
		},
	}
	c.Flags().Uint64VarP(&presses, "presses", "n", 1000, "number of button presses (env "+envPresses+")")
	return c
}
