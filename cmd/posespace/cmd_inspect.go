// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <rig.yaml>",
		Short: "Fit a rig and print the per-space summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ip, _, err := buildRig(args[0])
			if err != nil {
				return err
			}
			summary, err := ip.Summary()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := ip.Params()
			fmt.Fprintf(out, "kernel=%s radius=%g regularization=%g mode=%s samples=%d\n",
				p.Kernel, p.Radius, p.Regularization, p.OutputMode, ip.SampleCount())
			for _, s := range summary {
				fmt.Fprintf(out, "%-12s samples=%d fitted=%t columns=%d", s.Space, s.Samples, s.Fitted, s.Columns)
				if s.SampleRadius != nil {
					fmt.Fprintf(out, " radius=%.4g", s.SampleRadius)
				}
				fmt.Fprintln(out)
			}
			if scalars, quats := ip.Neutral(); scalars != nil || quats != nil {
				fmt.Fprintf(out, "neutral scalars=%v rotations=%d\n", scalars, len(quats))
			}

			return nil
		},
	}
}
