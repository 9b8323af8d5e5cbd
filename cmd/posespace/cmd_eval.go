// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/posespace/kernel"
	"github.com/katalvlaran/posespace/posespace"
	"github.com/katalvlaran/posespace/rigfile"
	"github.com/katalvlaran/posespace/rotation"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <rig.yaml>",
		Short: "Fit a rig and evaluate its queries",
		Long:  "Fit the samples of a rig file and print scalar outputs, output rotations ([x y z w]) and their XYZ Euler angles for every query.",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	cmd.Flags().String("kernel", "", "Override params.kernel")
	cmd.Flags().Float64("radius", 0, "Override params.radius")
	cmd.Flags().Float64("regularization", 0, "Override params.regularization")
	cmd.Flags().String("mode", "", "Override params.output_mode (absolute|relative)")

	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	ip, rig, err := buildRig(args[0])
	if err != nil {
		return err
	}
	if err = applyOverrides(cmd, ip); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, q := range rig.ToQueries() {
		res, err := ip.Evaluate(q)
		if err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		name := rig.Queries[i].Name
		if name == "" {
			name = fmt.Sprintf("query[%d]", i)
		}
		printResult(out, name, res)
	}

	return nil
}

// buildRig loads path and returns its Interpolator wired to the global logger.
func buildRig(path string) (*posespace.Interpolator, *rigfile.Rig, error) {
	rig, err := rigfile.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	ip, err := rig.Build(posespace.WithLogger(log.Logger))
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("rig", path).Int("samples", ip.SampleCount()).Int("queries", len(rig.Queries)).Msg("rig loaded")

	return ip, rig, nil
}

// applyOverrides copies changed parameter flags into ip.
func applyOverrides(cmd *cobra.Command, ip *posespace.Interpolator) error {
	p := ip.Params()
	flags := cmd.Flags()
	var err error
	if flags.Changed("kernel") {
		name, _ := flags.GetString("kernel")
		if p.Kernel, err = kernel.ParseKind(name); err != nil {
			return err
		}
	}
	if flags.Changed("radius") {
		p.Radius, _ = flags.GetFloat64("radius")
	}
	if flags.Changed("regularization") {
		p.Regularization, _ = flags.GetFloat64("regularization")
	}
	if flags.Changed("mode") {
		name, _ := flags.GetString("mode")
		if p.OutputMode, err = posespace.ParseOutputMode(name); err != nil {
			return err
		}
	}

	return ip.SetParams(p)
}

func printResult(w io.Writer, name string, res posespace.Output) {
	fmt.Fprintf(w, "%s:\n", name)
	if len(res.Scalars) > 0 {
		vals := make([]string, len(res.Scalars))
		for i, v := range res.Scalars {
			vals[i] = fmt.Sprintf("%.6g", v)
		}
		fmt.Fprintf(w, "  scalars: [%s]\n", strings.Join(vals, ", "))
	}
	for i, q := range res.Quats {
		x, y, z := rotation.ToEulerXYZ(q)
		rq := rigfile.FromNumber(q)
		fmt.Fprintf(w, "  rotation[%d]: [%.6f, %.6f, %.6f, %.6f] euler: [%.3f, %.3f, %.3f]\n",
			i, rq[0], rq[1], rq[2], rq[3], x, y, z)
	}
}
