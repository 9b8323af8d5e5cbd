// SPDX-License-Identifier: MIT

// Command posespace fits pose-space rigs from YAML files and evaluates them.
//
//	posespace eval rig.yaml               # evaluate the rig's queries
//	posespace eval --kernel gaussian rig.yaml
//	posespace inspect rig.yaml            # per-space fit summary
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const appName = "posespace"

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var level string

	root := &cobra.Command{
		Use:           appName,
		Short:         "Pose-space RBF interpolation for rigs",
		Long:          "Fit example poses from a YAML rig and evaluate scalar and rotation outputs for live poses.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(level)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(lvl)

			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "info", "Log level (trace|debug|info|warn|error)")

	root.AddCommand(newEvalCmd(), newInspectCmd())

	return root
}
