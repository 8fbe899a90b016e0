package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anvil-platform/wireplan/internal/load"
	"github.com/anvil-platform/wireplan/internal/resolver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wireplan",
		Short:         "Resolve scanned component declarations into an ordered wiring plan",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.AddCommand(newResolveCmd())
	return root
}

func newResolveCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a scan document into a wiring plan",
		Long: `Resolve reads a scan document (JSON or YAML) produced by the scanner,
builds the validated, topologically ordered wiring plan, and writes it as JSON.
On any fatal diagnostic no plan is written and the exit status is non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(debug)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			in, err := load.Load(inputPath)
			if err != nil {
				return err
			}

			r := resolver.NewDefault(resolver.WithLogger(log))
			plan, err := r.Resolve(cmd.Context(), in)
			if err != nil {
				return err
			}

			for _, w := range plan.Warnings {
				log.Warn(w)
			}
			log.Info("plan resolved", zap.Int("components", len(plan.Components)))

			out, err := json.MarshalIndent(plan, "", "  ")
			if err != nil {
				return fmt.Errorf("encode plan: %w", err)
			}
			out = append(out, '\n')

			if outputPath == "" || outputPath == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(outputPath, out, 0o644); err != nil {
				return fmt.Errorf("write plan: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "scan document to resolve (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "plan output file (default stdout)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable per-stage debug logging")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}
