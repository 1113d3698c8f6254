package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Geostore/internal/auth"
	"Geostore/internal/calc/sensitivity"
	"Geostore/internal/config"
	"Geostore/internal/server"

	"github.com/spf13/cobra"
)

type runOptions struct {
	scenario string
	layers   string
	xlsx     string
	pdf      string
	project  string
	author   string
}

func runCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Print the reservoir, layer and sensitivity results and write charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAssess(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.scenario, "scenario", "s", "", "scenario YAML file (default: reference case)")
	cmd.Flags().StringVar(&opts.layers, "layers", "", "layer workbook (.xlsx) replacing the scenario layers")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "write the charts workbook to this path")
	cmd.Flags().StringVar(&opts.pdf, "pdf", "", "write the PDF report to this path")
	cmd.Flags().StringVar(&opts.project, "project", "", "project name for the PDF report")
	cmd.Flags().StringVar(&opts.author, "author", "", "author for the PDF report")
	return cmd
}

func sweepCmd() *cobra.Command {
	var (
		scenarioPath string
		param        string
		fractions    []float64
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a sensitivity sweep over one reservoir parameter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd.OutOrStdout(), scenarioPath, sensitivity.Parameter(param), fractions)
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario YAML file (default: reference case)")
	cmd.Flags().StringVarP(&param, "param", "p", "", "porosity, area, thickness or saturation (default: scenario's)")
	cmd.Flags().Float64SliceVarP(&fractions, "fractions", "f", nil, "perturbation fractions, e.g. -0.1,0,0.1")
	return cmd
}

func templateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template [out.xlsx]",
		Short: "Write a layer workbook pre-filled with the reference layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return writeTemplate(args[0])
		},
	}
}

func tokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token signed with TOKEN_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			tokens := &auth.Tokens{Key: cfg.TokenKey}
			token, err := tokens.Issue(subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the calculator HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return server.Run(ctx, cfg, logger)
		},
	}
}
