package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/anyway/internal/config"
	"github.com/davidbz/anyway/internal/domain"
	"github.com/davidbz/anyway/internal/http"
	"github.com/davidbz/anyway/internal/observability"
	"github.com/davidbz/anyway/internal/pricing"
)

const shutdownTimeout = 10 * time.Second

var (
	// ErrNoPricing is returned when a model matches no catalog entry.
	ErrNoPricing = errors.New("no pricing for model")

	// ErrNoTokens is returned when neither --input nor --output is given.
	ErrNoTokens = errors.New("at least one of --input or --output is required")
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "anyway",
		Short:         "Attribute USD cost to LLM usage",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newResolveCmd(), newCostCmd())

	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the cost attribution HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := buildContainer()
			if err != nil {
				return err
			}
			return container.Invoke(func(params serveParams) error {
				return serve(cmd.Context(), params)
			})
		},
	}
}

type serveParams struct {
	dig.In

	Server  *http.Server
	Source  *pricing.Source
	Pricing *config.PricingConfig
	Tracing tracerProvider
	Logger  *zap.Logger
}

func serve(ctx context.Context, params serveParams) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer func() { _ = params.Logger.Sync() }()

	logger := observability.FromContext(ctx)
	logger.Info("pricing catalog loaded",
		observability.String("path", params.Source.Path()),
		observability.Int("models", params.Source.Models()))

	if params.Pricing.Watch.Enabled() && params.Source.Path() != "" {
		watcher, err := pricing.NewWatcher(params.Source.Path(), params.Source, 0)
		if err != nil {
			return err
		}
		go func() {
			if err := watcher.Watch(ctx); err != nil {
				logger.Error("pricing watcher stopped", observability.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- params.Server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := params.Server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	if params.Tracing.TracerProvider != nil {
		if err := params.Tracing.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown tracer provider: %w", err))
		}
	}

	return errors.Join(errs...)
}

func newResolveCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "resolve <model>",
		Short: "Show which catalog entry prices a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := pricing.NewSource(file)
			if err != nil {
				return err
			}
			return runResolve(cmd.OutOrStdout(), source, args[0])
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "pricing catalog file (bundled catalog when empty)")

	return cmd
}

func runResolve(out io.Writer, resolver domain.CostResolver, model string) error {
	resolution, ok := resolver.Resolve(model)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoPricing, model)
	}

	return writeIndented(out, http.PricingResponse{
		Model:              resolution.Model,
		MatchedKey:         resolution.MatchedKey,
		Tier:               string(resolution.Tier),
		InputCostPerToken:  resolution.Price.InputCostPerToken,
		OutputCostPerToken: resolution.Price.OutputCostPerToken,
	})
}

type costFlags struct {
	file   string
	model  string
	input  int64
	output int64

	// hasInput and hasOutput report whether the counts were given at all.
	hasInput  bool
	hasOutput bool
}

func newCostCmd() *cobra.Command {
	var flags costFlags

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Price a single LLM call",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := pricing.NewSource(flags.file)
			if err != nil {
				return err
			}
			flags.hasInput = cmd.Flags().Changed("input")
			flags.hasOutput = cmd.Flags().Changed("output")
			return runCost(cmd.OutOrStdout(), domain.NewCostAttributor(source), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "pricing catalog file (bundled catalog when empty)")
	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "model identifier")
	cmd.Flags().Int64Var(&flags.input, "input", 0, "input tokens")
	cmd.Flags().Int64Var(&flags.output, "output", 0, "output tokens")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func runCost(out io.Writer, attributor *domain.CostAttributor, flags costFlags) error {
	if !flags.hasInput && !flags.hasOutput {
		return ErrNoTokens
	}

	record := domain.AttributeMap{
		domain.AttrRequestModel: flags.model,
	}
	if flags.hasInput {
		record[domain.AttrInputTokens] = flags.input
	}
	if flags.hasOutput {
		record[domain.AttrOutputTokens] = flags.output
	}

	if !attributor.Attribute(record) {
		return fmt.Errorf("%w: %s", ErrNoPricing, flags.model)
	}

	return writeIndented(out, record)
}

func writeIndented(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
