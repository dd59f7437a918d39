package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var docCountTimeout time.Duration

var docCountCmd = &cobra.Command{
	Use:   "doc-count",
	Short: "Print the resolved document count",
	Long: `Resolve the document count exactly as the home page does: database first,
then the daily stats file. Prints "unknown" when neither has a value.`,
	Args: cobra.NoArgs,
	RunE: runDocCount,
}

var setCountCmd = &cobra.Command{
	Use:   "set-count <n>",
	Short: "Publish the document count to the key-value store",
	Long:  "Write the total to the configured count key. Only valkey and redis drivers are supported.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetCount,
}

func init() {
	docCountCmd.PersistentFlags().DurationVar(&docCountTimeout, "timeout", 5*time.Second,
		"Overall deadline for the lookup")
	docCountCmd.AddCommand(setCountCmd)
	rootCmd.AddCommand(docCountCmd)
}

func runDocCount(cmd *cobra.Command, _ []string) error {
	_, cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), docCountTimeout)
	defer cancel()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	n := a.resolver.DocumentCount(ctx)
	if n == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "unknown")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), *n)
	return nil
}

func runSetCount(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || n < 0 {
		return fmt.Errorf("count must be a non-negative integer, got %q", args[0])
	}

	_, cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), docCountTimeout)
	defer cancel()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	if a.kv == nil {
		return errors.New("set-count requires the valkey or redis driver")
	}
	if err := a.kv.Set(ctx, cfg.Database.CountKey, []byte(strconv.FormatInt(n, 10))); err != nil {
		return fmt.Errorf("publish count: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", cfg.Database.CountKey, n)
	return nil
}
