// Package main is the entry point for rfqctl, the operator CLI. It runs the
// RFQ pipeline in process without the HTTP server.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rfq-agent/internal/analyzer"
	"rfq-agent/internal/catalog"
	"rfq-agent/internal/generator"
	"rfq-agent/internal/rfq"
	"rfq-agent/internal/rfq/usecase"
	"rfq-agent/pkg/log"
)

// newUseCase builds the pipeline over the embedded catalog, without a cache.
func newUseCase(l log.Logger) rfq.UseCase {
	c := catalog.Default()
	return usecase.New(l, analyzer.New(c), generator.New(c), c.Examples, nil)
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "rfqctl",
		Short: "Generate RFQs from procurement queries",
		Long: `rfqctl classifies free-text procurement queries and builds RFQ line items
from the built-in templates, the same way the HTTP API does.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", log.LevelError, "log level (debug, info, warn, error)")

	logger := func() log.Logger {
		return log.Init(log.ZapConfig{Level: logLevel, Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})
	}

	root.AddCommand(
		newClassifyCmd(logger),
		newGenerateCmd(logger),
		newExamplesCmd(logger),
	)
	return root
}

// queryArg joins positional args so queries need no quoting.
func queryArg(args []string) string {
	return strings.Join(args, " ")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
