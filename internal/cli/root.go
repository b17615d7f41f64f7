// Package cli implements quotectl, the offline companion of the quote API.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"
	"webquote/internal/infrastructure/catalogfile"
	"webquote/internal/infrastructure/config"
	"webquote/internal/infrastructure/logging"
)

type rootOptions struct {
	catalogPath string
	logLevel    string
}

// NewRootCommand builds the quotectl command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "quotectl",
		Short: "Derive website quotes from the command line",
		Long: `quotectl runs the same derivation engine as the quote API without a
server, session store or database.

It is useful for checking a catalog file before deploying it and for
pricing a selection by hand.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", config.GetenvDefault("CATALOG_PATH", ""), "YAML catalog file (default: $CATALOG_PATH, then the built-in catalog)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	cmd.AddCommand(newDeriveCommand(opts))
	cmd.AddCommand(newCatalogCommand(opts))
	return cmd
}

// ExecuteContext runs quotectl with the process arguments.
func ExecuteContext(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (o *rootOptions) logger() *zap.Logger {
	logger, err := logging.New(o.logLevel, "console")
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func (o *rootOptions) loadCatalog(logger *zap.Logger) (entities.Catalog, error) {
	if o.catalogPath == "" {
		return catalog.Default(), nil
	}
	return catalogfile.Load(o.catalogPath, logger)
}
