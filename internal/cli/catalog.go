package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"webquote/internal/domain/catalog"
)

func newCatalogCommand(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the effective catalog",
		Long: `Print the catalog quotes are derived from. The YAML output can be
edited and passed back with --catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := root.logger()
			defer func() { _ = logger.Sync() }()

			cat, err := root.loadCatalog(logger)
			if err != nil {
				return err
			}
			if err := catalog.Validate(cat); err != nil {
				return err
			}

			switch strings.ToLower(output) {
			case "yaml", "yml", "":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(cat); err != nil {
					return err
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cat)
			default:
				return fmt.Errorf("unknown output format %q (want yaml or json)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}
