package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	response "webquote/internal/adapter/http/dto/response"
	"webquote/internal/domain/entities"
	"webquote/internal/domain/quote"
	"webquote/internal/usecase"
)

type deriveOptions struct {
	from        string
	category    string
	stack       string
	noHosting   bool
	extras      []string
	plugins     []string
	automations []string
	content     []string
	support     string
	output      string
}

func newDeriveCommand(root *rootOptions) *cobra.Command {
	opts := &deriveOptions{}

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Price a selection",
		Long: `Build a selection from flags (or a YAML choices file) and print its
itemized quote and delivery timeline.

Examples:
  # A blog on the template CMS with the newsletter plugin
  quotectl derive --category blog --stack template_cms --plugin newsletter

  # Custom code, no hosting, JSON output
  quotectl derive --category corporate --stack custom_code --no-hosting --output json

  # Choices from a file, support package overridden on the command line
  quotectl derive --from choices.yaml --support pro`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			choices, err := opts.choices()
			if err != nil {
				return err
			}

			logger := root.logger()
			defer func() { _ = logger.Sync() }()

			cat, err := root.loadCatalog(logger)
			if err != nil {
				return err
			}

			uc := usecase.NewSessionUseCase(nil, cat, nil, logger)
			state, d, err := uc.Preview(cmd.Context(), choices)
			if err != nil {
				return fmt.Errorf("invalid selection: %w", err)
			}

			switch strings.ToLower(opts.output) {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(response.FromPreview(state, d))
			case "table", "":
				_, err := fmt.Fprint(cmd.OutOrStdout(), renderDerivation(state, d))
				return err
			default:
				return fmt.Errorf("unknown output format %q (want table or json)", opts.output)
			}
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.from, "from", "", "YAML file with the choices; flags are applied on top")
	f.StringVar(&opts.category, "category", "", "site category (news, ecommerce, blog, corporate, portfolio)")
	f.StringVar(&opts.stack, "stack", "", "technology stack (template_cms, custom_code)")
	f.BoolVar(&opts.noHosting, "no-hosting", false, "exclude hosting from the quote")
	f.StringSliceVar(&opts.extras, "extra", nil, "generic extra to toggle (repeatable)")
	f.StringSliceVar(&opts.plugins, "plugin", nil, "optional plugin id (repeatable)")
	f.StringSliceVar(&opts.automations, "automation", nil, "automation option id (repeatable)")
	f.StringSliceVar(&opts.content, "content", nil, "content service id (repeatable)")
	f.StringVar(&opts.support, "support", "", "support package id")
	f.StringVarP(&opts.output, "output", "o", "table", "output format: table or json")
	return cmd
}

func (o *deriveOptions) choices() (quote.Choices, error) {
	var c quote.Choices
	if o.from != "" {
		data, err := os.ReadFile(o.from)
		if err != nil {
			return quote.Choices{}, fmt.Errorf("failed to read choices: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return quote.Choices{}, fmt.Errorf("failed to parse choices: %w", err)
		}
	}

	if o.category != "" {
		c.Category = entities.Category(normalize(o.category))
	}
	if o.stack != "" {
		c.Stack = entities.Stack(normalize(o.stack))
	}
	if o.noHosting {
		c.ExcludeHosting = true
	}
	for _, e := range o.extras {
		c.Extras = append(c.Extras, entities.ExtraKey(normalize(e)))
	}
	c.PluginIDs = append(c.PluginIDs, o.plugins...)
	c.AutomationIDs = append(c.AutomationIDs, o.automations...)
	c.ContentServiceIDs = append(c.ContentServiceIDs, o.content...)
	if o.support != "" {
		c.SupportPackageID = strings.TrimSpace(o.support)
	}
	return c, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
