package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage tags",
		Long:    "List free tags or the tags of a vocabulary",
	}

	cmd.AddCommand(newTagsListCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	var (
		query      string
		vocabulary string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long:  "List tags, optionally filtered by a search string or a vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(constants.DefaultHTTPTimeout)
			defer cancel()

			params := &ckan.TagListParams{}

			if query != "" {
				params.Query = ckan.String(query)
			}

			if vocabulary != "" {
				params.VocabularyID = ckan.String(vocabulary)
			}

			resp, err := client.Tags().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			return printResponse(cmd.OutOrStdout(), resp, nil)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "only tags containing this string")
	cmd.Flags().StringVar(&vocabulary, "vocabulary", "", "vocabulary id or name")

	return cmd
}
