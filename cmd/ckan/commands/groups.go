package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

var groupColumns = []column{
	{Header: "Name", Path: "name"},
	{Header: "Title", Path: "title"},
	{Header: "Datasets", Path: "package_count"},
	{Header: "State", Path: "state"},
	{Header: "Created", Path: "created"},
}

var groupDetailColumns = []column{
	{Header: "ID", Path: "id"},
	{Header: "Name", Path: "name"},
	{Header: "Title", Path: "title"},
	{Header: "Type", Path: "type"},
	{Header: "State", Path: "state"},
	{Header: "Datasets", Path: "package_count"},
	{Header: "Description", Path: "description"},
	{Header: "Image", Path: "image_display_url"},
	{Header: "Created", Path: "created"},
}

// groupKind binds the list and show commands to either groups or
// organizations.
type groupKind struct {
	use     string
	aliases []string
	noun    string
	list    func(ctx context.Context, client ckan.Client, fields ckan.GroupListFields) (*ckan.Response, error)
	show    func(ctx context.Context, client ckan.Client, params *ckan.GroupShowParams) (*ckan.Response, error)
}

var groupsKind = groupKind{
	use:     "groups",
	aliases: []string{"group"},
	noun:    "group",
	list: func(ctx context.Context, client ckan.Client, fields ckan.GroupListFields) (*ckan.Response, error) {
		return client.Groups().List(ctx, &ckan.GroupListParams{GroupListFields: fields})
	},
	show: func(ctx context.Context, client ckan.Client, params *ckan.GroupShowParams) (*ckan.Response, error) {
		return client.Groups().Show(ctx, params)
	},
}

var orgsKind = groupKind{
	use:     "orgs",
	aliases: []string{"organizations", "org"},
	noun:    "organization",
	list: func(ctx context.Context, client ckan.Client, fields ckan.GroupListFields) (*ckan.Response, error) {
		return client.Organizations().List(ctx, &ckan.OrganizationListParams{GroupListFields: fields})
	},
	show: func(ctx context.Context, client ckan.Client, params *ckan.GroupShowParams) (*ckan.Response, error) {
		return client.Organizations().Show(ctx, params)
	},
}

// NewGroupsCommand creates the groups command group.
func NewGroupsCommand() *cobra.Command {
	return newGroupKindCommand(groupsKind)
}

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand() *cobra.Command {
	return newGroupKindCommand(orgsKind)
}

func newGroupKindCommand(kind groupKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:     kind.use,
		Aliases: kind.aliases,
		Short:   fmt.Sprintf("Manage %ss", kind.noun),
		Long:    fmt.Sprintf("List and show CKAN %ss", kind.noun),
	}

	cmd.AddCommand(newGroupKindListCommand(kind))
	cmd.AddCommand(newGroupKindShowCommand(kind))

	return cmd
}

func newGroupKindListCommand(kind groupKind) *cobra.Command {
	var (
		limit     int
		offset    int
		sort      string
		allFields bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %ss", kind.noun),
		Long:  fmt.Sprintf("List %ss, with details when --all-fields is set", kind.noun),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(constants.DefaultHTTPTimeout)
			defer cancel()

			fields := ckan.GroupListFields{
				Limit:     ckan.Int(limit),
				AllFields: ckan.Bool(allFields),
			}

			if cmd.Flags().Changed("offset") {
				fields.Offset = ckan.Int(offset)
			}

			if sort != "" {
				fields.Sort = ckan.String(sort)
			}

			resp, err := kind.list(ctx, client, fields)
			if err != nil {
				return fmt.Errorf("failed to list %ss: %w", kind.noun, err)
			}

			return printResponse(cmd.OutOrStdout(), resp, groupColumns)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "maximum number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringVar(&sort, "sort", "", "sort order, e.g. 'package_count desc'")
	cmd.Flags().BoolVar(&allFields, "all-fields", false, "return full objects instead of names")

	return cmd
}

func newGroupKindShowCommand(kind groupKind) *cobra.Command {
	var includeDatasets bool

	cmd := &cobra.Command{
		Use:   "show ID_OR_NAME",
		Short: fmt.Sprintf("Show %s details", kind.noun),
		Long:  fmt.Sprintf("Display detailed information about a specific %s", kind.noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(constants.DefaultHTTPTimeout)
			defer cancel()

			params := &ckan.GroupShowParams{ID: args[0]}
			if includeDatasets {
				params.IncludeDatasets = ckan.Bool(true)
			}

			resp, err := kind.show(ctx, client, params)
			if err != nil {
				return fmt.Errorf("failed to show %s: %w", kind.noun, err)
			}

			err = printResponse(cmd.OutOrStdout(), resp, groupDetailColumns)
			if err != nil || !includeDatasets {
				return err
			}

			format, _ := outputFormat()
			if format != constants.FormatTable {
				return nil
			}

			return renderResult(cmd.OutOrStdout(), resp.Get("result.packages"), packageColumns)
		},
	}

	cmd.Flags().BoolVar(&includeDatasets, "include-datasets", false, "also list the datasets")

	return cmd
}
