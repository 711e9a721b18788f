package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

var resourceColumns = []column{
	{Header: "ID", Path: "id"},
	{Header: "Name", Path: "name"},
	{Header: "Package", Path: "package_id"},
	{Header: "Format", Path: "format"},
	{Header: "Size", Path: "size"},
	{Header: "URL", Path: "url"},
	{Header: "URL Type", Path: "url_type"},
	{Header: "Modified", Path: "last_modified"},
}

// NewResourcesCommand creates the resources command group.
func NewResourcesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resources",
		Aliases: []string{"resource", "res"},
		Short:   "Manage resources",
		Long:    "Show and create dataset resources, including file uploads",
	}

	cmd.AddCommand(newResourcesShowCommand())
	cmd.AddCommand(newResourcesCreateCommand())

	return cmd
}

func newResourcesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show RESOURCE_ID",
		Short: "Show resource details",
		Long:  "Display detailed information about a specific resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(constants.DefaultHTTPTimeout)
			defer cancel()

			resp, err := client.Resources().Show(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to show resource: %w", err)
			}

			return printResponse(cmd.OutOrStdout(), resp, resourceColumns)
		},
	}
}

func newResourcesCreateCommand() *cobra.Command {
	var (
		name        string
		resourceURL string
		format      string
		description string
		upload      string
	)

	cmd := &cobra.Command{
		Use:   "create PACKAGE_ID",
		Short: "Create a resource",
		Long:  "Add a resource to a dataset, either by --resource-url or by uploading a local file with --upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &ckan.ResourceCreateParams{PackageID: args[0]}

			if name != "" {
				params.Name = ckan.String(name)
			}

			if resourceURL != "" {
				params.URL = ckan.String(resourceURL)
			}

			if format != "" {
				params.Format = ckan.String(format)
			}

			if description != "" {
				params.Description = ckan.String(description)
			}

			if upload != "" {
				err := checkUploadPath(upload)
				if err != nil {
					return err
				}

				params.Upload = upload
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Resources().Create(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to create resource: %w", err)
			}

			return printResponse(cmd.OutOrStdout(), resp, resourceColumns)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "resource name")
	cmd.Flags().StringVar(&resourceURL, "resource-url", "", "remote URL of the resource, sent as its url field")
	cmd.Flags().StringVarP(&format, "format", "f", "", "resource format, e.g. CSV")
	cmd.Flags().StringVar(&description, "description", "", "resource description")
	cmd.Flags().StringVar(&upload, "upload", "", "local file to upload")

	return cmd
}
