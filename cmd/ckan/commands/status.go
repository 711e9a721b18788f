package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
)

var statusColumns = []column{
	{Header: "CKAN Version", Path: "ckan_version"},
	{Header: "Site Title", Path: "site_title"},
	{Header: "Site URL", Path: "site_url"},
	{Header: "Site Description", Path: "site_description"},
	{Header: "Extensions", Path: "extensions"},
}

var licenseColumns = []column{
	{Header: "ID", Path: "id"},
	{Header: "Title", Path: "title"},
	{Header: "URL", Path: "url"},
}

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show site status",
		Long:  "Display the CKAN version, site information and enabled extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(constants.ShortHTTPTimeout)
			defer cancel()

			resp, err := client.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			return printResponse(cmd.OutOrStdout(), resp, statusColumns)
		},
	}
}

// NewLicensesCommand creates the licenses command.
func NewLicensesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "licenses",
		Short: "List licenses",
		Long:  "List the licenses datasets on this site can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(constants.ShortHTTPTimeout)
			defer cancel()

			resp, err := client.Licenses(ctx)
			if err != nil {
				return fmt.Errorf("failed to list licenses: %w", err)
			}

			return printResponse(cmd.OutOrStdout(), resp, licenseColumns)
		},
	}
}
