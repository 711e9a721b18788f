package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

var userDetailColumns = []column{
	{Header: "ID", Path: "id"},
	{Header: "Name", Path: "name"},
	{Header: "Full Name", Path: "fullname"},
	{Header: "Email", Path: "email"},
	{Header: "State", Path: "state"},
	{Header: "Sysadmin", Path: "sysadmin"},
	{Header: "Datasets", Path: "number_created_packages"},
	{Header: "Created", Path: "created"},
}

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "Show CKAN user accounts",
	}

	cmd.AddCommand(newUsersShowCommand())

	return cmd
}

func newUsersShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID_OR_NAME",
		Short: "Show user details",
		Long:  "Display detailed information about a specific user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(constants.DefaultHTTPTimeout)
			defer cancel()

			resp, err := client.Users().Show(ctx, &ckan.UserShowParams{ID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to show user: %w", err)
			}

			return printResponse(cmd.OutOrStdout(), resp, userDetailColumns)
		},
	}
}
