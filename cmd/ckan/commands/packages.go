package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

var packageColumns = []column{
	{Header: "Name", Path: "name"},
	{Header: "Title", Path: "title"},
	{Header: "Organization", Path: "organization.name"},
	{Header: "Resources", Path: "num_resources"},
	{Header: "Modified", Path: "metadata_modified"},
}

var packageDetailColumns = []column{
	{Header: "ID", Path: "id"},
	{Header: "Name", Path: "name"},
	{Header: "Title", Path: "title"},
	{Header: "State", Path: "state"},
	{Header: "Private", Path: "private"},
	{Header: "Organization", Path: "organization.name"},
	{Header: "License", Path: "license_id"},
	{Header: "Resources", Path: "num_resources"},
	{Header: "Tags", Path: "tags.#.name"},
	{Header: "Created", Path: "metadata_created"},
	{Header: "Modified", Path: "metadata_modified"},
}

// NewPackagesCommand creates the packages command group.
func NewPackagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packages",
		Aliases: []string{"package", "datasets", "dataset"},
		Short:   "Manage datasets",
		Long:    "List, show, search, create and delete CKAN datasets",
	}

	cmd.AddCommand(newPackagesListCommand())
	cmd.AddCommand(newPackagesShowCommand())
	cmd.AddCommand(newPackagesSearchCommand())
	cmd.AddCommand(newPackagesCreateCommand())
	cmd.AddCommand(newPackagesDeleteCommand())

	return cmd
}

func newPackagesListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dataset names",
		Long:  "List the names of the site's public datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(constants.DefaultHTTPTimeout)
			defer cancel()

			params := &ckan.PackageListParams{Limit: ckan.Int(limit)}
			if cmd.Flags().Changed("offset") {
				params.Offset = ckan.Int(offset)
			}

			resp, err := client.Packages().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list datasets: %w", err)
			}

			return printResponse(cmd.OutOrStdout(), resp, nil)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "maximum number of datasets")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of datasets to skip")

	return cmd
}

func newPackagesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID_OR_NAME",
		Short: "Show dataset details",
		Long:  "Display detailed information about a specific dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(constants.DefaultHTTPTimeout)
			defer cancel()

			resp, err := client.Packages().Show(ctx, &ckan.PackageShowParams{ID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to show dataset: %w", err)
			}

			return printResponse(cmd.OutOrStdout(), resp, packageDetailColumns)
		},
	}
}

func newPackagesSearchCommand() *cobra.Command {
	var (
		filters        []string
		sort           string
		rows           int
		start          int
		includePrivate bool
	)

	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search datasets",
		Long:  "Search datasets with a Solr query and optional filter queries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(constants.DefaultHTTPTimeout)
			defer cancel()

			params := &ckan.PackageSearchParams{
				Rows:   ckan.Int(rows),
				FQList: filters,
			}

			if len(args) == 1 {
				params.Q = ckan.String(args[0])
			}

			if sort != "" {
				params.Sort = ckan.String(sort)
			}

			if cmd.Flags().Changed("start") {
				params.Start = ckan.Int(start)
			}

			if includePrivate {
				params.IncludePrivate = ckan.Bool(true)
			}

			resp, err := client.Packages().Search(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to search datasets: %w", err)
			}

			format, err := outputFormat()
			if err == nil && format == constants.FormatTable && resp.Success() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Found %d datasets\n", resp.Get("result.count").Int())
			}

			return printResponseAt(cmd.OutOrStdout(), resp, "result.results", packageColumns)
		},
	}

	cmd.Flags().StringSliceVar(&filters, "fq", nil, "filter query, may be repeated")
	cmd.Flags().StringVar(&sort, "sort", "", "sort order, e.g. 'metadata_modified desc'")
	cmd.Flags().IntVar(&rows, "rows", constants.DefaultPageSize, "number of results")
	cmd.Flags().IntVar(&start, "start", 0, "offset of the first result")
	cmd.Flags().BoolVar(&includePrivate, "include-private", false, "include private datasets the user can see")

	return cmd
}

func newPackagesCreateCommand() *cobra.Command {
	var (
		title    string
		notes    string
		ownerOrg string
		license  string
		private  bool
		tags     []string
		extras   []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a dataset",
		Long:  "Create a new dataset with the given URL name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &ckan.PackageCreateParams{Name: args[0]}

			if title != "" {
				params.Title = ckan.String(title)
			}

			if notes != "" {
				params.Notes = ckan.String(notes)
			}

			if ownerOrg != "" {
				params.OwnerOrg = ckan.String(ownerOrg)
			}

			if license != "" {
				params.LicenseID = ckan.String(license)
			}

			if cmd.Flags().Changed("private") {
				params.Private = ckan.Bool(private)
			}

			for _, tag := range tags {
				params.Tags = append(params.Tags, map[string]any{"name": tag})
			}

			for _, extra := range extras {
				key, value, err := parseKeyValue(extra)
				if err != nil {
					return err
				}

				params.Extras = append(params.Extras, map[string]any{"key": key, "value": value})
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(constants.DefaultHTTPTimeout)
			defer cancel()

			resp, err := client.Packages().Create(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to create dataset: %w", err)
			}

			return printResponse(cmd.OutOrStdout(), resp, packageDetailColumns)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "dataset title")
	cmd.Flags().StringVar(&notes, "notes", "", "dataset description")
	cmd.Flags().StringVarP(&ownerOrg, "org", "o", "", "owning organization id or name")
	cmd.Flags().StringVar(&license, "license", "", "license id")
	cmd.Flags().BoolVar(&private, "private", false, "create the dataset as private")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tag name, may be repeated")
	cmd.Flags().StringArrayVar(&extras, "extra", nil, "extra field as key=value, may be repeated")

	return cmd
}

func newPackagesDeleteCommand() *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "delete ID_OR_NAME",
		Short: "Delete a dataset",
		Long:  "Mark a dataset as deleted, or remove it permanently with --purge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(constants.DefaultHTTPTimeout)
			defer cancel()

			var resp *ckan.Response

			if purge {
				resp, err = client.Packages().Purge(ctx, args[0])
			} else {
				resp, err = client.Packages().Delete(ctx, args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to delete dataset: %w", err)
			}

			err = checkSuccess(resp)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted dataset %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "remove the dataset permanently")

	return cmd
}
