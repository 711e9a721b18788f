package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
)

// NewRootCommand creates the ckan command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ckan",
		Short: "CKAN Action API CLI",
		Long: `A command-line interface for the CKAN Action API.

Settings are read from flags, then CKAN_* environment variables, then
$HOME/.ckan/config.yml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")

			return initConfig(cfgFile)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.ckan/config.yml)")
	flags.StringP("url", "u", "", "CKAN site URL, e.g. https://demo.ckan.org")
	flags.StringP("token", "t", "", "API token")
	flags.String("output", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log HTTP requests to stderr")

	// Bind flags to viper
	for _, name := range []string{"url", "token", "output", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewLicensesCommand())
	rootCmd.AddCommand(NewPackagesCommand())
	rootCmd.AddCommand(NewResourcesCommand())
	rootCmd.AddCommand(NewOrgsCommand())
	rootCmd.AddCommand(NewGroupsCommand())
	rootCmd.AddCommand(NewUsersCommand())
	rootCmd.AddCommand(NewTagsCommand())
	rootCmd.AddCommand(NewCallCommand())

	return rootCmd
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		// Search config in ~/.ckan/config.yml
		viper.AddConfigPath(filepath.Join(home, constants.ConfigDirName))
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	// Read in environment variables that match
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || (cfgFile != "" && errors.Is(err, os.ErrNotExist)) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	if viper.GetBool("verbose") {
		_, _ = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	return nil
}
